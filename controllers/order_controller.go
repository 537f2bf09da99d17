package controllers

import (
	"net/http"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/middleware"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders    *services.OrderService
	analytics *services.AnalyticsService
}

func NewOrderController(orders *services.OrderService, analytics *services.AnalyticsService) *OrderController {
	return &OrderController{orders: orders, analytics: analytics}
}

// Place creates an order directly, without the mock payment step.
func (oc *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	order, appErr := oc.orders.PlaceOrder(c.Request.Context(), middleware.GetUserID(c), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListMine returns the caller's order history, newest first.
func (oc *OrderController) ListMine(c *gin.Context) {
	orders, appErr := oc.orders.ListMine(c.Request.Context(), middleware.GetUserID(c))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListAll returns every order with the buyer joined in. Admin only.
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, appErr := oc.orders.ListAll(c.Request.Context())
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// FilterByStatus returns orders in one status. Admin only.
func (oc *OrderController) FilterByStatus(c *gin.Context) {
	orders, appErr := oc.orders.FilterByStatus(c.Request.Context(), c.Param("status"))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus moves an order along its lifecycle. Admin only.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	order, appErr := oc.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete removes one of the caller's own finished or pending orders.
func (oc *OrderController) Delete(c *gin.Context) {
	if appErr := oc.orders.DeleteOrder(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// Analytics returns the dashboard aggregates. Admin only.
func (oc *OrderController) Analytics(c *gin.Context) {
	report, appErr := oc.analytics.Overview(c.Request.Context())
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, report)
}
