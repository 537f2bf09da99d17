package controllers

import (
	"net/http"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/middleware"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// Get returns the caller's cart with catalog details joined onto each line.
func (cc *CartController) Get(c *gin.Context) {
	cart, appErr := cc.carts.Get(c.Request.Context(), middleware.GetUserID(c))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) AddItem(c *gin.Context) {
	var req services.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	cart, appErr := cc.carts.AddItem(c.Request.Context(), middleware.GetUserID(c), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, appErr := cc.carts.RemoveItem(c.Request.Context(), middleware.GetUserID(c), c.Param("foodId"))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) Clear(c *gin.Context) {
	if appErr := cc.carts.Clear(c.Request.Context(), middleware.GetUserID(c)); appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
