package controllers

import (
	"net/http"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/middleware"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	payments *services.PaymentService
}

func NewTransactionController(payments *services.PaymentService) *TransactionController {
	return &TransactionController{payments: payments}
}

// Charge runs the mock payment flow and, on settlement, places the order.
func (tc *TransactionController) Charge(c *gin.Context) {
	var req services.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	resp, appErr := tc.payments.Charge(c.Request.Context(), middleware.GetUserID(c), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History returns the caller's settled transactions.
func (tc *TransactionController) History(c *gin.Context) {
	txs, appErr := tc.payments.History(c.Request.Context(), middleware.GetUserID(c))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, txs)
}
