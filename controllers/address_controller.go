package controllers

import (
	"net/http"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/middleware"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{addresses: addresses}
}

func (ac *AddressController) List(c *gin.Context) {
	addresses, appErr := ac.addresses.List(c.Request.Context(), middleware.GetUserID(c))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (ac *AddressController) Add(c *gin.Context) {
	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	addresses, appErr := ac.addresses.Add(c.Request.Context(), middleware.GetUserID(c), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, addresses)
}

func (ac *AddressController) Update(c *gin.Context) {
	var req services.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	addresses, appErr := ac.addresses.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (ac *AddressController) Delete(c *gin.Context) {
	addresses, appErr := ac.addresses.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (ac *AddressController) SetDefault(c *gin.Context) {
	addresses, appErr := ac.addresses.SetDefault(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, addresses)
}
