package controllers

import (
	"net/http"
	"strconv"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// List returns one page of the catalog, filtered by optional keyword and
// category query params.
func (fc *FoodController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, appErr := fc.foods.List(c.Request.Context(), c.Query("keyword"), c.Query("category"), page)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (fc *FoodController) Get(c *gin.Context) {
	food, appErr := fc.foods.Get(c.Request.Context(), c.Param("id"))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Top(c *gin.Context) {
	foods, appErr := fc.foods.Top(c.Request.Context())
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Categories(c *gin.Context) {
	categories, appErr := fc.foods.Categories(c.Request.Context())
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (fc *FoodController) Create(c *gin.Context) {
	var req services.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	food, appErr := fc.foods.Create(c.Request.Context(), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) Update(c *gin.Context) {
	var req services.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	food, appErr := fc.foods.Update(c.Request.Context(), c.Param("id"), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Delete(c *gin.Context) {
	if appErr := fc.foods.Delete(c.Request.Context(), c.Param("id")); appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted"})
}
