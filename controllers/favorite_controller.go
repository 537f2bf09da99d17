package controllers

import (
	"net/http"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/middleware"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

func (fc *FavoriteController) List(c *gin.Context) {
	foods, appErr := fc.favorites.List(c.Request.Context(), middleware.GetUserID(c))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FavoriteController) Add(c *gin.Context) {
	if appErr := fc.favorites.Add(c.Request.Context(), middleware.GetUserID(c), c.Param("foodId")); appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

func (fc *FavoriteController) Remove(c *gin.Context) {
	if appErr := fc.favorites.Remove(c.Request.Context(), middleware.GetUserID(c), c.Param("foodId")); appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
