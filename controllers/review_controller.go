package controllers

import (
	"net/http"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/middleware"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (rc *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	review, appErr := rc.reviews.Create(c.Request.Context(), c.Param("id"),
		middleware.GetUserID(c), middleware.GetUserName(c), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (rc *ReviewController) ListByFood(c *gin.Context) {
	reviews, appErr := rc.reviews.ListByFood(c.Request.Context(), c.Param("id"))
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (rc *ReviewController) Update(c *gin.Context) {
	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}
	review, appErr := rc.reviews.Update(c.Request.Context(), c.Param("reviewId"),
		middleware.GetUserID(c), &req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) Delete(c *gin.Context) {
	if appErr := rc.reviews.Delete(c.Request.Context(), c.Param("reviewId"), middleware.GetUserID(c)); appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
