package services

import (
	"context"
	"errors"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/common/logger"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateReviewRequest is the payload for posting a review.
type CreateReviewRequest struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	ShowName bool   `json:"showName"`
}

// UpdateReviewRequest is the payload for editing an existing review.
// Rating 0 means "leave unchanged".
type UpdateReviewRequest struct {
	Rating   int     `json:"rating"`
	Comment  *string `json:"comment"`
	ShowName *bool   `json:"showName"`
}

type ReviewService struct {
	reviews repository.ReviewRepository
	foods   repository.FoodRepository
}

func NewReviewService(reviews repository.ReviewRepository, foods repository.FoodRepository) *ReviewService {
	return &ReviewService{reviews: reviews, foods: foods}
}

// Create adds a review for a food. Each user may review a food at most once;
// the unique index backs the pre-check against races.
func (s *ReviewService) Create(ctx context.Context, foodID, userID, userName string, req *CreateReviewRequest) (*models.Review, *apperrors.Error) {
	fid, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return nil, apperrors.Validation("Invalid food ID")
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.Validation("Rating must be between 1 and 5")
	}

	food, err := s.foods.FindByID(ctx, fid)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up food", err)
	}
	if food == nil {
		return nil, apperrors.NotFound("Food item not found")
	}

	existing, err := s.reviews.FindByFoodAndUser(ctx, fid, uid)
	if err != nil {
		return nil, apperrors.Internal("Failed to check existing review", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("Food already reviewed")
	}

	review := &models.Review{
		FoodID:   fid,
		UserID:   uid,
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		ShowName: req.ShowName,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, apperrors.Conflict("Food already reviewed")
		}
		return nil, apperrors.Internal("Failed to create review", err)
	}

	s.recomputeAggregate(ctx, fid)
	return review, nil
}

// Update edits the caller's own review of a food.
func (s *ReviewService) Update(ctx context.Context, reviewID, userID string, req *UpdateReviewRequest) (*models.Review, *apperrors.Error) {
	rid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return nil, apperrors.Validation("Invalid review ID")
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

	review, err := s.reviews.FindByIDAndUser(ctx, rid, uid)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up review", err)
	}
	if review == nil {
		return nil, apperrors.NotFound("Review not found")
	}

	if req.Rating != 0 {
		if req.Rating < 1 || req.Rating > 5 {
			return nil, apperrors.Validation("Rating must be between 1 and 5")
		}
		review.Rating = req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.ShowName != nil {
		review.ShowName = *req.ShowName
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, apperrors.Internal("Failed to update review", err)
	}

	s.recomputeAggregate(ctx, review.FoodID)
	return review, nil
}

// Delete removes the caller's own review of a food.
func (s *ReviewService) Delete(ctx context.Context, reviewID, userID string) *apperrors.Error {
	rid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return apperrors.Validation("Invalid review ID")
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.Validation("Invalid user ID")
	}

	review, err := s.reviews.FindByIDAndUser(ctx, rid, uid)
	if err != nil {
		return apperrors.Internal("Failed to look up review", err)
	}
	if review == nil {
		return apperrors.NotFound("Review not found")
	}

	if err := s.reviews.Delete(ctx, rid); err != nil {
		return apperrors.Internal("Failed to delete review", err)
	}

	s.recomputeAggregate(ctx, review.FoodID)
	return nil
}

// ListByFood returns all reviews of a food, with names hidden where the
// reviewer opted out.
func (s *ReviewService) ListByFood(ctx context.Context, foodID string) ([]*models.Review, *apperrors.Error) {
	fid, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return nil, apperrors.Validation("Invalid food ID")
	}
	reviews, err := s.reviews.FindByFood(ctx, fid)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch reviews", err)
	}
	for _, r := range reviews {
		if !r.ShowName {
			r.UserName = "Anonymous"
		}
	}
	return reviews, nil
}

// recomputeAggregate rewrites the food's denormalized rating fields from the
// current review set. When the last review is gone both fields reset to zero.
func (s *ReviewService) recomputeAggregate(ctx context.Context, foodID primitive.ObjectID) {
	reviews, err := s.reviews.FindByFood(ctx, foodID)
	if err != nil {
		logger.Log.Warn("failed to load reviews for rating recompute",
			zap.String("foodId", foodID.Hex()), zap.Error(err))
		return
	}

	var rating float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		rating = float64(sum) / float64(len(reviews))
	}

	if err := s.foods.UpdateRating(ctx, foodID, rating, len(reviews)); err != nil {
		logger.Log.Warn("failed to persist recomputed rating",
			zap.String("foodId", foodID.Hex()), zap.Error(err))
	}
}
