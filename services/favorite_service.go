package services

import (
	"context"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/common/logger"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type FavoriteService struct {
	users repository.UserRepository
	foods repository.FoodRepository
}

func NewFavoriteService(users repository.UserRepository, foods repository.FoodRepository) *FavoriteService {
	return &FavoriteService{users: users, foods: foods}
}

// Add puts a food on the caller's favorites list. Adding an already
// favorited food is a no-op.
func (s *FavoriteService) Add(ctx context.Context, userID, foodID string) *apperrors.Error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.Validation("Invalid user ID")
	}
	fid, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return apperrors.Validation("Invalid food ID")
	}

	food, err := s.foods.FindByID(ctx, fid)
	if err != nil {
		return apperrors.Internal("Failed to look up food", err)
	}
	if food == nil {
		return apperrors.NotFound("Food item not found")
	}

	if err := s.users.AddFavorite(ctx, uid, fid); err != nil {
		return apperrors.Internal("Failed to add favorite", err)
	}
	return nil
}

// Remove drops a food from the favorites list. Removing an absent entry is
// a no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID, foodID string) *apperrors.Error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.Validation("Invalid user ID")
	}
	fid, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return apperrors.Validation("Invalid food ID")
	}
	if err := s.users.RemoveFavorite(ctx, uid, fid); err != nil {
		return apperrors.Internal("Failed to remove favorite", err)
	}
	return nil
}

// List returns the caller's favorited foods. Entries pointing at removed
// catalog items are skipped.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]*models.Food, *apperrors.Error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up user", err)
	}
	if user == nil {
		return []*models.Food{}, nil
	}

	foods := make([]*models.Food, 0, len(user.Favorites))
	for _, fid := range user.Favorites {
		food, err := s.foods.FindByID(ctx, fid)
		if err != nil {
			logger.Log.Warn("favorite food lookup failed",
				zap.String("foodId", fid.Hex()), zap.Error(err))
			continue
		}
		if food == nil {
			continue
		}
		foods = append(foods, food)
	}
	return foods, nil
}
