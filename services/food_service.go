package services

import (
	"context"
	"math"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const foodPageSize = 10

// FoodPage is one page of catalog search results.
type FoodPage struct {
	Foods []*models.Food `json:"foods"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// CreateFoodRequest is the admin payload for adding a menu item.
type CreateFoodRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// UpdateFoodRequest is a partial update; zero values leave fields unchanged.
type UpdateFoodRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

type FoodService struct {
	foods repository.FoodRepository
}

func NewFoodService(foods repository.FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

// List searches the catalog by optional keyword and category, paginated.
func (s *FoodService) List(ctx context.Context, keyword, category string, page int) (*FoodPage, *apperrors.Error) {
	if page < 1 {
		page = 1
	}
	foods, total, err := s.foods.List(ctx, keyword, category, page, foodPageSize)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch foods", err)
	}
	pages := int(math.Ceil(float64(total) / float64(foodPageSize)))
	return &FoodPage{Foods: foods, Page: page, Pages: pages}, nil
}

// Get returns one catalog item by id.
func (s *FoodService) Get(ctx context.Context, id string) (*models.Food, *apperrors.Error) {
	fid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid food ID")
	}
	food, err := s.foods.FindByID(ctx, fid)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch food", err)
	}
	if food == nil {
		return nil, apperrors.NotFound("Food item not found")
	}
	return food, nil
}

// Top returns the highest rated items.
func (s *FoodService) Top(ctx context.Context) ([]*models.Food, *apperrors.Error) {
	foods, err := s.foods.Top(ctx, 5)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch top foods", err)
	}
	return foods, nil
}

// Categories returns the distinct category names in the catalog.
func (s *FoodService) Categories(ctx context.Context) ([]string, *apperrors.Error) {
	categories, err := s.foods.Categories(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch categories", err)
	}
	return categories, nil
}

// Create adds a new menu item.
func (s *FoodService) Create(ctx context.Context, req *CreateFoodRequest) (*models.Food, *apperrors.Error) {
	if req.Name == "" {
		return nil, apperrors.Validation("Food name is required")
	}
	if req.Price <= 0 {
		return nil, apperrors.Validation("Price must be greater than zero")
	}
	category := req.Category
	if category == "" {
		category = "Uncategorized"
	}
	food := &models.Food{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    category,
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, apperrors.Internal("Failed to create food", err)
	}
	return food, nil
}

// Update applies a partial edit to a menu item.
func (s *FoodService) Update(ctx context.Context, id string, req *UpdateFoodRequest) (*models.Food, *apperrors.Error) {
	fid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid food ID")
	}
	food, err := s.foods.FindByID(ctx, fid)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch food", err)
	}
	if food == nil {
		return nil, apperrors.NotFound("Food item not found")
	}

	if req.Name != "" {
		food.Name = req.Name
	}
	if req.Price > 0 {
		food.Price = req.Price
	}
	if req.Description != "" {
		food.Description = req.Description
	}
	if req.Image != "" {
		food.Image = req.Image
	}
	if req.Category != "" {
		food.Category = req.Category
	}

	if err := s.foods.Update(ctx, food); err != nil {
		return nil, apperrors.Internal("Failed to update food", err)
	}
	return food, nil
}

// Delete soft-deletes a menu item. Existing order lines keep their snapshot.
func (s *FoodService) Delete(ctx context.Context, id string) *apperrors.Error {
	fid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Validation("Invalid food ID")
	}
	deleted, err := s.foods.SoftDelete(ctx, fid)
	if err != nil {
		return apperrors.Internal("Failed to delete food", err)
	}
	if !deleted {
		return apperrors.NotFound("Food item not found")
	}
	return nil
}
