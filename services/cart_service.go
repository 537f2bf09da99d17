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

// AddCartItemRequest is the payload for adding an item to the cart.
type AddCartItemRequest struct {
	FoodID   string `json:"foodId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// CartService owns the per-user pre-payment cart. The server-side record is
// the source of truth; concurrent writes for the same user are last-write-wins.
type CartService struct {
	carts repository.CartRepository
	foods repository.FoodRepository
}

func NewCartService(carts repository.CartRepository, foods repository.FoodRepository) *CartService {
	return &CartService{
		carts: carts,
		foods: foods,
	}
}

// Get returns the user's cart, creating an empty one when none exists.
func (s *CartService) Get(ctx context.Context, userID string) (*models.CartView, *apperrors.Error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch cart", err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		if err := s.carts.SaveCart(ctx, cart); err != nil {
			return nil, apperrors.Internal("Failed to create cart", err)
		}
	}
	return s.populate(ctx, cart), nil
}

// AddItem increments an existing line for the food or appends a new one after
// validating the food against the catalog.
func (s *CartService) AddItem(ctx context.Context, userID string, req *AddCartItemRequest) (*models.CartView, *apperrors.Error) {
	if req.Quantity < 1 {
		return nil, apperrors.Validation("Quantity must be a positive integer")
	}
	foodID, err := primitive.ObjectIDFromHex(req.FoodID)
	if err != nil {
		return nil, apperrors.Validation("Invalid food ID")
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch cart", err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	found := false
	for i, item := range cart.Items {
		if item.FoodID == foodID {
			cart.Items[i].Quantity += req.Quantity
			found = true
			break
		}
	}
	if !found {
		food, err := s.foods.FindByID(ctx, foodID)
		if err != nil {
			return nil, apperrors.Internal("Failed to look up food", err)
		}
		if food == nil {
			return nil, apperrors.NotFound("Food item not found")
		}
		cart.Items = append(cart.Items, models.CartItem{FoodID: foodID, Quantity: req.Quantity})
	}

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.Internal("Failed to save cart", err)
	}
	return s.populate(ctx, cart), nil
}

// RemoveItem drops the line for the food. A missing line is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, foodID string) (*models.CartView, *apperrors.Error) {
	id, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return nil, apperrors.Validation("Invalid food ID")
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch cart", err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		return s.populate(ctx, cart), nil
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.FoodID != id {
			items = append(items, item)
		}
	}
	cart.Items = items

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.Internal("Failed to save cart", err)
	}
	return s.populate(ctx, cart), nil
}

// Clear empties the cart. Called by the user and by the payment flow after a
// successful settlement.
func (s *CartService) Clear(ctx context.Context, userID string) *apperrors.Error {
	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		return apperrors.Internal("Failed to clear cart", err)
	}
	return nil
}

// populate joins catalog documents into the cart lines. Lines whose food has
// disappeared from the catalog are hidden from the view but kept in storage.
func (s *CartService) populate(ctx context.Context, cart *models.Cart) *models.CartView {
	view := &models.CartView{
		UserID:    cart.UserID,
		Items:     []models.CartItemView{},
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		food, err := s.foods.FindByID(ctx, item.FoodID)
		if err != nil {
			logger.Log.Warn("cart populate: food lookup failed",
				zap.String("foodId", item.FoodID.Hex()), zap.Error(err))
			continue
		}
		if food == nil {
			continue
		}
		view.Items = append(view.Items, models.CartItemView{Food: food, Quantity: item.Quantity})
	}
	return view
}
