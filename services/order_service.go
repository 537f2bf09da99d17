package services

import (
	"context"
	"math"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/common/logger"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderItemInput is one requested order line. Price is never accepted from
// the client; it is re-derived from the catalog at order time.
type OrderItemInput struct {
	Food string `json:"food" binding:"required"`
	Qty  int    `json:"qty"`
}

// PlaceOrderRequest is the checkout payload. TotalPrice is advisory only and
// is compared against the server-side total for diagnostics.
type PlaceOrderRequest struct {
	Items      []OrderItemInput `json:"items"`
	TotalPrice float64          `json:"totalPrice"`
}

// OrderService materializes immutable orders from finalized carts and drives
// the Pending -> Confirmed -> Delivered status machine.
type OrderService struct {
	orders repository.OrderRepository
	foods  repository.FoodRepository
	users  repository.UserRepository
}

func NewOrderService(orders repository.OrderRepository, foods repository.FoodRepository, users repository.UserRepository) *OrderService {
	return &OrderService{
		orders: orders,
		foods:  foods,
		users:  users,
	}
}

// PlaceOrder persists an immutable order snapshot with status Pending. Unit
// prices and names are captured from the catalog so later edits or deletions
// of a food never change an existing order.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, req *PlaceOrderRequest) (*models.Order, *apperrors.Error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	if len(req.Items) == 0 {
		return nil, apperrors.Validation("No order items")
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	total := 0.0
	for _, item := range req.Items {
		if item.Food == "" {
			return nil, apperrors.Validation("Invalid item format: missing food ID")
		}
		foodID, err := primitive.ObjectIDFromHex(item.Food)
		if err != nil {
			return nil, apperrors.Validation("Invalid food ID: " + item.Food)
		}
		food, err := s.foods.FindByID(ctx, foodID)
		if err != nil {
			return nil, apperrors.Internal("Failed to look up food", err)
		}
		if food == nil {
			return nil, apperrors.NotFound("Food item not found: " + item.Food)
		}

		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, models.OrderLine{
			FoodID: food.ID,
			Name:   food.Name,
			Qty:    qty,
			Price:  food.Price,
		})
		total += food.Price * float64(qty)
	}

	if req.TotalPrice != 0 && math.Abs(req.TotalPrice-total) > 0.009 {
		logger.Log.Warn("client total diverges from catalog total",
			zap.String("userId", userID),
			zap.Float64("clientTotal", req.TotalPrice),
			zap.Float64("serverTotal", total))
	}

	order := &models.Order{
		UserID:     uid,
		Items:      lines,
		TotalPrice: total,
		Status:     models.StatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.Internal("Failed to create order", err)
	}

	s.populate(ctx, order, false)
	return order, nil
}

// ListMine returns the user's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]*models.Order, *apperrors.Error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	orders, err := s.orders.FindByUser(ctx, uid)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}
	for _, order := range orders {
		s.populate(ctx, order, false)
	}
	return orders, nil
}

// ListAll returns every order for the admin back office, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]*models.Order, *apperrors.Error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}
	for _, order := range orders {
		s.populate(ctx, order, true)
	}
	return orders, nil
}

// FilterByStatus returns orders in the given status, newest first.
func (s *OrderService) FilterByStatus(ctx context.Context, status string) ([]*models.Order, *apperrors.Error) {
	parsed, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, apperrors.Validation("Invalid status")
	}
	orders, err := s.orders.FindByStatus(ctx, parsed)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch orders", err)
	}
	for _, order := range orders {
		s.populate(ctx, order, true)
	}
	return orders, nil
}

// UpdateStatus applies an admin-driven status transition. Requesting the
// order's current status is an idempotent no-op; anything else must be a
// legal transition of the state machine (never a regression).
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, *apperrors.Error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, apperrors.Validation("Invalid order ID")
	}
	target, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, apperrors.Validation("Invalid status")
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch order", err)
	}
	if order == nil {
		return nil, apperrors.NotFound("Order not found")
	}

	if order.Status == target {
		s.populate(ctx, order, true)
		return order, nil
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, apperrors.Validationf("Cannot change status from %s to %s", order.Status, target)
	}

	if err := s.orders.UpdateStatus(ctx, id, target); err != nil {
		return nil, apperrors.Internal("Failed to update order status", err)
	}
	order.Status = target

	s.populate(ctx, order, true)
	return order, nil
}

// DeleteOrder removes one of the caller's own orders. Confirmed orders are
// actively being fulfilled and cannot be deleted; foreign orders answer 404
// without leaking existence.
func (s *OrderService) DeleteOrder(ctx context.Context, userID, orderID string) *apperrors.Error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.Validation("Invalid user ID")
	}
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return apperrors.Validation("Invalid order ID")
	}

	order, err := s.orders.FindByIDAndUser(ctx, id, uid)
	if err != nil {
		return apperrors.Internal("Failed to fetch order", err)
	}
	if order == nil {
		return apperrors.NotFound("Order not found")
	}
	if !order.Status.Deletable() {
		return apperrors.Validation("Only Pending, Delivered or Cancelled orders can be deleted")
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete order", err)
	}
	return nil
}

// populate joins food documents (and the owning user for admin views) into
// the order for display. Soft-deleted foods are still resolved so historical
// orders stay renderable; failures fall back to the line snapshots.
func (s *OrderService) populate(ctx context.Context, order *models.Order, withUser bool) {
	for i := range order.Items {
		food, err := s.foods.FindByIDAny(ctx, order.Items[i].FoodID)
		if err != nil {
			logger.Log.Warn("order populate: food lookup failed",
				zap.String("foodId", order.Items[i].FoodID.Hex()), zap.Error(err))
			continue
		}
		if food != nil {
			order.Items[i].Food = food
		}
	}
	if withUser {
		user, err := s.users.FindByID(ctx, order.UserID)
		if err != nil {
			logger.Log.Warn("order populate: user lookup failed",
				zap.String("userId", order.UserID.Hex()), zap.Error(err))
			return
		}
		if user != nil {
			order.User = &models.UserSummary{Name: user.Name, Email: user.Email}
		}
	}
}
