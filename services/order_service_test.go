package services

import (
	"context"
	"testing"

	"food-delivery-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID().Hex()

	pizzaID := primitive.NewObjectID()
	burgerID := primitive.NewObjectID()
	pizza := &models.Food{ID: pizzaID, Name: "Pizza", Price: 100}
	burger := &models.Food{ID: burgerID, Name: "Burger", Price: 50}

	t.Run("RejectsEmptyOrder", func(t *testing.T) {
		svc := NewOrderService(new(MockOrderRepository), new(MockFoodRepository), new(MockUserRepository))

		_, appErr := svc.PlaceOrder(ctx, userID, &PlaceOrderRequest{})

		assert.NotNil(t, appErr)
		assert.Equal(t, "No order items", appErr.Message)
	})

	t.Run("RejectsMissingFoodRef", func(t *testing.T) {
		svc := NewOrderService(new(MockOrderRepository), new(MockFoodRepository), new(MockUserRepository))

		_, appErr := svc.PlaceOrder(ctx, userID, &PlaceOrderRequest{
			Items: []OrderItemInput{{Food: "", Qty: 1}},
		})

		assert.NotNil(t, appErr)
		assert.Equal(t, "Invalid item format: missing food ID", appErr.Message)
	})

	t.Run("TotalComesFromCatalogNotClient", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewOrderService(mockOrders, mockFoods, new(MockUserRepository))

		mockFoods.On("FindByID", ctx, pizzaID).Return(pizza, nil).Once()
		mockFoods.On("FindByID", ctx, burgerID).Return(burger, nil).Once()
		mockFoods.On("FindByIDAny", ctx, pizzaID).Return(pizza, nil)
		mockFoods.On("FindByIDAny", ctx, burgerID).Return(burger, nil)
		mockOrders.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		order, appErr := svc.PlaceOrder(ctx, userID, &PlaceOrderRequest{
			Items: []OrderItemInput{
				{Food: pizzaID.Hex(), Qty: 2},
				{Food: burgerID.Hex(), Qty: 1},
			},
			TotalPrice: 1, // bogus client total must be ignored
		})

		assert.Nil(t, appErr)
		assert.Equal(t, 250.0, order.TotalPrice)
		assert.Equal(t, models.StatusPending, order.Status)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, "Pizza", order.Items[0].Name)
		assert.Equal(t, 100.0, order.Items[0].Price)
	})

	t.Run("UnknownFoodFailsWithoutPersisting", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewOrderService(mockOrders, mockFoods, new(MockUserRepository))

		mockFoods.On("FindByID", ctx, pizzaID).Return(nil, nil).Once()

		_, appErr := svc.PlaceOrder(ctx, userID, &PlaceOrderRequest{
			Items: []OrderItemInput{{Food: pizzaID.Hex(), Qty: 1}},
		})

		assert.NotNil(t, appErr)
		mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ZeroQtyDefaultsToOne", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewOrderService(mockOrders, mockFoods, new(MockUserRepository))

		mockFoods.On("FindByID", ctx, pizzaID).Return(pizza, nil).Once()
		mockFoods.On("FindByIDAny", ctx, pizzaID).Return(pizza, nil)
		mockOrders.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		order, appErr := svc.PlaceOrder(ctx, userID, &PlaceOrderRequest{
			Items: []OrderItemInput{{Food: pizzaID.Hex(), Qty: 0}},
		})

		assert.Nil(t, appErr)
		assert.Equal(t, 1, order.Items[0].Qty)
		assert.Equal(t, 100.0, order.TotalPrice)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	orderID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	newOrder := func(status models.OrderStatus) *models.Order {
		return &models.Order{ID: orderID, UserID: userID, Status: status}
	}

	t.Run("ForwardTransition", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		svc := NewOrderService(mockOrders, new(MockFoodRepository), mockUsers)

		mockOrders.On("FindByID", ctx, orderID).Return(newOrder(models.StatusPending), nil).Once()
		mockOrders.On("UpdateStatus", ctx, orderID, models.StatusConfirmed).Return(nil).Once()
		mockUsers.On("FindByID", ctx, userID).Return(nil, nil)

		order, appErr := svc.UpdateStatus(ctx, orderID.Hex(), "Confirmed")

		assert.Nil(t, appErr)
		assert.Equal(t, models.StatusConfirmed, order.Status)
		mockOrders.AssertExpectations(t)
	})

	t.Run("RegressionRejected", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewOrderService(mockOrders, new(MockFoodRepository), new(MockUserRepository))

		mockOrders.On("FindByID", ctx, orderID).Return(newOrder(models.StatusDelivered), nil).Once()

		_, appErr := svc.UpdateStatus(ctx, orderID.Hex(), "Pending")

		assert.NotNil(t, appErr)
		assert.Equal(t, "Cannot change status from Delivered to Pending", appErr.Message)
		mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SameStatusIsNoOp", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		svc := NewOrderService(mockOrders, new(MockFoodRepository), mockUsers)

		mockOrders.On("FindByID", ctx, orderID).Return(newOrder(models.StatusDelivered), nil).Once()
		mockUsers.On("FindByID", ctx, userID).Return(nil, nil)

		order, appErr := svc.UpdateStatus(ctx, orderID.Hex(), "Delivered")

		assert.Nil(t, appErr)
		assert.Equal(t, models.StatusDelivered, order.Status)
		mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidStatusValue", func(t *testing.T) {
		svc := NewOrderService(new(MockOrderRepository), new(MockFoodRepository), new(MockUserRepository))

		_, appErr := svc.UpdateStatus(ctx, orderID.Hex(), "Shipped")

		assert.NotNil(t, appErr)
		assert.Equal(t, "Invalid status", appErr.Message)
	})

	t.Run("MissingOrder", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewOrderService(mockOrders, new(MockFoodRepository), new(MockUserRepository))

		mockOrders.On("FindByID", ctx, orderID).Return(nil, nil).Once()

		_, appErr := svc.UpdateStatus(ctx, orderID.Hex(), "Confirmed")

		assert.NotNil(t, appErr)
		assert.Equal(t, "Order not found", appErr.Message)
	})
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()
	orderID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	cases := []struct {
		status  models.OrderStatus
		allowed bool
	}{
		{models.StatusPending, true},
		{models.StatusConfirmed, false},
		{models.StatusDelivered, true},
		{models.StatusCancelled, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			mockOrders := new(MockOrderRepository)
			svc := NewOrderService(mockOrders, new(MockFoodRepository), new(MockUserRepository))

			order := &models.Order{ID: orderID, UserID: userID, Status: tc.status}
			mockOrders.On("FindByIDAndUser", ctx, orderID, userID).Return(order, nil).Once()
			if tc.allowed {
				mockOrders.On("Delete", ctx, orderID).Return(nil).Once()
			}

			appErr := svc.DeleteOrder(ctx, userID.Hex(), orderID.Hex())

			if tc.allowed {
				assert.Nil(t, appErr)
			} else {
				assert.NotNil(t, appErr)
				assert.Equal(t, "Only Pending, Delivered or Cancelled orders can be deleted", appErr.Message)
			}
			mockOrders.AssertExpectations(t)
		})
	}

	t.Run("ForeignOrderAnswersNotFound", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		svc := NewOrderService(mockOrders, new(MockFoodRepository), new(MockUserRepository))

		mockOrders.On("FindByIDAndUser", ctx, orderID, userID).Return(nil, nil).Once()

		appErr := svc.DeleteOrder(ctx, userID.Hex(), orderID.Hex())

		assert.NotNil(t, appErr)
		assert.Equal(t, "Order not found", appErr.Message)
	})
}
