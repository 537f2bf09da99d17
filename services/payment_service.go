package services

import (
	"context"
	"strings"
	"time"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/common/logger"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const currencyETB = "ETB"

// testNumbers maps each supported payment method to its single accepted
// test phone number.
var testNumbers = map[string]string{
	"telebirr":     "0900123456",
	"CBEBirr":      "0900123456",
	"AwashBirr":    "0900123456",
	"Coopay-Ebirr": "0900123456",
	"M-Pesa":       "0700123456",
	"Amole":        "0900123456",
}

// ChargeRequest is the mock-transaction payload.
type ChargeRequest struct {
	Amount          float64          `json:"amount"`
	Email           string           `json:"email"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	PhoneNumber     string           `json:"phone_number"`
	PaymentMethod   string           `json:"payment_method"`
	CartItems       []OrderItemInput `json:"cartItems"`
	DeliveryAddress *models.Address  `json:"delivery_address,omitempty"`
}

// ReceiptCustomer carries masked customer info on the receipt.
type ReceiptCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Receipt describes one settled mock payment.
type Receipt struct {
	OrderID         string          `json:"order_id"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	PaymentMethod   string          `json:"payment_method"`
	Customer        ReceiptCustomer `json:"customer"`
	DeliveryAddress *models.Address `json:"delivery_address"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ChargeResponse is the mock-transaction endpoint response.
type ChargeResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	OrderID     string  `json:"orderId"`
	CartCleared bool    `json:"cartCleared"`
	Receipt     Receipt `json:"receipt"`
}

// PaymentService simulates an external settlement step. The one invariant of
// the whole flow lives here: an order is materialized only after the
// simulated settlement succeeds, never before.
type PaymentService struct {
	users  repository.UserRepository
	txs    repository.TransactionRepository
	orders *OrderService
	carts  *CartService
	delay  time.Duration
}

func NewPaymentService(users repository.UserRepository, txs repository.TransactionRepository, orders *OrderService, carts *CartService, delay time.Duration) *PaymentService {
	return &PaymentService{
		users:  users,
		txs:    txs,
		orders: orders,
		carts:  carts,
		delay:  delay,
	}
}

// Charge validates the payment request, simulates settlement latency, then
// places the order and clears the cart. Validation failures leave both the
// order store and the cart untouched.
func (s *PaymentService) Charge(ctx context.Context, userID string, req *ChargeRequest) (*ChargeResponse, *apperrors.Error) {
	if req.Amount <= 0 || req.Email == "" || req.FirstName == "" || req.LastName == "" ||
		req.PhoneNumber == "" || req.PaymentMethod == "" || len(req.CartItems) == 0 {
		return nil, apperrors.Validation("Missing required fields")
	}

	expected, ok := testNumbers[req.PaymentMethod]
	if !ok {
		return nil, apperrors.Validation("Unsupported payment method: " + req.PaymentMethod)
	}
	if digitsOnly(req.PhoneNumber) != expected {
		return nil, apperrors.Validationf("For %s, use test number: %s", req.PaymentMethod, expected)
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

	address := req.DeliveryAddress
	if address == nil {
		user, err := s.users.FindByID(ctx, uid)
		if err != nil {
			return nil, apperrors.Internal("Failed to look up user", err)
		}
		if user != nil {
			address = user.DefaultAddress()
		}
	}
	if address == nil {
		return nil, apperrors.Validation("Delivery address is required")
	}

	// Simulated settlement latency.
	select {
	case <-ctx.Done():
		return nil, apperrors.Internal("Payment processing interrupted", ctx.Err())
	case <-time.After(s.delay):
	}

	// Settlement succeeded; only now does an order come into existence.
	order, appErr := s.orders.PlaceOrder(ctx, userID, &PlaceOrderRequest{
		Items:      req.CartItems,
		TotalPrice: req.Amount,
	})
	if appErr != nil {
		return nil, appErr
	}

	cartCleared := true
	if clearErr := s.carts.Clear(ctx, userID); clearErr != nil {
		cartCleared = false
		logger.Log.Warn("order placed but cart clear failed",
			zap.String("userId", userID),
			zap.String("orderId", order.ID.Hex()),
			zap.Error(clearErr))
	}

	maskedPhone := maskPhone(req.PhoneNumber)
	tx := &models.Transaction{
		OrderID:   order.ID,
		UserID:    uid,
		Amount:    order.TotalPrice,
		Currency:  currencyETB,
		Email:     req.Email,
		Phone:     maskedPhone,
		Method:    req.PaymentMethod,
		Reference: uuid.NewString(),
		Status:    "success",
	}
	if err := s.txs.Create(ctx, tx); err != nil {
		logger.Log.Error("failed to record transaction",
			zap.String("orderId", order.ID.Hex()), zap.Error(err))
	}

	return &ChargeResponse{
		Success:     true,
		Message:     "Payment processed successfully",
		OrderID:     order.ID.Hex(),
		CartCleared: cartCleared,
		Receipt: Receipt{
			OrderID:       order.ID.Hex(),
			Amount:        order.TotalPrice,
			Currency:      currencyETB,
			PaymentMethod: req.PaymentMethod,
			Customer: ReceiptCustomer{
				Name:  req.FirstName + " " + req.LastName,
				Email: req.Email,
				Phone: maskedPhone,
			},
			DeliveryAddress: address,
			Timestamp:       time.Now().UTC(),
		},
	}, nil
}

// History returns the caller's settled transactions, newest first.
func (s *PaymentService) History(ctx context.Context, userID string) ([]*models.Transaction, *apperrors.Error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	txs, err := s.txs.FindByUser(ctx, uid)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch transactions", err)
	}
	return txs, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// maskPhone keeps the first two and last two digits visible.
func maskPhone(phone string) string {
	digits := digitsOnly(phone)
	if len(digits) < 5 {
		return "****"
	}
	return digits[:2] + strings.Repeat("*", len(digits)-4) + digits[len(digits)-2:]
}
