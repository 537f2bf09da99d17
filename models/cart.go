package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	FoodID   primitive.ObjectID `json:"foodId"`
	Quantity int                `json:"quantity"`
}

// Cart is the per-user, pre-payment item collection. It is stored as a
// single JSON document in Redis and is not a payment record.
type Cart struct {
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItemView is a cart line with its catalog document joined in.
type CartItemView struct {
	Food     *Food `json:"food"`
	Quantity int   `json:"quantity"`
}

type CartView struct {
	UserID    string         `json:"userId"`
	Items     []CartItemView `json:"items"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
