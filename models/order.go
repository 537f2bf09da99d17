package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderLine captures one ordered item. Name and Price are snapshots taken
// from the catalog at order time so the line stays stable even if the food
// is later edited or removed.
type OrderLine struct {
	FoodID primitive.ObjectID `json:"foodId" bson:"food"`
	Name   string             `json:"name" bson:"name"`
	Qty    int                `json:"qty" bson:"qty"`
	Price  float64            `json:"price" bson:"price"`

	// Food carries the live catalog document on read paths only.
	Food *Food `json:"food,omitempty" bson:"-"`
}

// UserSummary is the joined owner info attached to admin order views.
type UserSummary struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Order is immutable once created except for Status.
type Order struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"user"`
	Items      []OrderLine        `json:"items" bson:"items"`
	TotalPrice float64            `json:"totalPrice" bson:"total_price"`
	Status     OrderStatus        `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`

	User *UserSummary `json:"user,omitempty" bson:"-"`
}
