package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review lives in its own collection with a unique (food, user) index, so a
// user can review a given food at most once. UserName is a display snapshot;
// ShowName controls whether it is exposed to other customers.
type Review struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FoodID    primitive.ObjectID `json:"foodId" bson:"food"`
	UserID    primitive.ObjectID `json:"userId" bson:"user"`
	UserName  string             `json:"name" bson:"name"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	ShowName  bool               `json:"showName" bson:"show_name"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}
