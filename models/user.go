package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is embedded in the user document. At most one address per user
// carries IsDefault=true; setting a new default clears the flag on siblings.
type Address struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Street    string             `json:"street" bson:"street"`
	City      string             `json:"city" bson:"city"`
	State     string             `json:"state" bson:"state"`
	ZipCode   string             `json:"zipCode" bson:"zip_code"`
	Phone     string             `json:"phone" bson:"phone"`
	IsDefault bool               `json:"isDefault" bson:"is_default"`
}

// User holds profile, favorites and addresses. Credentials are owned by the
// external auth service; this collection never stores them.
type User struct {
	ID        primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	Email     string               `json:"email" bson:"email"`
	Favorites []primitive.ObjectID `json:"favorites" bson:"favorites"`
	Addresses []Address            `json:"addresses" bson:"addresses"`
	CreatedAt time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updated_at"`
}

// DefaultAddress returns the user's default address, or nil when none is set.
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	return nil
}
