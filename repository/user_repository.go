package repository

import (
	"context"
	"errors"
	"time"

	"food-delivery-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when the unique email index rejects a
// profile write.
var ErrDuplicateEmail = errors.New("email already in use by another user")

// UserRepository defines the interface for user-document data access.
// Credentials are owned by the external auth service; this repository only
// deals with profile, favorites and addresses.
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	SetProfile(ctx context.Context, id primitive.ObjectID, name, email string) error
	SetAddresses(ctx context.Context, id primitive.ObjectID, addresses []models.Address) error
	AddFavorite(ctx context.Context, id, foodID primitive.ObjectID) error
	RemoveFavorite(ctx context.Context, id, foodID primitive.ObjectID) error
}

// MongoUserRepository implements UserRepository on a Mongo collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates the user document on first authenticated contact. Existing
// documents only get their profile fields refreshed.
func (r *MongoUserRepository) Upsert(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":       user.Name,
			"email":      user.Email,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"favorites":  []primitive.ObjectID{},
			"addresses":  []models.Address{},
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *MongoUserRepository) SetProfile(ctx context.Context, id primitive.ObjectID, name, email string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":       name,
		"email":      email,
		"updated_at": time.Now().UTC(),
	}})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *MongoUserRepository) SetAddresses(ctx context.Context, id primitive.ObjectID, addresses []models.Address) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"addresses":  addresses,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

func (r *MongoUserRepository) AddFavorite(ctx context.Context, id, foodID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{"favorites": foodID},
	})
	return err
}

func (r *MongoUserRepository) RemoveFavorite(ctx context.Context, id, foodID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$pull": bson.M{"favorites": foodID},
	})
	return err
}
