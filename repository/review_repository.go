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

// ErrDuplicateReview is returned when the unique (food, user) index rejects
// a second review by the same user.
var ErrDuplicateReview = errors.New("review already exists for this user and food")

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByFoodAndUser(ctx context.Context, foodID, userID primitive.ObjectID) (*models.Review, error)
	FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Review, error)
	FindByFood(ctx context.Context, foodID primitive.ObjectID) ([]*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoReviewRepository implements ReviewRepository on a Mongo collection.
type MongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{collection: db.Collection("reviews")}
}

func (r *MongoReviewRepository) Create(ctx context.Context, review *models.Review) error {
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now
	result, err := r.collection.InsertOne(ctx, review)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateReview
	}
	if err != nil {
		return err
	}
	review.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoReviewRepository) FindByFoodAndUser(ctx context.Context, foodID, userID primitive.ObjectID) (*models.Review, error) {
	return r.findOne(ctx, bson.M{"food": foodID, "user": userID})
}

func (r *MongoReviewRepository) FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Review, error) {
	return r.findOne(ctx, bson.M{"_id": id, "user": userID})
}

func (r *MongoReviewRepository) findOne(ctx context.Context, filter bson.M) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, filter).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *MongoReviewRepository) FindByFood(ctx context.Context, foodID primitive.ObjectID) ([]*models.Review, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"food": foodID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []*models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Update(ctx context.Context, review *models.Review) error {
	review.UpdatedAt = time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": review.ID}, bson.M{"$set": bson.M{
		"rating":     review.Rating,
		"comment":    review.Comment,
		"show_name":  review.ShowName,
		"updated_at": review.UpdatedAt,
	}})
	return err
}

func (r *MongoReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
