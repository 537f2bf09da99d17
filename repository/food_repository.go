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

// FoodRepository defines the interface for catalog data access.
type FoodRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error)
	// FindByIDAny also returns soft-deleted foods, for historical order display.
	FindByIDAny(ctx context.Context, id primitive.ObjectID) (*models.Food, error)
	List(ctx context.Context, keyword, category string, page, pageSize int) ([]*models.Food, int64, error)
	Top(ctx context.Context, limit int) ([]*models.Food, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, food *models.Food) error
	Update(ctx context.Context, food *models.Food) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error)
	UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64, numReviews int) error
	CountAll(ctx context.Context) (int64, error)
	ReviewTotals(ctx context.Context) (totalReviews int64, averageRating float64, err error)
}

// MongoFoodRepository implements FoodRepository on a Mongo collection.
type MongoFoodRepository struct {
	collection *mongo.Collection
}

func NewMongoFoodRepository(db *mongo.Database) *MongoFoodRepository {
	return &MongoFoodRepository{collection: db.Collection("foods")}
}

// notDeleted is merged into every catalog-facing filter.
func notDeleted() bson.M {
	return bson.M{"deleted_at": bson.M{"$exists": false}}
}

func (r *MongoFoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	filter := notDeleted()
	filter["_id"] = id
	return r.findOne(ctx, filter)
}

func (r *MongoFoodRepository) FindByIDAny(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoFoodRepository) findOne(ctx context.Context, filter bson.M) (*models.Food, error) {
	var food models.Food
	err := r.collection.FindOne(ctx, filter).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *MongoFoodRepository) List(ctx context.Context, keyword, category string, page, pageSize int) ([]*models.Food, int64, error) {
	filter := notDeleted()
	if keyword != "" {
		filter["name"] = bson.M{"$regex": keyword, "$options": "i"}
	}
	if category != "" {
		filter["category"] = category
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetLimit(int64(pageSize)).
		SetSkip(int64(pageSize * (page - 1)))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var foods []*models.Food
	if err = cursor.All(ctx, &foods); err != nil {
		return nil, 0, err
	}
	return foods, total, nil
}

func (r *MongoFoodRepository) Top(ctx context.Context, limit int) ([]*models.Food, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, notDeleted(), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var foods []*models.Food
	if err = cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *MongoFoodRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", notDeleted())
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MongoFoodRepository) Create(ctx context.Context, food *models.Food) error {
	now := time.Now().UTC()
	food.CreatedAt = now
	food.UpdatedAt = now
	result, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		return err
	}
	food.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoFoodRepository) Update(ctx context.Context, food *models.Food) error {
	food.UpdatedAt = time.Now().UTC()
	filter := notDeleted()
	filter["_id"] = food.ID
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"name":        food.Name,
		"price":       food.Price,
		"description": food.Description,
		"image":       food.Image,
		"category":    food.Category,
		"updated_at":  food.UpdatedAt,
	}})
	return err
}

// SoftDelete hides a food from the catalog while keeping the document for
// historical order lines.
func (r *MongoFoodRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := notDeleted()
	filter["_id"] = id
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"deleted_at": time.Now().UTC()},
	})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *MongoFoodRepository) UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64, numReviews int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"rating":      rating,
		"num_reviews": numReviews,
		"updated_at":  time.Now().UTC(),
	}})
	return err
}

func (r *MongoFoodRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, notDeleted())
}

// ReviewTotals sums the denormalized per-food review aggregates. The average
// is weighted by review count so it matches aggregating the reviews
// collection directly.
func (r *MongoFoodRepository) ReviewTotals(ctx context.Context) (int64, float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: notDeleted()}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalReviews": bson.M{"$sum": "$num_reviews"},
			"ratingSum": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$rating", "$num_reviews"},
			}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalReviews int64   `bson:"totalReviews"`
		RatingSum    float64 `bson:"ratingSum"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 || results[0].TotalReviews == 0 {
		return 0, 0, nil
	}
	return results[0].TotalReviews, results[0].RatingSum / float64(results[0].TotalReviews), nil
}
