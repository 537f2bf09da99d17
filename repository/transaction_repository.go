package repository

import (
	"context"
	"time"

	"food-delivery-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository defines the interface for payment transaction records.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Transaction, error)
}

// MongoTransactionRepository implements TransactionRepository.
type MongoTransactionRepository struct {
	collection *mongo.Collection
}

func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{collection: db.Collection("transactions")}
}

func (r *MongoTransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	tx.CreatedAt = time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, tx)
	if err != nil {
		return err
	}
	tx.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoTransactionRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Transaction, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []*models.Transaction
	if err = cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
