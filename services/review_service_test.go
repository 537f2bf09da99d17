package services

import (
	"context"
	"testing"

	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	foodID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	food := &models.Food{ID: foodID, Name: "Pizza", Price: 100}

	t.Run("RejectsOutOfRangeRating", func(t *testing.T) {
		svc := NewReviewService(new(MockReviewRepository), new(MockFoodRepository))

		for _, rating := range []int{0, 6, -1} {
			_, appErr := svc.Create(ctx, foodID.Hex(), userID.Hex(), "Abel", &CreateReviewRequest{Rating: rating})
			assert.NotNil(t, appErr)
			assert.Equal(t, "Rating must be between 1 and 5", appErr.Message)
		}
	})

	t.Run("DuplicateIsConflict", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewReviewService(mockReviews, mockFoods)

		mockFoods.On("FindByID", ctx, foodID).Return(food, nil).Once()
		mockReviews.On("FindByFoodAndUser", ctx, foodID, userID).Return(&models.Review{}, nil).Once()

		_, appErr := svc.Create(ctx, foodID.Hex(), userID.Hex(), "Abel", &CreateReviewRequest{Rating: 4})

		assert.NotNil(t, appErr)
		assert.Equal(t, "Food already reviewed", appErr.Message)
		mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("IndexRaceStillAnswersConflict", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewReviewService(mockReviews, mockFoods)

		mockFoods.On("FindByID", ctx, foodID).Return(food, nil).Once()
		mockReviews.On("FindByFoodAndUser", ctx, foodID, userID).Return(nil, nil).Once()
		mockReviews.On("Create", ctx, mock.AnythingOfType("*models.Review")).Return(repository.ErrDuplicateReview).Once()

		_, appErr := svc.Create(ctx, foodID.Hex(), userID.Hex(), "Abel", &CreateReviewRequest{Rating: 4})

		assert.NotNil(t, appErr)
		assert.Equal(t, "Food already reviewed", appErr.Message)
	})

	t.Run("RecomputesAggregateAsMean", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewReviewService(mockReviews, mockFoods)

		mockFoods.On("FindByID", ctx, foodID).Return(food, nil).Once()
		mockReviews.On("FindByFoodAndUser", ctx, foodID, userID).Return(nil, nil).Once()
		mockReviews.On("Create", ctx, mock.AnythingOfType("*models.Review")).Return(nil).Once()
		mockReviews.On("FindByFood", ctx, foodID).Return([]*models.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 4},
		}, nil).Once()
		mockFoods.On("UpdateRating", ctx, foodID, float64(13)/3, 3).Return(nil).Once()

		review, appErr := svc.Create(ctx, foodID.Hex(), userID.Hex(), "Abel", &CreateReviewRequest{Rating: 4, Comment: "Good"})

		assert.Nil(t, appErr)
		assert.Equal(t, 4, review.Rating)
		mockFoods.AssertExpectations(t)
	})

	t.Run("UnknownFoodIsNotFound", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewReviewService(mockReviews, mockFoods)

		mockFoods.On("FindByID", ctx, foodID).Return(nil, nil).Once()

		_, appErr := svc.Create(ctx, foodID.Hex(), userID.Hex(), "Abel", &CreateReviewRequest{Rating: 4})

		assert.NotNil(t, appErr)
		assert.Equal(t, "Food item not found", appErr.Message)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	reviewID := primitive.NewObjectID()
	foodID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	t.Run("LastReviewResetsAggregate", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockFoods := new(MockFoodRepository)
		svc := NewReviewService(mockReviews, mockFoods)

		review := &models.Review{ID: reviewID, FoodID: foodID, UserID: userID, Rating: 5}
		mockReviews.On("FindByIDAndUser", ctx, reviewID, userID).Return(review, nil).Once()
		mockReviews.On("Delete", ctx, reviewID).Return(nil).Once()
		mockReviews.On("FindByFood", ctx, foodID).Return([]*models.Review{}, nil).Once()
		mockFoods.On("UpdateRating", ctx, foodID, 0.0, 0).Return(nil).Once()

		appErr := svc.Delete(ctx, reviewID.Hex(), userID.Hex())

		assert.Nil(t, appErr)
		mockFoods.AssertExpectations(t)
	})

	t.Run("ForeignReviewAnswersNotFound", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		svc := NewReviewService(mockReviews, new(MockFoodRepository))

		mockReviews.On("FindByIDAndUser", ctx, reviewID, userID).Return(nil, nil).Once()

		appErr := svc.Delete(ctx, reviewID.Hex(), userID.Hex())

		assert.NotNil(t, appErr)
		assert.Equal(t, "Review not found", appErr.Message)
		mockReviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListReviewsHidesOptedOutNames(t *testing.T) {
	ctx := context.Background()
	foodID := primitive.NewObjectID()

	mockReviews := new(MockReviewRepository)
	svc := NewReviewService(mockReviews, new(MockFoodRepository))

	mockReviews.On("FindByFood", ctx, foodID).Return([]*models.Review{
		{UserName: "Abel", ShowName: true, Rating: 5},
		{UserName: "Sara", ShowName: false, Rating: 3},
	}, nil).Once()

	reviews, appErr := svc.ListByFood(ctx, foodID.Hex())

	assert.Nil(t, appErr)
	assert.Equal(t, "Abel", reviews[0].UserName)
	assert.Equal(t, "Anonymous", reviews[1].UserName)
}
