package services

import (
	"context"
	"testing"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	existing := &models.User{ID: userID, Name: "Abel", Email: "abel@example.com"}

	t.Run("PartialUpdateKeepsUnsetFields", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := NewUserService(mockUsers)

		mockUsers.On("FindByID", ctx, userID).Return(existing, nil).Once()
		mockUsers.On("SetProfile", ctx, userID, "Abel", "new@example.com").Return(nil).Once()

		user, appErr := svc.UpdateProfile(ctx, userID.Hex(), &UpdateProfileRequest{Email: "new@example.com"})

		assert.Nil(t, appErr)
		assert.Equal(t, "Abel", user.Name)
		assert.Equal(t, "new@example.com", user.Email)
		mockUsers.AssertExpectations(t)
	})

	t.Run("TakenEmailIsConflict", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := NewUserService(mockUsers)

		mockUsers.On("FindByID", ctx, userID).Return(existing, nil).Once()
		mockUsers.On("SetProfile", ctx, userID, "Abel", "taken@example.com").
			Return(repository.ErrDuplicateEmail).Once()

		_, appErr := svc.UpdateProfile(ctx, userID.Hex(), &UpdateProfileRequest{Email: "taken@example.com"})

		assert.NotNil(t, appErr)
		assert.Equal(t, apperrors.KindConflict, appErr.Kind)
		assert.Equal(t, "Email already in use", appErr.Message)
	})

	t.Run("UnknownUserIsNotFound", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := NewUserService(mockUsers)

		mockUsers.On("FindByID", ctx, userID).Return(nil, nil).Once()

		_, appErr := svc.UpdateProfile(ctx, userID.Hex(), &UpdateProfileRequest{Name: "x"})

		assert.NotNil(t, appErr)
		assert.Equal(t, "User not found", appErr.Message)
		mockUsers.AssertNotCalled(t, "SetProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
