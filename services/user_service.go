package services

import (
	"context"
	"errors"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateProfileRequest is a partial profile edit.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Profile returns the caller's profile, creating the local record from the
// token claims on first contact.
func (s *UserService) Profile(ctx context.Context, userID, name, email string) (*models.User, *apperrors.Error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	if err := s.users.Upsert(ctx, &models.User{ID: uid, Name: name, Email: email}); err != nil {
		return nil, apperrors.Internal("Failed to load profile", err)
	}
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, apperrors.Internal("Failed to load profile", err)
	}
	return user, nil
}

// UpdateProfile applies a partial edit to the caller's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.User, *apperrors.Error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	name := user.Name
	email := user.Email
	if req.Name != "" {
		name = req.Name
	}
	if req.Email != "" {
		email = req.Email
	}
	if err := s.users.SetProfile(ctx, uid, name, email); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("Email already in use")
		}
		return nil, apperrors.Internal("Failed to update profile", err)
	}
	user.Name = name
	user.Email = email
	return user, nil
}
