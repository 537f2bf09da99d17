package services

import (
	"context"

	apperrors "food-delivery-backend/common/errors"
	"food-delivery-backend/models"
	"food-delivery-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddressRequest is the payload for adding a delivery address.
type AddressRequest struct {
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateAddressRequest is a partial address edit. Nil pointers leave
// fields unchanged.
type UpdateAddressRequest struct {
	Name      *string `json:"name"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Phone     *string `json:"phone"`
	IsDefault *bool   `json:"isDefault"`
}

type AddressService struct {
	users repository.UserRepository
}

func NewAddressService(users repository.UserRepository) *AddressService {
	return &AddressService{users: users}
}

// List returns the caller's saved delivery addresses.
func (s *AddressService) List(ctx context.Context, userID string) ([]models.Address, *apperrors.Error) {
	user, appErr := s.loadUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	if user.Addresses == nil {
		return []models.Address{}, nil
	}
	return user.Addresses, nil
}

// Add appends a new address. At most one address is the default at a time.
func (s *AddressService) Add(ctx context.Context, userID string, req *AddressRequest) ([]models.Address, *apperrors.Error) {
	if req.Name == "" || req.Street == "" || req.City == "" || req.State == "" ||
		req.ZipCode == "" || req.Phone == "" {
		return nil, apperrors.Validation("Please fill all address fields")
	}

	user, appErr := s.loadUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	addresses := user.Addresses
	isDefault := req.IsDefault || len(addresses) == 0
	if isDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
	}
	addresses = append(addresses, models.Address{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Phone:     req.Phone,
		IsDefault: isDefault,
	})

	return s.save(ctx, user.ID, addresses)
}

// Update edits one of the caller's addresses.
func (s *AddressService) Update(ctx context.Context, userID, addressID string, req *UpdateAddressRequest) ([]models.Address, *apperrors.Error) {
	aid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return nil, apperrors.Validation("Invalid address ID")
	}
	user, appErr := s.loadUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	addresses := user.Addresses
	idx := -1
	for i := range addresses {
		if addresses[i].ID == aid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NotFound("Address not found")
	}

	addr := &addresses[idx]
	if req.Name != nil {
		addr.Name = *req.Name
	}
	if req.Street != nil {
		addr.Street = *req.Street
	}
	if req.City != nil {
		addr.City = *req.City
	}
	if req.State != nil {
		addr.State = *req.State
	}
	if req.ZipCode != nil {
		addr.ZipCode = *req.ZipCode
	}
	if req.Phone != nil {
		addr.Phone = *req.Phone
	}
	if req.IsDefault != nil && *req.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = i == idx
		}
	}

	return s.save(ctx, user.ID, addresses)
}

// Delete removes one of the caller's addresses.
func (s *AddressService) Delete(ctx context.Context, userID, addressID string) ([]models.Address, *apperrors.Error) {
	aid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return nil, apperrors.Validation("Invalid address ID")
	}
	user, appErr := s.loadUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	addresses := user.Addresses
	idx := -1
	for i := range addresses {
		if addresses[i].ID == aid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NotFound("Address not found")
	}

	wasDefault := addresses[idx].IsDefault
	addresses = append(addresses[:idx], addresses[idx+1:]...)
	if wasDefault && len(addresses) > 0 {
		addresses[0].IsDefault = true
	}

	return s.save(ctx, user.ID, addresses)
}

// SetDefault marks one address as the default and clears the flag on the
// rest.
func (s *AddressService) SetDefault(ctx context.Context, userID, addressID string) ([]models.Address, *apperrors.Error) {
	aid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return nil, apperrors.Validation("Invalid address ID")
	}
	user, appErr := s.loadUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	addresses := user.Addresses
	found := false
	for i := range addresses {
		match := addresses[i].ID == aid
		addresses[i].IsDefault = match
		if match {
			found = true
		}
	}
	if !found {
		return nil, apperrors.NotFound("Address not found")
	}

	return s.save(ctx, user.ID, addresses)
}

func (s *AddressService) loadUser(ctx context.Context, userID string) (*models.User, *apperrors.Error) {
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
	return user, nil
}

func (s *AddressService) save(ctx context.Context, userID primitive.ObjectID, addresses []models.Address) ([]models.Address, *apperrors.Error) {
	if err := s.users.SetAddresses(ctx, userID, addresses); err != nil {
		return nil, apperrors.Internal("Failed to save addresses", err)
	}
	return addresses, nil
}
