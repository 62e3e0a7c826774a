package service

import (
	"context"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/cache"
	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/logger"
	"github.com/uniquemj/ecommerce-api/internal/models"
	"github.com/uniquemj/ecommerce-api/internal/repository"
)

// UserService handles profile and admin user management.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates the user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetByID fetches a user.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns a page of users for the admin panel.
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.users.List(filter)
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	FullName  *string `json:"full_name"`
	StoreName *string `json:"store_name"`
}

// UpdateProfile applies partial profile edits.
func (s *UserService) UpdateProfile(id uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.StoreName != nil && user.Role == constants.RoleSeller {
		updates["store_name"] = strings.TrimSpace(*input.StoreName)
	}
	if len(updates) == 0 {
		return user, nil
	}
	if err := s.users.Updates(id, updates); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// VerifySeller marks a seller account as verified and drops the cached
// auth snapshot so the change is visible immediately.
func (s *UserService) VerifySeller(id uint) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != constants.RoleSeller {
		return nil, ErrNotASeller
	}
	if user.IsVerified {
		return user, nil
	}
	if err := s.users.Updates(id, map[string]interface{}{"is_verified": true}); err != nil {
		return nil, err
	}
	if err := cache.InvalidateUserAuthState(context.Background(), id); err != nil {
		logger.Warnw("auth_state_invalidate_failed", "user_id", id, "error", err)
	}
	logger.Infow("seller_verified", "user_id", id)
	return s.GetByID(id)
}
