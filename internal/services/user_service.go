package services

import (
	"errors"
	"fmt"

	"inventory/internal/apperrors"
	"inventory/internal/models"
	"inventory/internal/repositories"

	"go.uber.org/zap"
)

// UserPatch lists the user fields a caller may change. Nil means untouched.
type UserPatch struct {
	Name     *string
	Password *string
}

// UserService handles changes to existing users.
type UserService struct {
	userRepo  repositories.UserRepository
	hasher    PasswordHasher
	publisher EventPublisher
	log       *zap.Logger
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(userRepo repositories.UserRepository, hasher PasswordHasher, publisher EventPublisher, log *zap.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		hasher:    hasher,
		publisher: publisher,
		log:       log,
	}
}

// UpdateUser applies patch to the user with the given id. The caller's
// identity is not compared with id.
func (s *UserService) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		hashed, err := hashPassword(s.hasher, *patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	publishEvent(s.publisher, s.log, EventUserUpdated, user)
	return user, nil
}
