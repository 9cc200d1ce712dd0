package services

import (
	"errors"
	"fmt"

	"inventory/internal/apperrors"
	"inventory/internal/models"
	"inventory/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid username or password"

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs session tokens for a username.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// SignupInput carries the fields required to register a user.
type SignupInput struct {
	Name     string
	Username string
	Password string
}

// AuthService handles signup and login.
type AuthService struct {
	userRepo  repositories.UserRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	publisher EventPublisher
	log       *zap.Logger
}

// NewAuthService creates a new AuthService. publisher may be nil.
func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens TokenIssuer, publisher EventPublisher, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
		log:       log,
	}
}

// Signup hashes the password and stores a new user.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(input.Username)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Username already taken")
	}

	hashed, err := hashPassword(s.hasher, input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: hashed,
	}
	if err := s.userRepo.Create(user); err != nil {
		// lost a race with a concurrent signup for the same username
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, apperrors.Conflict("Username already taken").Wrap(err)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	publishEvent(s.publisher, s.log, EventUserCreated, user)
	return user, nil
}

// Login checks the credentials and returns a signed token. Unknown users and
// wrong passwords produce the same error.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperrors.Unauthenticated(invalidCredentials)
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.Unauthenticated(invalidCredentials)
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func hashPassword(hasher PasswordHasher, password string) (string, error) {
	hashed, err := hasher.Hash(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.BadRequest("Password is too long").Wrap(err)
		}
		return "", err
	}
	return hashed, nil
}
