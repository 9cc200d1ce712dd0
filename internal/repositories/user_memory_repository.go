package repositories

import (
	"fmt"
	"sync"

	"inventory/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
// usernames indexes user IDs to enforce uniqueness.
type InMemoryUserRepository struct {
	users     map[uint]models.User
	usernames map[string]uint
	nextID    uint
	mu        sync.RWMutex
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:     make(map[uint]models.User),
		usernames: make(map[string]uint),
		nextID:    1,
	}
}

// Create adds a new user and assigns its ID.
func (r *InMemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.usernames[user.Username]; taken {
		return fmt.Errorf("username %s: %w", user.Username, ErrDuplicateUsername)
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	r.usernames[user.Username] = user.ID
	return nil
}

// GetByID returns a copy of the user with the given ID.
func (r *InMemoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByUsername returns a copy of the user with the given username.
func (r *InMemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.usernames[username]
	if !ok {
		return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
	}
	user := r.users[id]
	return &user, nil
}

// Update replaces an existing user, re-indexing the username if it changed.
func (r *InMemoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return fmt.Errorf("user with ID %d: %w", user.ID, ErrNotFound)
	}
	if existing.Username != user.Username {
		if _, taken := r.usernames[user.Username]; taken {
			return fmt.Errorf("username %s: %w", user.Username, ErrDuplicateUsername)
		}
		delete(r.usernames, existing.Username)
		r.usernames[user.Username] = user.ID
	}
	r.users[user.ID] = *user
	return nil
}
