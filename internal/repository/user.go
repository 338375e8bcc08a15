package repository

import (
	"context"

	"rapido/internal/domain"
)

// UserStore defines the registry operations for identities. Usernames are
// unique across all roles; iteration order is registration order.
type UserStore interface {
	// Create adds a new user. Returns ErrAlreadyExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetAll retrieves all users in registration order.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by username.
	Delete(ctx context.Context, username string) error
}
