package memory

import (
	"context"

	"rapido/internal/domain"
	"rapido/internal/repository"
)

// Ensure UserStore implements the repository contract.
var _ repository.UserStore = (*UserStore)(nil)

// UserStore is an in-memory user registry. A slice preserves registration
// order for listings; a username index serves lookups.
type UserStore struct {
	users []*domain.User
	index map[string]int
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		index: make(map[string]int),
	}
}

// Create adds a new user.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if _, ok := s.index[user.Username]; ok {
		return repository.ErrAlreadyExists
	}

	s.index[user.Username] = len(s.users)
	s.users = append(s.users, user)
	return nil
}

// GetByUsername retrieves a user by username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	i, ok := s.index[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.users[i], nil
}

// GetAll retrieves all users in registration order.
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// Update updates an existing user.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	i, ok := s.index[user.Username]
	if !ok {
		return repository.ErrNotFound
	}
	s.users[i] = user
	return nil
}

// Delete removes a user by username. Rides referencing the username are
// untouched; resolution degrades to a missing-key lookup.
func (s *UserStore) Delete(ctx context.Context, username string) error {
	i, ok := s.index[username]
	if !ok {
		return repository.ErrNotFound
	}

	s.users = append(s.users[:i], s.users[i+1:]...)
	delete(s.index, username)
	for j := i; j < len(s.users); j++ {
		s.index[s.users[j].Username] = j
	}
	return nil
}

// Snapshot returns a copy of all users for persistence.
func (s *UserStore) Snapshot() []domain.User {
	out := make([]domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = *u
	}
	return out
}

// Restore replaces the store contents with the given users.
func (s *UserStore) Restore(users []domain.User) {
	s.users = make([]*domain.User, len(users))
	s.index = make(map[string]int, len(users))
	for i := range users {
		u := users[i]
		s.users[i] = &u
		s.index[u.Username] = i
	}
}
