package memory

import (
	"context"

	"rapido/internal/domain"
	"rapido/internal/repository"
)

// Ensure RideStore implements the repository contract.
var _ repository.RideStore = (*RideStore)(nil)

// RideStore is an in-memory ride registry preserving creation order.
type RideStore struct {
	rides []*domain.Ride
	index map[string]int
}

// NewRideStore creates an empty RideStore.
func NewRideStore() *RideStore {
	return &RideStore{
		index: make(map[string]int),
	}
}

// Create adds a new ride.
func (s *RideStore) Create(ctx context.Context, ride *domain.Ride) error {
	if _, ok := s.index[ride.ID]; ok {
		return repository.ErrAlreadyExists
	}

	s.index[ride.ID] = len(s.rides)
	s.rides = append(s.rides, ride)
	return nil
}

// GetByID retrieves a ride by ID.
func (s *RideStore) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.rides[i], nil
}

// GetAll retrieves all rides in creation order.
func (s *RideStore) GetAll(ctx context.Context) ([]*domain.Ride, error) {
	out := make([]*domain.Ride, len(s.rides))
	copy(out, s.rides)
	return out, nil
}

// Update updates an existing ride.
func (s *RideStore) Update(ctx context.Context, ride *domain.Ride) error {
	i, ok := s.index[ride.ID]
	if !ok {
		return repository.ErrNotFound
	}
	s.rides[i] = ride
	return nil
}

// Snapshot returns a copy of all rides for persistence.
func (s *RideStore) Snapshot() []domain.Ride {
	out := make([]domain.Ride, len(s.rides))
	for i, r := range s.rides {
		out[i] = *r
	}
	return out
}

// Restore replaces the store contents with the given rides.
func (s *RideStore) Restore(rides []domain.Ride) {
	s.rides = make([]*domain.Ride, len(rides))
	s.index = make(map[string]int, len(rides))
	for i := range rides {
		r := rides[i]
		s.rides[i] = &r
		s.index[r.ID] = i
	}
}
