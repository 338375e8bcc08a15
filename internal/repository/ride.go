package repository

import (
	"context"

	"rapido/internal/domain"
)

// RideStore defines the registry operations for rides. Rides are never
// deleted; iteration order is creation order.
type RideStore interface {
	// Create adds a new ride.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// GetAll retrieves all rides in creation order.
	GetAll(ctx context.Context) ([]*domain.Ride, error)

	// Update updates an existing ride.
	Update(ctx context.Context, ride *domain.Ride) error
}
