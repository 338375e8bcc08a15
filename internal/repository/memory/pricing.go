package memory

import (
	"context"

	"rapido/internal/repository"
)

// Ensure PricingStore implements the repository contract.
var _ repository.PricingStore = (*PricingStore)(nil)

// PricingStore holds the base price per kilometer in memory.
type PricingStore struct {
	basePricePerKm float64
}

// NewPricingStore creates a PricingStore with the given starting price.
func NewPricingStore(basePricePerKm float64) *PricingStore {
	return &PricingStore{basePricePerKm: basePricePerKm}
}

// BasePricePerKm returns the current base price per kilometer.
func (s *PricingStore) BasePricePerKm(ctx context.Context) (float64, error) {
	return s.basePricePerKm, nil
}

// SetBasePricePerKm updates the base price.
func (s *PricingStore) SetBasePricePerKm(ctx context.Context, price float64) error {
	s.basePricePerKm = price
	return nil
}

// Snapshot returns the current base price for persistence.
func (s *PricingStore) Snapshot() float64 {
	return s.basePricePerKm
}

// Restore replaces the base price with the given value.
func (s *PricingStore) Restore(price float64) {
	s.basePricePerKm = price
}
