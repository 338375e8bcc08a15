package repository

import "context"

// PricingStore holds the administrator-controlled base price per kilometer
// used to compute fares at booking time.
type PricingStore interface {
	// BasePricePerKm returns the current base price per kilometer.
	BasePricePerKm(ctx context.Context) (float64, error)

	// SetBasePricePerKm updates the base price. The value must be positive;
	// callers validate before calling.
	SetBasePricePerKm(ctx context.Context, price float64) error
}
