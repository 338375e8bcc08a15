package service

import (
	"context"
	"errors"

	"rapido/internal/domain"
	"rapido/internal/repository"
)

// Placeholders used when a receipt field cannot be resolved.
const (
	// PlaceholderRemovedUser stands in for a rider whose account was removed.
	PlaceholderRemovedUser = "removed user"

	// PlaceholderUnassigned stands in for a missing driver or vehicle.
	PlaceholderUnassigned = "unassigned"

	// PlaceholderPaymentPending stands in for an unset payment method.
	PlaceholderPaymentPending = "Pending"
)

// ReceiptService resolves rides into structured receipt fields.
type ReceiptService struct {
	users repository.UserStore
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(users repository.UserStore) *ReceiptService {
	return &ReceiptService{users: users}
}

// Build resolves the receipt fields for a ride. Removed users and unassigned
// drivers resolve to placeholders rather than failing.
func (s *ReceiptService) Build(ctx context.Context, ride *domain.Ride) (*domain.Receipt, error) {
	receipt := &domain.Receipt{
		RideID:         ride.ID,
		RiderName:      PlaceholderRemovedUser,
		DriverName:     PlaceholderUnassigned,
		VehicleNo:      PlaceholderUnassigned,
		PickupLocation: ride.PickupLocation,
		DropLocation:   ride.DropLocation,
		DistanceKm:     ride.DistanceKm,
		Fare:           ride.Fare,
		EtaMinutes:     ride.EtaMinutes,
		Status:         ride.Status,
		PaymentMethod:  PlaceholderPaymentPending,
		BookedAt:       ride.BookedAt,
	}

	rider, err := s.users.GetByUsername(ctx, ride.RiderUsername)
	if err == nil {
		receipt.RiderName = rider.Name
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if ride.HasDriver() {
		driver, err := s.users.GetByUsername(ctx, ride.DriverUsername)
		if err == nil {
			receipt.DriverName = driver.Name
			receipt.VehicleNo = driver.VehicleNo
		} else if errors.Is(err, repository.ErrNotFound) {
			receipt.DriverName = PlaceholderRemovedUser
			receipt.VehicleNo = PlaceholderRemovedUser
		} else {
			return nil, err
		}
	}

	if ride.PaymentMethod != "" {
		receipt.PaymentMethod = string(ride.PaymentMethod)
	}

	return receipt, nil
}
