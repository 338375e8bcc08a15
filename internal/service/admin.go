package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"rapido/internal/domain"
	"rapido/internal/repository"
)

// AdminService handles administrator operations.
type AdminService struct {
	users     repository.UserStore
	rides     repository.RideStore
	pricing   repository.PricingStore
	persister Persister
	log       *zap.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	users repository.UserStore,
	rides repository.RideStore,
	pricing repository.PricingStore,
	persister Persister,
	log *zap.Logger,
) *AdminService {
	return &AdminService{
		users:     users,
		rides:     rides,
		pricing:   pricing,
		persister: persister,
		log:       log,
	}
}

// ApproveDriver marks the driver with the given username as approved.
func (s *AdminService) ApproveDriver(ctx context.Context, username string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDriverNotFound
		}
		return err
	}
	if user.Role != domain.RoleDriver {
		return ErrDriverNotFound
	}

	user.Approved = true
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.persist(ctx)
	s.log.Info("driver approved", zap.String("username", username))
	return nil
}

// RemoveUser removes the user with the given username. Rides referencing the
// user are kept; receipt resolution falls back to a placeholder.
func (s *AdminService) RemoveUser(ctx context.Context, username string) error {
	if err := s.users.Delete(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.persist(ctx)
	s.log.Info("user removed", zap.String("username", username))
	return nil
}

// BasePricePerKm returns the current base price per kilometer.
func (s *AdminService) BasePricePerKm(ctx context.Context) (float64, error) {
	return s.pricing.BasePricePerKm(ctx)
}

// SetBasePricePerKm updates the base price per kilometer. The price must be
// positive.
func (s *AdminService) SetBasePricePerKm(ctx context.Context, price float64) error {
	if price <= 0 {
		return ErrInvalidBasePrice
	}

	if err := s.pricing.SetBasePricePerKm(ctx, price); err != nil {
		return err
	}

	s.persist(ctx)
	s.log.Info("base price updated", zap.Float64("price_per_km", price))
	return nil
}

// ListRiders returns all riders in registration order.
func (s *AdminService) ListRiders(ctx context.Context) ([]*domain.User, error) {
	return s.listByRole(ctx, domain.RoleRider)
}

// ListDrivers returns all drivers in registration order.
func (s *AdminService) ListDrivers(ctx context.Context) ([]*domain.User, error) {
	return s.listByRole(ctx, domain.RoleDriver)
}

// ListUnapprovedDrivers returns drivers awaiting approval.
func (s *AdminService) ListUnapprovedDrivers(ctx context.Context) ([]*domain.User, error) {
	drivers, err := s.listByRole(ctx, domain.RoleDriver)
	if err != nil {
		return nil, err
	}

	var pending []*domain.User
	for _, d := range drivers {
		if !d.Approved {
			pending = append(pending, d)
		}
	}
	return pending, nil
}

// ListAllRides returns every ride in creation order.
func (s *AdminService) ListAllRides(ctx context.Context) ([]*domain.Ride, error) {
	return s.rides.GetAll(ctx)
}

func (s *AdminService) listByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []*domain.User
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *AdminService) persist(ctx context.Context) {
	if err := s.persister.Persist(ctx); err != nil {
		s.log.Warn("snapshot save failed", zap.Error(err))
	}
}
