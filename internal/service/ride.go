package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rapido/internal/domain"
	"rapido/internal/repository"
)

// RideService handles booking, matching, and the ride lifecycle.
type RideService struct {
	users     repository.UserStore
	rides     repository.RideStore
	pricing   repository.PricingStore
	persister Persister
	rnd       Rand
	log       *zap.Logger
}

// NewRideService creates a new RideService.
func NewRideService(
	users repository.UserStore,
	rides repository.RideStore,
	pricing repository.PricingStore,
	persister Persister,
	rnd Rand,
	log *zap.Logger,
) *RideService {
	return &RideService{
		users:     users,
		rides:     rides,
		pricing:   pricing,
		persister: persister,
		rnd:       rnd,
		log:       log,
	}
}

// Quote is an advisory fare quote. Distance and ETA are pseudo-random; the
// fare is distance times the base price at quoting time. No ride is created
// until the booking is confirmed.
type Quote struct {
	PickupLocation string
	DropLocation   string
	DistanceKm     float64
	Fare           float64
	EtaMinutes     int
}

// RequestQuote produces a quote for a trip between two locations. Fails with
// ErrNoDriversAvailable when no approved, online driver exists, before any
// driver selection is offered.
func (s *RideService) RequestQuote(ctx context.Context, pickup, drop string) (*Quote, error) {
	available, err := s.ListAvailableDrivers(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, ErrNoDriversAvailable
	}

	basePrice, err := s.pricing.BasePricePerKm(ctx)
	if err != nil {
		return nil, err
	}

	// Distance uniform in 1.0-10.0 km, one decimal; ETA uniform in 2-10 min.
	distance := math.Round((s.rnd.Float64()*9+1)*10) / 10
	eta := s.rnd.Intn(9) + 2

	return &Quote{
		PickupLocation: pickup,
		DropLocation:   drop,
		DistanceKm:     distance,
		Fare:           distance * basePrice,
		EtaMinutes:     eta,
	}, nil
}

// RequestRide creates a ride without a driver. It enters the open-request
// pool as REQUESTED until an eligible driver accepts it.
func (s *RideService) RequestRide(ctx context.Context, riderUsername string, quote Quote) (*domain.Ride, error) {
	rider, err := s.getUser(ctx, riderUsername, domain.RoleRider)
	if err != nil {
		return nil, err
	}

	ride := &domain.Ride{
		ID:             uuid.New().String(),
		PickupLocation: quote.PickupLocation,
		DropLocation:   quote.DropLocation,
		DistanceKm:     quote.DistanceKm,
		Fare:           quote.Fare,
		EtaMinutes:     quote.EtaMinutes,
		Status:         domain.RideStatusRequested,
		RiderUsername:  rider.Username,
		BookedAt:       time.Now(),
	}

	if err := s.rides.Create(ctx, ride); err != nil {
		return nil, err
	}

	rider.RideHistory = append(rider.RideHistory, ride.ID)
	if err := s.users.Update(ctx, rider); err != nil {
		return nil, err
	}

	s.persist(ctx)
	s.log.Info("ride requested",
		zap.String("ride_id", ride.ID),
		zap.String("rider", rider.Username))
	return ride, nil
}

// ConfirmBookingRequest contains the parameters for committing a booking.
type ConfirmBookingRequest struct {
	RiderUsername  string
	DriverUsername string
	Quote          Quote
}

// ConfirmBooking creates the ride with the chosen driver. The ride starts
// ONGOING immediately and is appended to the rider's history and the
// driver's assigned list.
func (s *RideService) ConfirmBooking(ctx context.Context, req ConfirmBookingRequest) (*domain.Ride, error) {
	rider, err := s.getUser(ctx, req.RiderUsername, domain.RoleRider)
	if err != nil {
		return nil, err
	}

	driver, err := s.getDriver(ctx, req.DriverUsername)
	if err != nil {
		return nil, err
	}
	if !driver.IsAvailable() {
		return nil, ErrDriverNotEligible
	}

	ride := &domain.Ride{
		ID:             uuid.New().String(),
		PickupLocation: req.Quote.PickupLocation,
		DropLocation:   req.Quote.DropLocation,
		DistanceKm:     req.Quote.DistanceKm,
		Fare:           req.Quote.Fare,
		EtaMinutes:     req.Quote.EtaMinutes,
		Status:         domain.RideStatusOngoing,
		RiderUsername:  rider.Username,
		DriverUsername: driver.Username,
		BookedAt:       time.Now(),
	}

	if err := s.rides.Create(ctx, ride); err != nil {
		return nil, err
	}

	rider.RideHistory = append(rider.RideHistory, ride.ID)
	if err := s.users.Update(ctx, rider); err != nil {
		return nil, err
	}

	driver.AssignedRides = append(driver.AssignedRides, ride.ID)
	if err := s.users.Update(ctx, driver); err != nil {
		return nil, err
	}

	s.persist(ctx)
	s.log.Info("ride booked",
		zap.String("ride_id", ride.ID),
		zap.String("rider", rider.Username),
		zap.String("driver", driver.Username))
	return ride, nil
}

// AcceptRide assigns an open ride request to a driver. The driver must be
// approved and online; the ride must still be in the open-request pool.
func (s *RideService) AcceptRide(ctx context.Context, driverUsername, rideID string) (*domain.Ride, error) {
	driver, err := s.getDriver(ctx, driverUsername)
	if err != nil {
		return nil, err
	}
	if !driver.IsAvailable() {
		return nil, ErrDriverNotEligible
	}

	ride, err := s.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.IsOpen() {
		return nil, ErrRideNotOpen
	}

	ride.DriverUsername = driver.Username
	ride.Status = domain.RideStatusOngoing
	if err := s.rides.Update(ctx, ride); err != nil {
		return nil, err
	}

	driver.AssignedRides = append(driver.AssignedRides, ride.ID)
	if err := s.users.Update(ctx, driver); err != nil {
		return nil, err
	}

	s.persist(ctx)
	s.log.Info("ride accepted",
		zap.String("ride_id", ride.ID),
		zap.String("driver", driver.Username))
	return ride, nil
}

// CompleteRide marks an ongoing ride as completed and credits the fare to
// the driver. Completion is idempotent: a second attempt on an already
// completed ride fails and credits nothing.
func (s *RideService) CompleteRide(ctx context.Context, driverUsername, rideID string) (*domain.Ride, error) {
	driver, err := s.getDriver(ctx, driverUsername)
	if err != nil {
		return nil, err
	}

	ride, err := s.getRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status == domain.RideStatusCompleted {
		return nil, ErrRideAlreadyCompleted
	}
	if ride.Status != domain.RideStatusOngoing {
		return nil, ErrRideNotOngoing
	}
	if ride.DriverUsername != driver.Username {
		return nil, ErrRideNotOwnedByDriver
	}

	ride.Status = domain.RideStatusCompleted
	ride.CompletedAt = time.Now()
	if err := s.rides.Update(ctx, ride); err != nil {
		return nil, err
	}

	driver.Earnings += ride.Fare
	if err := s.users.Update(ctx, driver); err != nil {
		return nil, err
	}

	s.persist(ctx)
	s.log.Info("ride completed",
		zap.String("ride_id", ride.ID),
		zap.String("driver", driver.Username),
		zap.Float64("fare", ride.Fare))
	return ride, nil
}

// PayForRideRequest contains the parameters for paying for a ride.
type PayForRideRequest struct {
	RiderUsername string
	RideID        string
	Method        domain.PaymentMethod
	UPIID         string
}

// PayForRide records payment for an ongoing ride and completes it. This is
// the rider-side completion path; it credits the assigned driver's earnings
// under the same exactly-once guard as CompleteRide.
func (s *RideService) PayForRide(ctx context.Context, req PayForRideRequest) (*domain.Ride, error) {
	switch req.Method {
	case domain.PaymentMethodUPI, domain.PaymentMethodCash, domain.PaymentMethodWallet:
	default:
		return nil, ErrInvalidPaymentMethod
	}
	if req.Method == domain.PaymentMethodUPI && req.UPIID == "" {
		return nil, ErrMissingUPIID
	}

	ride, err := s.getRide(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if ride.RiderUsername != req.RiderUsername {
		return nil, ErrRideNotOwnedByRider
	}
	if ride.Status == domain.RideStatusCompleted {
		return nil, ErrRideAlreadyCompleted
	}
	if ride.Status != domain.RideStatusOngoing {
		return nil, ErrRideNotOngoing
	}

	ride.PaymentMethod = req.Method
	if req.Method == domain.PaymentMethodUPI {
		ride.UPIID = req.UPIID
	}
	ride.Status = domain.RideStatusCompleted
	ride.CompletedAt = time.Now()
	if err := s.rides.Update(ctx, ride); err != nil {
		return nil, err
	}

	if ride.HasDriver() {
		driver, err := s.users.GetByUsername(ctx, ride.DriverUsername)
		if err == nil {
			driver.Earnings += ride.Fare
			if err := s.users.Update(ctx, driver); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	s.persist(ctx)
	s.log.Info("ride paid",
		zap.String("ride_id", ride.ID),
		zap.String("method", string(req.Method)))
	return ride, nil
}

// ToggleOnline flips a driver's online flag and returns the new state. Only
// approved drivers may go online.
func (s *RideService) ToggleOnline(ctx context.Context, driverUsername string) (bool, error) {
	driver, err := s.getDriver(ctx, driverUsername)
	if err != nil {
		return false, err
	}
	if !driver.Approved {
		return false, ErrDriverNotApproved
	}

	driver.Online = !driver.Online
	if err := s.users.Update(ctx, driver); err != nil {
		return false, err
	}

	s.persist(ctx)
	return driver.Online, nil
}

// ListAvailableDrivers returns approved, online drivers in registration order.
func (s *RideService) ListAvailableDrivers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var available []*domain.User
	for _, u := range users {
		if u.IsAvailable() {
			available = append(available, u)
		}
	}
	return available, nil
}

// ListOpenRequests returns rides in the open-request pool in creation order.
func (s *RideService) ListOpenRequests(ctx context.Context) ([]*domain.Ride, error) {
	rides, err := s.rides.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var open []*domain.Ride
	for _, r := range rides {
		if r.IsOpen() {
			open = append(open, r)
		}
	}
	return open, nil
}

// ListRidesForDriver returns rides assigned to the given driver.
func (s *RideService) ListRidesForDriver(ctx context.Context, driverUsername string) ([]*domain.Ride, error) {
	rides, err := s.rides.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []*domain.Ride
	for _, r := range rides {
		if r.DriverUsername == driverUsername {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListOngoingForDriver returns the driver's rides that are still ongoing.
func (s *RideService) ListOngoingForDriver(ctx context.Context, driverUsername string) ([]*domain.Ride, error) {
	rides, err := s.ListRidesForDriver(ctx, driverUsername)
	if err != nil {
		return nil, err
	}

	var ongoing []*domain.Ride
	for _, r := range rides {
		if r.Status == domain.RideStatusOngoing {
			ongoing = append(ongoing, r)
		}
	}
	return ongoing, nil
}

// ListOngoingForRider returns the rider's rides that are still ongoing.
func (s *RideService) ListOngoingForRider(ctx context.Context, riderUsername string) ([]*domain.Ride, error) {
	rides, err := s.rides.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var ongoing []*domain.Ride
	for _, r := range rides {
		if r.RiderUsername == riderUsername && r.Status == domain.RideStatusOngoing {
			ongoing = append(ongoing, r)
		}
	}
	return ongoing, nil
}

// RideHistory returns the rider's booked rides in booking order. Rides whose
// records are missing are skipped.
func (s *RideService) RideHistory(ctx context.Context, riderUsername string) ([]*domain.Ride, error) {
	rider, err := s.getUser(ctx, riderUsername, domain.RoleRider)
	if err != nil {
		return nil, err
	}

	var history []*domain.Ride
	for _, id := range rider.RideHistory {
		ride, err := s.rides.GetByID(ctx, id)
		if err != nil {
			continue
		}
		history = append(history, ride)
	}
	return history, nil
}

// NearbyDriver is an available driver decorated with display-only distance
// and rating figures.
type NearbyDriver struct {
	Driver     *domain.User
	DistanceKm float64
	Rating     float64
}

// NearbyDrivers returns available drivers with random distance (0.5-5.5 km)
// and rating (4.0-5.0) for display. The figures play no part in matching or
// fares.
func (s *RideService) NearbyDrivers(ctx context.Context) ([]NearbyDriver, error) {
	available, err := s.ListAvailableDrivers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]NearbyDriver, len(available))
	for i, d := range available {
		out[i] = NearbyDriver{
			Driver:     d,
			DistanceKm: math.Round((s.rnd.Float64()*5+0.5)*10) / 10,
			Rating:     4.0 + s.rnd.Float64(),
		}
	}
	return out, nil
}

func (s *RideService) getUser(ctx context.Context, username string, role domain.Role) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != role {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *RideService) getDriver(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	if user.Role != domain.RoleDriver {
		return nil, ErrDriverNotFound
	}
	return user, nil
}

func (s *RideService) getRide(ctx context.Context, id string) (*domain.Ride, error) {
	ride, err := s.rides.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, err
	}
	return ride, nil
}

func (s *RideService) persist(ctx context.Context) {
	if err := s.persister.Persist(ctx); err != nil {
		s.log.Warn("snapshot save failed", zap.Error(err))
	}
}
