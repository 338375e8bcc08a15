package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"rapido/internal/domain"
	"rapido/internal/repository"
)

// Default administrator bootstrapped at first startup. The fixed credentials
// are intentional; see the persisted-state contract.
const (
	defaultAdminName     = "System Admin"
	defaultAdminPhone    = "0000000000"
	defaultAdminUsername = "adminhemant"
	defaultAdminPassword = "hemant123"
)

// AuthService handles authentication and registration.
type AuthService struct {
	users     repository.UserStore
	persister Persister
	validate  *validator.Validate
	log       *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserStore, persister Persister, log *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		persister: persister,
		validate:  validator.New(),
		log:       log,
	}
}

// Authenticate returns the user matching the exact username and password.
// Passwords are stored and compared as plain text, matching the simulator's
// persisted-state contract.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UsernameTaken reports whether a username is already registered.
func (s *AuthService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RegisterRiderRequest contains the parameters for registering a rider.
type RegisterRiderRequest struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required,numeric"`
	Username string `validate:"required,alphanum"`
	Password string `validate:"required,min=4"`
}

// RegisterRider registers a new rider.
func (s *AuthService) RegisterRider(ctx context.Context, req RegisterRiderRequest) (*domain.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rider := &domain.User{
		Name:      req.Name,
		Phone:     req.Phone,
		Username:  req.Username,
		Password:  req.Password,
		Role:      domain.RoleRider,
		CreatedAt: time.Now(),
	}

	if err := s.users.Create(ctx, rider); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.persist(ctx)
	s.log.Info("rider registered", zap.String("username", rider.Username))
	return rider, nil
}

// RegisterDriverRequest contains the parameters for registering a driver.
type RegisterDriverRequest struct {
	Name      string `validate:"required"`
	Phone     string `validate:"required,numeric"`
	VehicleNo string `validate:"required"`
	Username  string `validate:"required,alphanum"`
	Password  string `validate:"required,min=4"`
}

// RegisterDriver registers a new driver. The driver starts unapproved and
// offline until an administrator approves them.
func (s *AuthService) RegisterDriver(ctx context.Context, req RegisterDriverRequest) (*domain.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	driver := &domain.User{
		Name:      req.Name,
		Phone:     req.Phone,
		Username:  req.Username,
		Password:  req.Password,
		Role:      domain.RoleDriver,
		CreatedAt: time.Now(),
		VehicleNo: req.VehicleNo,
	}

	if err := s.users.Create(ctx, driver); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.persist(ctx)
	s.log.Info("driver registered, pending approval", zap.String("username", driver.Username))
	return driver, nil
}

// EnsureDefaultAdmin bootstraps the default administrator when no identity
// with the admin role exists in the loaded state.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			return nil
		}
	}

	admin := &domain.User{
		Name:      defaultAdminName,
		Phone:     defaultAdminPhone,
		Username:  defaultAdminUsername,
		Password:  defaultAdminPassword,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	s.persist(ctx)
	s.log.Info("default admin created", zap.String("username", admin.Username))
	return nil
}

func (s *AuthService) persist(ctx context.Context) {
	if err := s.persister.Persist(ctx); err != nil {
		s.log.Warn("snapshot save failed", zap.Error(err))
	}
}
