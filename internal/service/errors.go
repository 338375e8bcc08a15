package service

import "errors"

var (
	// ErrInvalidInput is returned when caller input fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned when no user matches the given
	// username and password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound is returned when the referenced username does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrDriverNotFound is returned when no driver matches the given username.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrRideNotFound is returned when the referenced ride does not exist.
	ErrRideNotFound = errors.New("ride not found")

	// ErrNoDriversAvailable is returned when no approved, online driver exists.
	ErrNoDriversAvailable = errors.New("no drivers available")

	// ErrDriverNotApproved is returned when an unapproved driver attempts to
	// go online.
	ErrDriverNotApproved = errors.New("driver not approved")

	// ErrDriverNotEligible is returned when a driver who is not approved and
	// online attempts to take a ride.
	ErrDriverNotEligible = errors.New("driver not approved and online")

	// ErrRideNotOpen is returned when accepting a ride that is not in the
	// open-request pool.
	ErrRideNotOpen = errors.New("ride not open for acceptance")

	// ErrRideNotOngoing is returned when completing or paying for a ride that
	// is not ONGOING.
	ErrRideNotOngoing = errors.New("ride not ongoing")

	// ErrRideAlreadyCompleted is returned on a second completion attempt.
	// Earnings are credited exactly once.
	ErrRideAlreadyCompleted = errors.New("ride already completed")

	// ErrRideNotOwnedByDriver is returned when a driver operates on a ride
	// assigned to someone else.
	ErrRideNotOwnedByDriver = errors.New("ride not assigned to this driver")

	// ErrRideNotOwnedByRider is returned when a rider pays for a ride they
	// did not book.
	ErrRideNotOwnedByRider = errors.New("ride does not belong to this rider")

	// ErrInvalidBasePrice is returned for a non-positive base price.
	ErrInvalidBasePrice = errors.New("invalid base price")

	// ErrInvalidPaymentMethod is returned for an unknown payment method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrMissingUPIID is returned when paying by UPI without a UPI ID.
	ErrMissingUPIID = errors.New("upi id required for upi payment")
)
