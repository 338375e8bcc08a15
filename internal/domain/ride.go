package domain

import "time"

// RideStatus represents the current status of a ride. Status only moves
// forward: REQUESTED -> ONGOING -> COMPLETED.
type RideStatus string

const (
	RideStatusRequested RideStatus = "REQUESTED"
	RideStatusOngoing   RideStatus = "ONGOING"
	RideStatusCompleted RideStatus = "COMPLETED"

	// RideStatusCancelled is reserved; no operation produces it.
	RideStatusCancelled RideStatus = "CANCELLED"
)

// PaymentMethod represents the payment method for a ride.
type PaymentMethod string

const (
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodWallet PaymentMethod = "WALLET"
)

// Ride represents one trip record spanning booking through completion.
// Distance, fare, and ETA are fixed at booking time and never recomputed.
type Ride struct {
	ID             string        `json:"id"`
	PickupLocation string        `json:"pickup_location"`
	DropLocation   string        `json:"drop_location"`
	DistanceKm     float64       `json:"distance_km"`
	Fare           float64       `json:"fare"`
	EtaMinutes     int           `json:"eta_minutes"`
	Status         RideStatus    `json:"status"`
	RiderUsername  string        `json:"rider_username"`
	DriverUsername string        `json:"driver_username,omitempty"`
	BookedAt       time.Time     `json:"booked_at"`
	CompletedAt    time.Time     `json:"completed_at,omitempty"`
	PaymentMethod  PaymentMethod `json:"payment_method,omitempty"`
	UPIID          string        `json:"upi_id,omitempty"`
}

// HasDriver reports whether a driver has been assigned to the ride.
func (r *Ride) HasDriver() bool {
	return r.DriverUsername != ""
}

// IsOpen reports whether the ride sits in the open-request pool, visible to
// eligible drivers.
func (r *Ride) IsOpen() bool {
	return r.Status == RideStatusRequested && !r.HasDriver()
}
