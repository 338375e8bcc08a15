package domain

import "time"

// Receipt carries the structured fields of a ride receipt. Rendering is a
// presentation concern; the core only resolves names and placeholders.
type Receipt struct {
	RideID         string
	RiderName      string
	DriverName     string
	VehicleNo      string
	PickupLocation string
	DropLocation   string
	DistanceKm     float64
	Fare           float64
	EtaMinutes     int
	Status         RideStatus
	PaymentMethod  string
	BookedAt       time.Time
}
