package domain

import "time"

// Role tags an identity as a rider, driver, or administrator.
type Role string

const (
	RoleRider  Role = "RIDER"
	RoleDriver Role = "DRIVER"
	RoleAdmin  Role = "ADMIN"
)

// User represents an identity in the system. A single struct tagged by Role
// stands in for the three variants; rider- and driver-specific fields stay
// zero-valued for the other roles.
//
// Rides are referenced by ID, never by pointer, so removing a user leaves
// historical rides intact and resolvable.
type User struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Rider fields.
	RideHistory []string `json:"ride_history,omitempty"`

	// Driver fields.
	VehicleNo     string   `json:"vehicle_no,omitempty"`
	Approved      bool     `json:"approved,omitempty"`
	Online        bool     `json:"online,omitempty"`
	Earnings      float64  `json:"earnings,omitempty"`
	AssignedRides []string `json:"assigned_rides,omitempty"`
}

// IsAvailable reports whether a driver can currently be offered rides.
func (u *User) IsAvailable() bool {
	return u.Role == RoleDriver && u.Approved && u.Online
}
