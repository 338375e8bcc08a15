package cli

import (
	"context"
	"errors"

	"rapido/internal/domain"
	"rapido/internal/service"
)

func (c *CLI) riderMenu(ctx context.Context, rider *domain.User) {
	for {
		c.banner("RIDER DASHBOARD")
		c.printf("1. Book a Ride\n2. View Nearby Drivers\n3. Make Payment\n4. Ride History\n5. Logout\n")

		choice, ok := c.readInt("Choose an option (1-5): ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.bookRide(ctx, rider)
		case 2:
			c.viewNearbyDrivers(ctx)
		case 3:
			c.makePayment(ctx, rider)
		case 4:
			c.viewRideHistory(ctx, rider)
		case 5:
			c.printf("Logging out...\n")
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *CLI) bookRide(ctx context.Context, rider *domain.User) {
	c.banner("BOOK A RIDE")
	pickup, _ := c.readLine("Enter pickup location: ")
	drop, ok := c.readLine("Enter drop location: ")
	if !ok {
		return
	}

	quote, err := c.rides.RequestQuote(ctx, pickup, drop)
	if err != nil {
		if errors.Is(err, service.ErrNoDriversAvailable) {
			c.printf("No drivers available at the moment!\n")
		} else {
			c.printf("Booking failed: %v\n", err)
		}
		return
	}

	c.printf("\nRide Details:\n")
	c.printf("Distance: %.1f km\n", quote.DistanceKm)
	c.printf("Fare: Rs %.2f\n", quote.Fare)
	c.printf("ETA: %d minutes\n", quote.EtaMinutes)

	drivers, err := c.rides.ListAvailableDrivers(ctx)
	if err != nil || len(drivers) == 0 {
		c.printf("No drivers available at the moment!\n")
		return
	}

	c.printf("\nAvailable Drivers:\n")
	for i, d := range drivers {
		c.printf("%d. %s - %s\n", i+1, d.Name, d.VehicleNo)
	}

	i, ok := c.pick("Select driver: ", len(drivers))
	if !ok {
		return
	}

	ride, err := c.rides.ConfirmBooking(ctx, service.ConfirmBookingRequest{
		RiderUsername:  rider.Username,
		DriverUsername: drivers[i].Username,
		Quote:          *quote,
	})
	if err != nil {
		c.printf("Booking failed: %v\n", err)
		return
	}

	c.printf("Ride booked successfully!\n")
	c.renderReceipt(ctx, ride)
}

func (c *CLI) viewNearbyDrivers(ctx context.Context) {
	nearby, err := c.rides.NearbyDrivers(ctx)
	if err != nil || len(nearby) == 0 {
		c.printf("No drivers available nearby!\n")
		return
	}

	c.banner("NEARBY DRIVERS")
	for i, n := range nearby {
		c.printf("%d. %s - %s | %.1f km away | Rating: %.1f\n",
			i+1, n.Driver.Name, n.Driver.VehicleNo, n.DistanceKm, n.Rating)
	}
}

func (c *CLI) makePayment(ctx context.Context, rider *domain.User) {
	ongoing, err := c.rides.ListOngoingForRider(ctx, rider.Username)
	if err != nil || len(ongoing) == 0 {
		c.printf("No ongoing rides found!\n")
		return
	}

	c.printf("\nOngoing Rides:\n")
	for i, r := range ongoing {
		c.printf("%d. %s to %s - Rs %.2f\n", i+1, r.PickupLocation, r.DropLocation, r.Fare)
	}

	i, ok := c.pick("Select ride to pay: ", len(ongoing))
	if !ok {
		return
	}
	ride := ongoing[i]

	c.printf("\nPayment Methods:\n1. UPI\n2. Cash\n3. Wallet\n")
	choice, ok := c.readInt("Choose payment method (1-3): ")
	if !ok {
		return
	}

	var method domain.PaymentMethod
	var upiID string
	switch choice {
	case 1:
		method = domain.PaymentMethodUPI
		upiID, _ = c.readLine("Enter UPI ID: ")
	case 2:
		method = domain.PaymentMethodCash
	case 3:
		method = domain.PaymentMethodWallet
	default:
		c.printf("Invalid choice!\n")
		return
	}

	paid, err := c.rides.PayForRide(ctx, service.PayForRideRequest{
		RiderUsername: rider.Username,
		RideID:        ride.ID,
		Method:        method,
		UPIID:         upiID,
	})
	if err != nil {
		c.printf("Payment failed: %v\n", err)
		return
	}

	c.printf("Payment successful!\n")
	c.renderReceipt(ctx, paid)
}

func (c *CLI) viewRideHistory(ctx context.Context, rider *domain.User) {
	history, err := c.rides.RideHistory(ctx, rider.Username)
	if err != nil || len(history) == 0 {
		c.printf("No ride history found!\n")
		return
	}

	c.banner("RIDE HISTORY")
	for i, r := range history {
		driver := service.PlaceholderUnassigned
		if r.HasDriver() {
			driver = r.DriverUsername
		}
		c.printf("%d. %s | %s | %.1f km | Rs %.2f | %s | %s\n",
			i+1, r.ID, driver, r.DistanceKm, r.Fare, r.Status,
			r.BookedAt.Format("02-01-2006 15:04"))
	}
}
