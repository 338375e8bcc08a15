package cli

import (
	"context"
	"errors"

	"rapido/internal/domain"
	"rapido/internal/service"
)

func (c *CLI) driverMenu(ctx context.Context, driver *domain.User) {
	for {
		c.banner("DRIVER DASHBOARD")
		c.printf("1. Go Online/Offline\n2. View Ride Requests\n3. Accept Ride\n4. Mark Ride as Completed\n5. View Earnings\n6. Logout\n")

		choice, ok := c.readInt("Choose an option (1-6): ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.toggleOnline(ctx, driver)
		case 2:
			c.viewRideRequests(ctx, driver)
		case 3:
			c.acceptRide(ctx, driver)
		case 4:
			c.markRideCompleted(ctx, driver)
		case 5:
			c.viewEarnings(ctx, driver)
		case 6:
			c.printf("Logging out...\n")
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *CLI) toggleOnline(ctx context.Context, driver *domain.User) {
	online, err := c.rides.ToggleOnline(ctx, driver.Username)
	if err != nil {
		if errors.Is(err, service.ErrDriverNotApproved) {
			c.printf("You are not approved by admin yet!\n")
		} else {
			c.printf("Could not change status: %v\n", err)
		}
		return
	}

	if online {
		c.printf("You are now ONLINE\n")
	} else {
		c.printf("You are now OFFLINE\n")
	}
}

func (c *CLI) viewRideRequests(ctx context.Context, driver *domain.User) {
	if !driver.IsAvailable() {
		c.printf("You need to be approved and online to view ride requests!\n")
		return
	}

	requests, err := c.rides.ListOpenRequests(ctx)
	if err != nil || len(requests) == 0 {
		c.printf("No ride requests available!\n")
		return
	}

	c.printf("\nRide Requests:\n")
	for i, r := range requests {
		c.printf("%d. %s to %s - Rs %.2f - %.1f km\n",
			i+1, r.PickupLocation, r.DropLocation, r.Fare, r.DistanceKm)
	}
}

func (c *CLI) acceptRide(ctx context.Context, driver *domain.User) {
	if !driver.IsAvailable() {
		c.printf("You need to be approved and online to accept rides!\n")
		return
	}

	requests, err := c.rides.ListOpenRequests(ctx)
	if err != nil || len(requests) == 0 {
		c.printf("No ride requests available!\n")
		return
	}

	c.printf("\nAvailable Ride Requests:\n")
	for i, r := range requests {
		c.printf("%d. %s to %s - Rs %.2f - %.1f km\n",
			i+1, r.PickupLocation, r.DropLocation, r.Fare, r.DistanceKm)
	}

	i, ok := c.pick("Select ride to accept: ", len(requests))
	if !ok {
		return
	}

	ride, err := c.rides.AcceptRide(ctx, driver.Username, requests[i].ID)
	if err != nil {
		c.printf("Could not accept ride: %v\n", err)
		return
	}

	c.printf("Ride accepted successfully!\n")
	c.renderReceipt(ctx, ride)
}

func (c *CLI) markRideCompleted(ctx context.Context, driver *domain.User) {
	ongoing, err := c.rides.ListOngoingForDriver(ctx, driver.Username)
	if err != nil || len(ongoing) == 0 {
		c.printf("No ongoing rides found!\n")
		return
	}

	c.printf("\nOngoing Rides:\n")
	for i, r := range ongoing {
		c.printf("%d. %s to %s - Rs %.2f\n", i+1, r.PickupLocation, r.DropLocation, r.Fare)
	}

	i, ok := c.pick("Select ride to mark as completed: ", len(ongoing))
	if !ok {
		return
	}

	ride, err := c.rides.CompleteRide(ctx, driver.Username, ongoing[i].ID)
	if err != nil {
		c.printf("Could not complete ride: %v\n", err)
		return
	}

	c.printf("Ride marked as completed!\n")
	c.renderReceipt(ctx, ride)
}

func (c *CLI) viewEarnings(ctx context.Context, driver *domain.User) {
	c.banner("EARNINGS")
	c.printf("Total Earnings: Rs %.2f\n", driver.Earnings)
	c.printf("Approved: %s\n", yesNo(driver.Approved))
	c.printf("Online: %s\n", yesNo(driver.Online))
	c.printf("Total Rides: %d\n", len(driver.AssignedRides))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
