package cli

import (
	"context"
	"errors"

	"rapido/internal/domain"
	"rapido/internal/service"
)

func (c *CLI) adminMenu(ctx context.Context, admin *domain.User) {
	for {
		c.banner("ADMIN DASHBOARD")
		c.printf("1. View all Riders\n2. View all Drivers\n3. View all Rides\n4. Change Base Price Per KM\n5. Approve Drivers\n6. Remove User\n7. Logout\n")

		choice, ok := c.readInt("Choose an option (1-7): ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.viewAllRiders(ctx)
		case 2:
			c.viewAllDrivers(ctx)
		case 3:
			c.viewAllRides(ctx)
		case 4:
			c.changeBasePrice(ctx)
		case 5:
			c.approveDrivers(ctx)
		case 6:
			c.removeUser(ctx)
		case 7:
			c.printf("Logging out...\n")
			return
		default:
			c.printf("Invalid choice!\n")
		}
	}
}

func (c *CLI) viewAllRiders(ctx context.Context) {
	riders, err := c.admin.ListRiders(ctx)
	if err != nil || len(riders) == 0 {
		c.printf("No riders found!\n")
		return
	}

	c.banner("ALL RIDERS")
	for i, r := range riders {
		c.printf("%d. %s | %s | %s | Rides: %d\n",
			i+1, r.Name, r.Phone, r.Username, len(r.RideHistory))
	}
}

func (c *CLI) viewAllDrivers(ctx context.Context) {
	drivers, err := c.admin.ListDrivers(ctx)
	if err != nil || len(drivers) == 0 {
		c.printf("No drivers found!\n")
		return
	}

	c.banner("ALL DRIVERS")
	for i, d := range drivers {
		c.printf("%d. %s | %s | %s | Approved: %s | Online: %s | Earnings: Rs %.2f\n",
			i+1, d.Name, d.Phone, d.VehicleNo, yesNo(d.Approved), yesNo(d.Online), d.Earnings)
	}
}

func (c *CLI) viewAllRides(ctx context.Context) {
	rides, err := c.admin.ListAllRides(ctx)
	if err != nil || len(rides) == 0 {
		c.printf("No rides found!\n")
		return
	}

	c.banner("ALL RIDES")
	for i, r := range rides {
		c.printf("%d. %s | %s -> %s | Rs %.2f | %s | %s\n",
			i+1, r.ID, r.PickupLocation, r.DropLocation, r.Fare, r.Status,
			r.BookedAt.Format("02-01-2006 15:04"))
	}
}

func (c *CLI) changeBasePrice(ctx context.Context) {
	current, err := c.admin.BasePricePerKm(ctx)
	if err != nil {
		c.printf("Could not read base price: %v\n", err)
		return
	}

	c.printf("\nCurrent base price per km: Rs %.2f\n", current)
	price, ok := c.readFloat("Enter new base price per km: ")
	if !ok {
		return
	}

	if err := c.admin.SetBasePricePerKm(ctx, price); err != nil {
		if errors.Is(err, service.ErrInvalidBasePrice) {
			c.printf("Price must be positive!\n")
		} else {
			c.printf("Could not update base price: %v\n", err)
		}
		return
	}
	c.printf("Base price updated successfully!\n")
}

func (c *CLI) approveDrivers(ctx context.Context) {
	pending, err := c.admin.ListUnapprovedDrivers(ctx)
	if err != nil || len(pending) == 0 {
		c.printf("No drivers pending approval!\n")
		return
	}

	c.printf("\nDrivers Pending Approval:\n")
	for i, d := range pending {
		c.printf("%d. %s | %s | %s\n", i+1, d.Name, d.VehicleNo, d.Username)
	}

	i, ok := c.pick("Select driver to approve: ", len(pending))
	if !ok {
		return
	}

	if err := c.admin.ApproveDriver(ctx, pending[i].Username); err != nil {
		c.printf("Driver not found!\n")
		return
	}
	c.printf("Driver approved successfully!\n")
}

func (c *CLI) removeUser(ctx context.Context) {
	username, ok := c.readLine("Enter username to remove: ")
	if !ok {
		return
	}

	if err := c.admin.RemoveUser(ctx, username); err != nil {
		c.printf("User not found!\n")
		return
	}
	c.printf("User removed successfully!\n")
}
