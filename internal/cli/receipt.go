package cli

import (
	"context"
	"fmt"

	"rapido/internal/domain"
)

// renderReceipt resolves and prints the receipt for a ride.
func (c *CLI) renderReceipt(ctx context.Context, ride *domain.Ride) {
	receipt, err := c.receipts.Build(ctx, ride)
	if err != nil {
		c.printf("Could not build receipt: %v\n", err)
		return
	}

	c.printf("\n+--------------------------------------+\n")
	c.printf("|            RIDE RECEIPT              |\n")
	c.printf("+--------------------------------------+\n")
	c.printf("| Ride ID: %-27s |\n", shorten(receipt.RideID, 27))
	c.printf("| Rider:   %-27s |\n", shorten(receipt.RiderName, 27))
	c.printf("| Driver:  %-27s |\n", shorten(receipt.DriverName, 27))
	c.printf("| Vehicle: %-27s |\n", shorten(receipt.VehicleNo, 27))
	c.printf("| From:    %-27s |\n", shorten(receipt.PickupLocation, 27))
	c.printf("| To:      %-27s |\n", shorten(receipt.DropLocation, 27))
	c.printf("| Distance: %-26s |\n", formatKm(receipt.DistanceKm))
	c.printf("| Fare:     Rs %-23.2f |\n", receipt.Fare)
	c.printf("| ETA:      %-3d minutes               |\n", receipt.EtaMinutes)
	c.printf("| Status:  %-27s |\n", receipt.Status)
	c.printf("| Payment: %-27s |\n", receipt.PaymentMethod)
	c.printf("| Time:    %-27s |\n", receipt.BookedAt.Format("02-01-2006 15:04:05"))
	c.printf("+--------------------------------------+\n")
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func formatKm(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}
