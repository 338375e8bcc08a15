// Package cli drives the registry services through interactive console
// menus. All prompting, parsing, and retrying of malformed input lives here;
// the services never touch the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"rapido/internal/domain"
	"rapido/internal/service"
)

// CLI is the console front end.
type CLI struct {
	in       *bufio.Scanner
	out      io.Writer
	auth     *service.AuthService
	admin    *service.AdminService
	rides    *service.RideService
	receipts *service.ReceiptService
	log      *zap.Logger
}

// New creates a CLI reading from in and writing to out.
func New(
	in io.Reader,
	out io.Writer,
	auth *service.AuthService,
	admin *service.AdminService,
	rides *service.RideService,
	receipts *service.ReceiptService,
	log *zap.Logger,
) *CLI {
	return &CLI{
		in:       bufio.NewScanner(in),
		out:      out,
		auth:     auth,
		admin:    admin,
		rides:    rides,
		receipts: receipts,
		log:      log,
	}
}

// Run drives the main menu until the operator exits or input ends.
func (c *CLI) Run(ctx context.Context) {
	for {
		c.banner("RAPIDO SYSTEM")
		c.printf("1. Login\n2. Signup\n3. Exit\n")

		choice, ok := c.readInt("Choose an option (1-3): ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.loginMenu(ctx)
		case 2:
			c.signupMenu(ctx)
		case 3:
			c.printf("Thank you for using Rapido System!\n")
			return
		default:
			c.printf("Invalid choice! Please try again.\n")
		}
	}
}

func (c *CLI) loginMenu(ctx context.Context) {
	c.banner("LOGIN")
	username, ok := c.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := c.readLine("Password: ")
	if !ok {
		return
	}

	user, err := c.auth.Authenticate(ctx, username, password)
	if err != nil {
		c.printf("Invalid username or password!\n")
		return
	}

	c.printf("Login successful! Welcome, %s!\n", user.Name)
	switch user.Role {
	case domain.RoleRider:
		c.riderMenu(ctx, user)
	case domain.RoleDriver:
		c.driverMenu(ctx, user)
	case domain.RoleAdmin:
		c.adminMenu(ctx, user)
	}
}

func (c *CLI) signupMenu(ctx context.Context) {
	c.banner("SIGNUP")
	c.printf("1. Signup as Rider\n2. Signup as Driver\n3. Back to Main Menu\n")

	choice, ok := c.readInt("Choose an option (1-3): ")
	if !ok {
		return
	}

	switch choice {
	case 1:
		c.signupRider(ctx)
	case 2:
		c.signupDriver(ctx)
	case 3:
		return
	default:
		c.printf("Invalid choice!\n")
	}
}

func (c *CLI) signupRider(ctx context.Context) {
	c.banner("RIDER SIGNUP")
	name, _ := c.readLine("Name: ")
	phone, _ := c.readLine("Phone: ")
	username, _ := c.readLine("Username: ")
	password, ok := c.readLine("Password: ")
	if !ok {
		return
	}

	_, err := c.auth.RegisterRider(ctx, service.RegisterRiderRequest{
		Name:     name,
		Phone:    phone,
		Username: username,
		Password: password,
	})
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		c.printf("Username already exists!\n")
	case errors.Is(err, service.ErrInvalidInput):
		c.printf("Invalid signup details: %v\n", err)
	case err != nil:
		c.printf("Signup failed: %v\n", err)
	default:
		c.printf("Rider registered successfully!\n")
	}
}

func (c *CLI) signupDriver(ctx context.Context) {
	c.banner("DRIVER SIGNUP")
	name, _ := c.readLine("Name: ")
	phone, _ := c.readLine("Phone: ")
	vehicleNo, _ := c.readLine("Vehicle Number: ")
	username, _ := c.readLine("Username: ")
	password, ok := c.readLine("Password: ")
	if !ok {
		return
	}

	_, err := c.auth.RegisterDriver(ctx, service.RegisterDriverRequest{
		Name:      name,
		Phone:     phone,
		VehicleNo: vehicleNo,
		Username:  username,
		Password:  password,
	})
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		c.printf("Username already exists!\n")
	case errors.Is(err, service.ErrInvalidInput):
		c.printf("Invalid signup details: %v\n", err)
	case err != nil:
		c.printf("Signup failed: %v\n", err)
	default:
		c.printf("Driver registered successfully! Waiting for admin approval.\n")
	}
}

// ---- prompt helpers ----

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) banner(title string) {
	c.printf("\n========== %s ==========\n", title)
}

// readLine prompts and reads one trimmed line. ok is false when input ends.
func (c *CLI) readLine(prompt string) (line string, ok bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readInt prompts until the operator enters a valid integer.
func (c *CLI) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Please enter a valid number!\n")
			continue
		}
		return n, true
	}
}

// readFloat prompts until the operator enters a valid number.
func (c *CLI) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			c.printf("Please enter a valid number!\n")
			continue
		}
		return f, true
	}
}

// pick prompts for a 1-based selection into a list of n items.
func (c *CLI) pick(prompt string, n int) (int, bool) {
	choice, ok := c.readInt(prompt)
	if !ok {
		return 0, false
	}
	if choice < 1 || choice > n {
		c.printf("Invalid selection!\n")
		return 0, false
	}
	return choice - 1, true
}
