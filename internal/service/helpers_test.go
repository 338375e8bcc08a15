package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rapido/internal/domain"
	"rapido/internal/repository/memory"
)

// persisterStub counts snapshot requests and never fails.
type persisterStub struct {
	calls int
}

func (p *persisterStub) Persist(ctx context.Context) error {
	p.calls++
	return nil
}

// stubRand returns fixed values so quote figures are deterministic.
type stubRand struct {
	f float64
	n int
}

func (r stubRand) Float64() float64 { return r.f }

func (r stubRand) Intn(n int) int { return r.n }

// distanceSeed yields a quoted distance of exactly 5.0 km after rounding.
const distanceSeed = 4.0 / 9.0

type testEnv struct {
	users     *memory.UserStore
	rides     *memory.RideStore
	pricing   *memory.PricingStore
	persister *persisterStub
	auth      *AuthService
	admin     *AdminService
	rideSvc   *RideService
	receipts  *ReceiptService
}

func newTestEnv(t *testing.T, rnd Rand) *testEnv {
	t.Helper()

	users := memory.NewUserStore()
	rides := memory.NewRideStore()
	pricing := memory.NewPricingStore(8.0)
	persister := &persisterStub{}
	log := zap.NewNop()

	return &testEnv{
		users:     users,
		rides:     rides,
		pricing:   pricing,
		persister: persister,
		auth:      NewAuthService(users, persister, log),
		admin:     NewAdminService(users, rides, pricing, persister, log),
		rideSvc:   NewRideService(users, rides, pricing, persister, rnd, log),
		receipts:  NewReceiptService(users),
	}
}

// registerRider registers a rider and returns it.
func (e *testEnv) registerRider(t *testing.T, username string) *domain.User {
	t.Helper()
	rider, err := e.auth.RegisterRider(context.Background(), RegisterRiderRequest{
		Name:     "Rider " + username,
		Phone:    "9876543210",
		Username: username,
		Password: "secret1",
	})
	require.NoError(t, err)
	return rider
}

// registerDriver registers a driver, unapproved and offline.
func (e *testEnv) registerDriver(t *testing.T, username string) *domain.User {
	t.Helper()
	driver, err := e.auth.RegisterDriver(context.Background(), RegisterDriverRequest{
		Name:      "Driver " + username,
		Phone:     "9123456780",
		VehicleNo: "KA-01-" + username,
		Username:  username,
		Password:  "secret1",
	})
	require.NoError(t, err)
	return driver
}

// activeDriver registers, approves, and brings a driver online.
func (e *testEnv) activeDriver(t *testing.T, username string) *domain.User {
	t.Helper()
	driver := e.registerDriver(t, username)
	require.NoError(t, e.admin.ApproveDriver(context.Background(), username))
	online, err := e.rideSvc.ToggleOnline(context.Background(), username)
	require.NoError(t, err)
	require.True(t, online)
	return driver
}
