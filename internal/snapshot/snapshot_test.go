package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rapido/internal/domain"
	"rapido/internal/repository/memory"
)

func newManager(t *testing.T, path string) (*Manager, *memory.UserStore, *memory.RideStore, *memory.PricingStore) {
	t.Helper()
	users := memory.NewUserStore()
	rides := memory.NewRideStore()
	pricing := memory.NewPricingStore(8.0)
	m := NewManager(users, rides, pricing, NewFileStore(path), zap.NewNop())
	return m, users, rides, pricing
}

func fixtureState() ([]domain.User, []domain.Ride, float64) {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	bookedAt := time.Date(2025, 3, 15, 18, 45, 0, 0, time.UTC)

	users := []domain.User{
		{
			Name:      "System Admin",
			Phone:     "0000000000",
			Username:  "adminhemant",
			Password:  "hemant123",
			Role:      domain.RoleAdmin,
			CreatedAt: createdAt,
		},
		{
			Name:        "Asha",
			Phone:       "9876543210",
			Username:    "asha",
			Password:    "secret1",
			Role:        domain.RoleRider,
			CreatedAt:   createdAt,
			RideHistory: []string{"ride-1"},
		},
		{
			Name:          "Dinesh",
			Phone:         "9123456780",
			Username:      "d1",
			Password:      "secret1",
			Role:          domain.RoleDriver,
			CreatedAt:     createdAt,
			VehicleNo:     "KA-01-1234",
			Approved:      true,
			Online:        true,
			Earnings:      120.5,
			AssignedRides: []string{"ride-1"},
		},
	}
	rides := []domain.Ride{
		{
			ID:             "ride-1",
			PickupLocation: "MG Road",
			DropLocation:   "Airport",
			DistanceKm:     5.0,
			Fare:           40.0,
			EtaMinutes:     6,
			Status:         domain.RideStatusCompleted,
			RiderUsername:  "asha",
			DriverUsername: "d1",
			BookedAt:       bookedAt,
			CompletedAt:    bookedAt.Add(25 * time.Minute),
			PaymentMethod:  domain.PaymentMethodUPI,
			UPIID:          "asha@upi",
		},
	}
	return users, rides, 9.5
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rapido_data.json")
	ctx := context.Background()

	users, rides, price := fixtureState()
	m1, u1, r1, p1 := newManager(t, path)
	u1.Restore(users)
	r1.Restore(rides)
	p1.Restore(price)

	require.NoError(t, m1.Persist(ctx))

	m2, u2, r2, p2 := newManager(t, path)
	require.NoError(t, m2.Load(ctx))

	assert.Equal(t, users, u2.Snapshot())
	assert.Equal(t, rides, r2.Snapshot())
	assert.Equal(t, price, p2.Snapshot())
}

func TestLoad_MissingFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	ctx := context.Background()

	m, users, rides, pricing := newManager(t, path)
	require.NoError(t, m.Load(ctx))

	assert.Empty(t, users.Snapshot())
	assert.Empty(t, rides.Snapshot())
	assert.Equal(t, 8.0, pricing.Snapshot())
}

func TestLoad_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	ctx := context.Background()

	m, users, rides, pricing := newManager(t, path)
	require.NoError(t, m.Load(ctx))

	assert.Empty(t, users.Snapshot())
	assert.Empty(t, rides.Snapshot())
	assert.Equal(t, 8.0, pricing.Snapshot())
}

func TestSave_OverwritesPriorSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rapido_data.json")
	ctx := context.Background()

	m, users, _, _ := newManager(t, path)
	require.NoError(t, m.Persist(ctx))

	fixtureUsers, _, _ := fixtureState()
	users.Restore(fixtureUsers)
	require.NoError(t, m.Persist(ctx))

	m2, u2, _, _ := newManager(t, path)
	require.NoError(t, m2.Load(ctx))
	assert.Equal(t, fixtureUsers, u2.Snapshot())
}

func TestFileStore_LoadMissingReturnsErrNoSnapshot(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
