package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapido/internal/domain"
	"rapido/internal/repository"
)

func TestUserStore_CreateAndLookup(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &domain.User{Username: "asha", Role: domain.RoleRider}))

	err := s.Create(ctx, &domain.User{Username: "asha", Role: domain.RoleDriver})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	user, err := s.GetByUsername(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRider, user.Role)

	_, err = s.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserStore_PreservesRegistrationOrder(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		username := fmt.Sprintf("user%d", i)
		require.NoError(t, s.Create(ctx, &domain.User{Username: username}))
	}

	users, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
	for i, u := range users {
		assert.Equal(t, fmt.Sprintf("user%d", i), u.Username)
	}
}

func TestUserStore_DeleteKeepsOrderAndIndex(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Create(ctx, &domain.User{Username: name}))
	}

	require.NoError(t, s.Delete(ctx, "b"))

	users, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "c", users[1].Username)
	assert.Equal(t, "d", users[2].Username)

	// Lookups behind the deleted slot still resolve.
	user, err := s.GetByUsername(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "d", user.Username)

	assert.ErrorIs(t, s.Delete(ctx, "b"), repository.ErrNotFound)
}

func TestUserStore_SnapshotRestore(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &domain.User{Username: "asha", Name: "Asha"}))

	snap := s.Snapshot()

	// Snapshot is a copy: mutating it does not affect the store.
	snap[0].Name = "changed"
	user, err := s.GetByUsername(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)

	fresh := NewUserStore()
	fresh.Restore(s.Snapshot())
	user, err = fresh.GetByUsername(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
}

func TestRideStore_CreateAndUpdate(t *testing.T) {
	s := NewRideStore()
	ctx := context.Background()

	ride := &domain.Ride{ID: "ride-1", Status: domain.RideStatusRequested}
	require.NoError(t, s.Create(ctx, ride))
	assert.ErrorIs(t, s.Create(ctx, ride), repository.ErrAlreadyExists)

	ride.Status = domain.RideStatusOngoing
	require.NoError(t, s.Update(ctx, ride))

	got, err := s.GetByID(ctx, "ride-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RideStatusOngoing, got.Status)

	assert.ErrorIs(t, s.Update(ctx, &domain.Ride{ID: "ghost"}), repository.ErrNotFound)
	_, err = s.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRideStore_PreservesCreationOrder(t *testing.T) {
	s := NewRideStore()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Create(ctx, &domain.Ride{ID: fmt.Sprintf("ride-%d", i)}))
	}

	rides, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 4)
	for i, r := range rides {
		assert.Equal(t, fmt.Sprintf("ride-%d", i), r.ID)
	}
}

func TestPricingStore(t *testing.T) {
	s := NewPricingStore(8.0)
	ctx := context.Background()

	price, err := s.BasePricePerKm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.0, price)

	require.NoError(t, s.SetBasePricePerKm(ctx, 11.0))
	price, err = s.BasePricePerKm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11.0, price)

	assert.Equal(t, 11.0, s.Snapshot())
	s.Restore(9.0)
	assert.Equal(t, 9.0, s.Snapshot())
}
