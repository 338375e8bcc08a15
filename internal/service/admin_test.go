package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveDriver_NotFound(t *testing.T) {
	env := newTestEnv(t, stubRand{})
	ctx := context.Background()

	err := env.admin.ApproveDriver(ctx, "ghost")
	assert.ErrorIs(t, err, ErrDriverNotFound)

	// A rider's username does not resolve to a driver.
	env.registerRider(t, "asha")
	err = env.admin.ApproveDriver(ctx, "asha")
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestRemoveUser(t *testing.T) {
	env := newTestEnv(t, stubRand{})
	ctx := context.Background()
	env.registerRider(t, "asha")

	require.NoError(t, env.admin.RemoveUser(ctx, "asha"))

	_, err := env.auth.Authenticate(ctx, "asha", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = env.admin.RemoveUser(ctx, "asha")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetBasePricePerKm(t *testing.T) {
	env := newTestEnv(t, stubRand{})
	ctx := context.Background()

	assert.ErrorIs(t, env.admin.SetBasePricePerKm(ctx, 0), ErrInvalidBasePrice)
	assert.ErrorIs(t, env.admin.SetBasePricePerKm(ctx, -3.5), ErrInvalidBasePrice)

	price, err := env.admin.BasePricePerKm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.0, price, "rejected updates must not change the price")

	require.NoError(t, env.admin.SetBasePricePerKm(ctx, 12.5))
	price, err = env.admin.BasePricePerKm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.5, price)
}

func TestBasePriceFeedsNewQuotes(t *testing.T) {
	env := newTestEnv(t, stubRand{f: distanceSeed, n: 3})
	ctx := context.Background()
	env.activeDriver(t, "d1")

	require.NoError(t, env.admin.SetBasePricePerKm(ctx, 10.0))

	quote, err := env.rideSvc.RequestQuote(ctx, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 50.0, quote.Fare) // 5.0 km at 10.0 per km
}

func TestListByRole(t *testing.T) {
	env := newTestEnv(t, stubRand{})
	ctx := context.Background()

	require.NoError(t, env.auth.EnsureDefaultAdmin(ctx))
	env.registerRider(t, "asha")
	env.registerRider(t, "ravi")
	env.registerDriver(t, "d1")

	riders, err := env.admin.ListRiders(ctx)
	require.NoError(t, err)
	require.Len(t, riders, 2)
	assert.Equal(t, "asha", riders[0].Username, "registration order is preserved")
	assert.Equal(t, "ravi", riders[1].Username)

	drivers, err := env.admin.ListDrivers(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "d1", drivers[0].Username)
}

func TestListUnapprovedDrivers(t *testing.T) {
	env := newTestEnv(t, stubRand{})
	ctx := context.Background()

	env.registerDriver(t, "d1")
	env.registerDriver(t, "d2")
	require.NoError(t, env.admin.ApproveDriver(ctx, "d1"))

	pending, err := env.admin.ListUnapprovedDrivers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "d2", pending[0].Username)
}
