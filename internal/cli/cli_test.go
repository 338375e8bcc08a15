package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rapido/internal/repository/memory"
	"rapido/internal/service"
)

type noopPersister struct{}

func (noopPersister) Persist(ctx context.Context) error { return nil }

func newTestCLI(t *testing.T, script string) (*CLI, *bytes.Buffer, *service.AuthService) {
	t.Helper()

	users := memory.NewUserStore()
	rides := memory.NewRideStore()
	pricing := memory.NewPricingStore(8.0)
	log := zap.NewNop()

	auth := service.NewAuthService(users, noopPersister{}, log)
	admin := service.NewAdminService(users, rides, pricing, noopPersister{}, log)
	rideSvc := service.NewRideService(users, rides, pricing, noopPersister{}, service.NewRand(), log)
	receipts := service.NewReceiptService(users)

	var out bytes.Buffer
	c := New(strings.NewReader(script), &out, auth, admin, rideSvc, receipts, log)
	return c, &out, auth
}

func TestRun_SignupAndExit(t *testing.T) {
	script := strings.Join([]string{
		"2",          // signup
		"1",          // as rider
		"Asha",       // name
		"9876543210", // phone
		"asha",       // username
		"secret1",    // password
		"2",          // signup again
		"1",          // as rider
		"Asha",       // name
		"9876543210", // phone
		"asha",       // duplicate username
		"secret1",    // password
		"3",          // exit
	}, "\n") + "\n"

	c, out, auth := newTestCLI(t, script)
	c.Run(context.Background())

	assert.Contains(t, out.String(), "Rider registered successfully!")
	assert.Contains(t, out.String(), "Username already exists!")
	assert.Contains(t, out.String(), "Thank you for using Rapido System!")

	_, err := auth.Authenticate(context.Background(), "asha", "secret1")
	require.NoError(t, err)
}

func TestRun_RejectsMalformedMenuInput(t *testing.T) {
	script := "banana\n3\n"

	c, out, _ := newTestCLI(t, script)
	c.Run(context.Background())

	assert.Contains(t, out.String(), "Please enter a valid number!")
}

func TestRun_ExitsOnEndOfInput(t *testing.T) {
	c, _, _ := newTestCLI(t, "")
	// Must return rather than loop when input ends.
	c.Run(context.Background())
}
