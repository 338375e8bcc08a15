package app

import (
	"context"

	"go.uber.org/zap"

	"rapido/internal/config"
	"rapido/internal/repository/memory"
	"rapido/internal/service"
	"rapido/internal/snapshot"
)

// App bundles the wired services behind the console front end.
type App struct {
	Auth      *service.AuthService
	Admin     *service.AdminService
	Rides     *service.RideService
	Receipts  *service.ReceiptService
	Snapshots *snapshot.Manager
}

// New constructs the registry, restores persisted state, and bootstraps the
// default administrator. Lifecycle: construct -> load -> bootstrap ->
// serve operations -> final save at exit.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	userStore := memory.NewUserStore()
	rideStore := memory.NewRideStore()
	pricingStore := memory.NewPricingStore(cfg.Pricing.DefaultBasePricePerKm)

	fileStore := snapshot.NewFileStore(cfg.App.DataFile)
	snapshots := snapshot.NewManager(userStore, rideStore, pricingStore, fileStore, log)
	if err := snapshots.Load(ctx); err != nil {
		return nil, err
	}

	auth := service.NewAuthService(userStore, snapshots, log)
	if err := auth.EnsureDefaultAdmin(ctx); err != nil {
		return nil, err
	}

	return &App{
		Auth:      auth,
		Admin:     service.NewAdminService(userStore, rideStore, pricingStore, snapshots, log),
		Rides:     service.NewRideService(userStore, rideStore, pricingStore, snapshots, service.NewRand(), log),
		Receipts:  service.NewReceiptService(userStore),
		Snapshots: snapshots,
	}, nil
}
