package snapshot

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"rapido/internal/repository/memory"
)

// Manager bridges the in-memory stores and the snapshot file. It is invoked
// once at startup to restore state and after every mutating registry
// operation to persist it.
type Manager struct {
	users   *memory.UserStore
	rides   *memory.RideStore
	pricing *memory.PricingStore
	file    *FileStore
	log     *zap.Logger
}

// NewManager creates a Manager over the given stores and file.
func NewManager(
	users *memory.UserStore,
	rides *memory.RideStore,
	pricing *memory.PricingStore,
	file *FileStore,
	log *zap.Logger,
) *Manager {
	return &Manager{
		users:   users,
		rides:   rides,
		pricing: pricing,
		file:    file,
		log:     log,
	}
}

// Persist writes the full registry state to the snapshot file.
func (m *Manager) Persist(ctx context.Context) error {
	state := &State{
		Users:          m.users.Snapshot(),
		Rides:          m.rides.Snapshot(),
		BasePricePerKm: m.pricing.Snapshot(),
	}
	return m.file.Save(ctx, state)
}

// Load restores the stores from the snapshot file. A missing file means a
// fresh start; a corrupt file is logged as a warning and also degrades to a
// fresh start rather than aborting.
func (m *Manager) Load(ctx context.Context) error {
	state, err := m.file.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			m.log.Info("no snapshot file found, starting fresh",
				zap.String("path", m.file.Path()))
			return nil
		}
		m.log.Warn("snapshot load failed, starting fresh",
			zap.String("path", m.file.Path()), zap.Error(err))
		return nil
	}

	m.users.Restore(state.Users)
	m.rides.Restore(state.Rides)
	m.pricing.Restore(state.BasePricePerKm)
	m.log.Info("snapshot loaded",
		zap.String("path", m.file.Path()),
		zap.Int("users", len(state.Users)),
		zap.Int("rides", len(state.Rides)))
	return nil
}
