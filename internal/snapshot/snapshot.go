package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"rapido/internal/domain"
)

// ErrNoSnapshot is returned by Load when no snapshot file exists. It signals
// a fresh start, not a failure.
var ErrNoSnapshot = errors.New("no snapshot file")

// State is the full registry state persisted as one atomic unit: every
// identity, every ride, and the current base price.
type State struct {
	Users          []domain.User `json:"users"`
	Rides          []domain.Ride `json:"rides"`
	BasePricePerKm float64       `json:"base_price_per_km"`
}

// FileStore reads and writes whole-state snapshots to a single named file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// Save serializes the state and overwrites any prior snapshot.
func (s *FileStore) Save(ctx context.Context, state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads and deserializes the snapshot. Returns ErrNoSnapshot if the
// file does not exist.
func (s *FileStore) Load(ctx context.Context) (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &state, nil
}
