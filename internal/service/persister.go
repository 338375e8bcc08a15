package service

import "context"

// Persister writes the full registry state to durable storage. Every
// mutating service operation invokes it once on success. A failed save is
// logged as a warning and does not roll back the in-memory mutation.
type Persister interface {
	Persist(ctx context.Context) error
}
