package ports

import (
	"context"

	"github.com/aretw0/knobs/pkg/domain"
)

// ValueStore defines the interface for persisting registry snapshots under a key,
// so parameter values survive restarts.
type ValueStore interface {
	// Save persists the snapshot for a given key.
	Save(ctx context.Context, key string, snapshot *domain.Snapshot) error

	// Load retrieves the snapshot for a given key.
	// Returns domain.ErrSnapshotNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Snapshot, error)

	// Delete removes the snapshot for a given key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored key.
	List(ctx context.Context) ([]string, error)
}
