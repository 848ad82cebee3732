// Package store persists per-question classifications keyed by question id,
// plus the progress block that makes interrupted runs resumable.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/quizbee-cli/internal/model"
)

// Store is the metadata persistence interface. Get on a missing id returns
// found=false, not an error: the orchestrator uses it to decide pending vs
// done.
type Store interface {
	Get(ctx context.Context, id string) (model.Classification, bool, error)
	Put(ctx context.Context, id string, cls model.Classification) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) (map[string]model.Classification, error)

	Progress(ctx context.Context) (model.Progress, error)
	SetProgress(ctx context.Context, p model.Progress) error

	// Flush checkpoints buffered state to durable storage. Drivers that
	// write through on every Put may treat it as a no-op.
	Flush(ctx context.Context) error
	Close() error
}

// Open constructs a Store for the configured driver.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "json", "":
		return OpenJSON(path)
	case "sqlite":
		return OpenSQLite(path)
	default:
		return nil, eris.Errorf("store: unsupported driver %q", driver)
	}
}
