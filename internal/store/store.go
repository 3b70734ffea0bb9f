// Package store persists the run ledger: one row per sort run and one per
// processed file.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/research-sorter/internal/model"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = eris.New("store: not found")

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for the run ledger.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, run model.Run) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, status model.RunStatus, summary model.RunSummary) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Files
	RecordFile(ctx context.Context, rec model.FileRecord) (*model.FileRecord, error)
	ListFiles(ctx context.Context, runID string) ([]model.FileRecord, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return eris.Is(err, ErrNotFound)
}

const defaultListLimit = 100

func listLimit(n int) int {
	if n <= 0 {
		return defaultListLimit
	}
	return n
}
