// Package storage defines process-local stores for finished simulation runs.
// Runs are kept only for re-display within the current process; nothing is
// persisted across restarts.
package storage

import (
	"context"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
)

// RunStore provides access to finished simulation runs.
type RunStore interface {
	// Insert adds a finished run. Returns ErrDuplicateKey if run_id exists.
	Insert(ctx context.Context, run *domain.SimulationRun) error

	// GetByID retrieves a run by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, runID string) (*domain.SimulationRun, error)

	// List retrieves all stored runs, most recent first.
	List(ctx context.Context) ([]*domain.SimulationRun, error)

	// Latest retrieves the most recently inserted run. Returns ErrNotFound
	// when no runs are stored.
	Latest(ctx context.Context) (*domain.SimulationRun, error)
}
