package cli

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/kociemba/internal/solver"
	"github.com/SeamusWaldron/kociemba/internal/storage"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// openDB opens the persistence layer at the resolved path, applying
// migrations, and reports a wrapped error on failure.
func openDB() (*storage.DB, error) {
	path := resolvedDBPath()
	var db *storage.DB
	var err error
	if path != "" {
		db, err = storage.Open(path)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// buildSolver loads (or builds and caches) the table set from db and
// wraps it in a ready-to-use Solver.
func buildSolver(db *storage.DB) (*solver.Solver, error) {
	cache := storage.NewTableCache(db)
	set, err := storage.LoadOrBuildSet(cache, tables.BuildOptions{Composite: composite})
	if err != nil {
		return nil, fmt.Errorf("building tables: %w", err)
	}
	return solver.New(set), nil
}

// historyRepoFor returns a history repository bound to db.
func historyRepoFor(db *storage.DB) *storage.HistoryRepository {
	return storage.NewHistoryRepository(db)
}

// timeSeed derives a 32-bit seed from the current time, for scrambles
// the caller didn't pin with an explicit --seed.
func timeSeed() uint32 {
	return uint32(time.Now().UnixNano())
}
