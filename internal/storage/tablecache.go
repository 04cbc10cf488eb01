package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// tableSchemaVersion is bumped whenever the coordinate definitions or
// table layout changes, invalidating any cached rows built under an
// older layout.
const tableSchemaVersion = 1

// TableCache persists built pruning/move tables (spec §6's "pruning
// table on-disk format" collaborator), keyed by table name, so that
// rebuilding the ≈3 MiB of coordinate tables on every CLI invocation is
// unnecessary.
type TableCache struct {
	db *DB
}

// NewTableCache creates a cache bound to db.
func NewTableCache(db *DB) *TableCache {
	return &TableCache{db: db}
}

// Load returns the cached bytes for name, or ok=false if absent or built
// under a stale schema version.
func (c *TableCache) Load(name string) (data []byte, ok bool, err error) {
	var version int
	err = c.db.QueryRow(`
		SELECT schema_version, data FROM table_cache WHERE table_name = ?
	`, name).Scan(&version, &data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load table %q: %w", name, err)
	}
	if version != tableSchemaVersion {
		return nil, false, nil
	}
	return data, true, nil
}

// Store writes data under name, replacing any prior entry.
func (c *TableCache) Store(name string, data []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO table_cache (table_name, schema_version, entry_count, built_at, data)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(table_name) DO UPDATE SET
			schema_version = excluded.schema_version,
			entry_count = excluded.entry_count,
			built_at = excluded.built_at,
			data = excluded.data
	`, name, tableSchemaVersion, len(data), time.Now().UTC().Format(time.RFC3339), data)
	if err != nil {
		return fmt.Errorf("failed to store table %q: %w", name, err)
	}
	return nil
}

// Clear removes every cached table, forcing a full rebuild next time.
func (c *TableCache) Clear() error {
	if _, err := c.db.Exec("DELETE FROM table_cache"); err != nil {
		return fmt.Errorf("failed to clear table cache: %w", err)
	}
	return nil
}
