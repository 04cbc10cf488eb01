package storage

import (
	"testing"

	"github.com/SeamusWaldron/kociemba/internal/tables"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}
}

func TestHistoryRepositoryRecordAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)

	seed := int64(12345)
	id, err := repo.Record(&seed, "R U R' U'", "U R U' R'", 6, 2)
	if err != nil {
		t.Fatalf("failed to record: %v", err)
	}

	rec, err := repo.Get(id)
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}
	if rec.ScrambleText != "R U R' U'" || rec.TotalMoves != 8 {
		t.Errorf("record = %+v, unexpected fields", rec)
	}
	if rec.Seed == nil || *rec.Seed != seed {
		t.Errorf("seed = %v, want %d", rec.Seed, seed)
	}
}

func TestHistoryRepositoryList(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)

	for i := 0; i < 3; i++ {
		if _, err := repo.Record(nil, "U", "U'", 1, 0); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}

	records, err := repo.List(10)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("len(records) = %d, want 3", len(records))
	}
}

func TestHistoryRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)

	id, err := repo.Record(nil, "U", "U'", 1, 0)
	if err != nil {
		t.Fatalf("failed to record: %v", err)
	}
	if err := repo.Delete(id); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	rec, err := repo.Get(id)
	if err != nil {
		t.Fatalf("failed to get after delete: %v", err)
	}
	if rec != nil {
		t.Error("expected nil after delete")
	}
}

func TestTableCacheStoreAndLoad(t *testing.T) {
	db := openTestDB(t)
	cache := NewTableCache(db)

	data := []byte{1, 2, 3, 4, 5}
	if err := cache.Store("eo.prune", data); err != nil {
		t.Fatalf("failed to store: %v", err)
	}

	got, ok, err := cache.Load("eo.prune")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if len(got) != len(data) {
		t.Fatalf("got %v, want %v", got, data)
	}
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("byte %d = %d, want %d", i, got[i], data[i])
		}
	}
}

func TestTableCacheMissReturnsFalse(t *testing.T) {
	db := openTestDB(t)
	cache := NewTableCache(db)

	_, ok, err := cache.Load("nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected a cache miss")
	}
}

func TestTableCacheStoreOverwritesExisting(t *testing.T) {
	db := openTestDB(t)
	cache := NewTableCache(db)

	if err := cache.Store("eo.prune", []byte{1, 2, 3}); err != nil {
		t.Fatalf("failed to store: %v", err)
	}
	if err := cache.Store("eo.prune", []byte{9, 9}); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	got, ok, err := cache.Load("eo.prune")
	if err != nil || !ok {
		t.Fatalf("failed to load after overwrite: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0] != 9 || got[1] != 9 {
		t.Errorf("got %v, want [9 9]", got)
	}
}

func TestLoadOrBuildSetIsUsableBySolver(t *testing.T) {
	db := openTestDB(t)
	cache := NewTableCache(db)

	first, err := LoadOrBuildSet(cache, tables.BuildOptions{Composite: false})
	if err != nil {
		t.Fatalf("failed to build: %v", err)
	}
	if first.EOPrune[0] != 0 {
		t.Error("expected the eo prune table to be 0 at the goal")
	}

	// Second call should be served entirely from cache and agree exactly.
	second, err := LoadOrBuildSet(cache, tables.BuildOptions{Composite: false})
	if err != nil {
		t.Fatalf("failed to load from cache: %v", err)
	}
	for i := range first.EOPrune {
		if first.EOPrune[i] != second.EOPrune[i] {
			t.Fatalf("eo prune mismatch at %d: %d vs %d", i, first.EOPrune[i], second.EOPrune[i])
		}
	}
}
