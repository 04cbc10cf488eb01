package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScrambleRecord is a single generated scramble/solution pair.
type ScrambleRecord struct {
	ScrambleID   string
	CreatedAt    time.Time
	Seed         *int64
	ScrambleText string
	SolutionText string
	Phase1Moves  int
	Phase2Moves  int
	TotalMoves   int
}

// HistoryRepository records scrambles the generator has produced, so a
// CLI session can list or replay recent output.
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a repository bound to db.
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record inserts a new scramble/solution pair and returns its generated ID.
func (r *HistoryRepository) Record(seed *int64, scrambleText, solutionText string, phase1, phase2 int) (string, error) {
	id := uuid.New().String()
	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, seed, scramble_text, solution_text, phase1_moves, phase2_moves, total_moves)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, time.Now().UTC().Format(time.RFC3339), seed, scrambleText, solutionText, phase1, phase2, phase1+phase2)
	if err != nil {
		return "", fmt.Errorf("failed to record scramble: %w", err)
	}
	return id, nil
}

// Get retrieves a scramble record by ID.
func (r *HistoryRepository) Get(scrambleID string) (*ScrambleRecord, error) {
	var rec ScrambleRecord
	var createdAtStr string
	var seed sql.NullInt64

	err := r.db.QueryRow(`
		SELECT scramble_id, created_at, seed, scramble_text, solution_text, phase1_moves, phase2_moves, total_moves
		FROM scrambles WHERE scramble_id = ?
	`, scrambleID).Scan(
		&rec.ScrambleID, &createdAtStr, &seed, &rec.ScrambleText, &rec.SolutionText,
		&rec.Phase1Moves, &rec.Phase2Moves, &rec.TotalMoves,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	if seed.Valid {
		rec.Seed = &seed.Int64
	}
	return &rec, nil
}

// List retrieves the most recent scramble records, newest first.
func (r *HistoryRepository) List(limit int) ([]ScrambleRecord, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, seed, scramble_text, solution_text, phase1_moves, phase2_moves, total_moves
		FROM scrambles ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var records []ScrambleRecord
	for rows.Next() {
		var rec ScrambleRecord
		var createdAtStr string
		var seed sql.NullInt64

		if err := rows.Scan(
			&rec.ScrambleID, &createdAtStr, &seed, &rec.ScrambleText, &rec.SolutionText,
			&rec.Phase1Moves, &rec.Phase2Moves, &rec.TotalMoves,
		); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		if seed.Valid {
			rec.Seed = &seed.Int64
		}
		records = append(records, rec)
	}
	return records, nil
}

// Delete removes a scramble record by ID.
func (r *HistoryRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}
