package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SolveRecord is one solved cube stored in the history.
type SolveRecord struct {
	SolveID    string
	CreatedAt  time.Time
	Facelets   string
	Scramble   *string
	Solution   string
	Length     int
	DurationMs int64
	Threads    int
}

// HistoryRepository provides access to recorded solves.
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Save records a completed solve and returns its ID.
func (r *HistoryRepository) Save(facelets, scramble, solution string, length int, duration time.Duration, threads int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, facelets, scramble_text, solution, length, duration_ms, threads)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), facelets, scramblePtr, solution, length, duration.Milliseconds(), threads)

	if err != nil {
		return "", fmt.Errorf("failed to save solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil when no such solve exists.
func (r *HistoryRepository) Get(solveID string) (*SolveRecord, error) {
	var rec SolveRecord
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, facelets, scramble_text, solution, length, duration_ms, threads
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&rec.SolveID, &createdAtStr, &rec.Facelets, &rec.Scramble,
		&rec.Solution, &rec.Length, &rec.DurationMs, &rec.Threads,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}

	return &rec, nil
}

// ListRecent returns the most recent solves, newest first.
func (r *HistoryRepository) ListRecent(limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT solve_id, created_at, facelets, scramble_text, solution, length, duration_ms, threads
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		var createdAtStr string
		if err := rows.Scan(
			&rec.SolveID, &createdAtStr, &rec.Facelets, &rec.Scramble,
			&rec.Solution, &rec.Length, &rec.DurationMs, &rec.Threads,
		); err != nil {
			return nil, fmt.Errorf("failed to scan solve row: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
