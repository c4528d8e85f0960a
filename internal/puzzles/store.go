// Package puzzles persists generated puzzles so clients can re-fetch them
// by ID. The full grid is stored as a JSON payload next to queryable
// metadata columns.
package puzzles

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Record is one stored puzzle.
type Record struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"` // "crossword" | "wordsearch"
	Difficulty string          `json:"difficulty"`
	OwnerID    string          `json:"ownerId,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Store reads and writes puzzle rows.
type Store struct{ db *sql.DB }

// NewStore wraps a database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert saves a puzzle record.
func (s *Store) Insert(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, kind, difficulty, owner_id, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Kind, r.Difficulty, r.OwnerID, string(r.Payload),
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Get loads a puzzle by ID. Returns sql.ErrNoRows if missing.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	var r Record
	var payload, created string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, difficulty, COALESCE(owner_id, ''), payload, created_at
		FROM puzzles WHERE id=?`, id,
	).Scan(&r.ID, &r.Kind, &r.Difficulty, &r.OwnerID, &payload, &created)
	if err != nil {
		return Record{}, err
	}
	r.Payload = json.RawMessage(payload)
	r.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return r, nil
}

// CountByOwner returns how many puzzles a user has generated, per kind.
func (s *Store) CountByOwner(ctx context.Context, ownerID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(1) FROM puzzles WHERE owner_id=? GROUP BY kind`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		out[kind] = n
	}
	return out, rows.Err()
}
