// internal/daily/store.go
//
// SQLite persistence for Daily Challenge results.
// One row per (user, date); the row is upserted after every accepted word so
// the leaderboard reflects progress while the puzzle is still being played.

package daily

import (
	"context"
	"database/sql"
	"errors"
)

// Result is a player's standing on one daily puzzle.
type Result struct {
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	PuzzleIndex int    `json:"puzzleIndex"`
	Score       int    `json:"score"`
	Words       int    `json:"words"`
	MaxScore    int    `json:"maxScore"`
}

// Store reads and writes daily_results.
type Store struct{ db *sql.DB }

// NewStore wraps an open, migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Get returns the stored result for a user and date.
// found is false when the user has not scored on that date.
func (s *Store) Get(ctx context.Context, userID, date string) (r Result, found bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT user_id, date, puzzle_index, score, words, max_score
		 FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&r.UserID, &r.Date, &r.PuzzleIndex, &r.Score, &r.Words, &r.MaxScore)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, err
	}
	return r, true, nil
}

// Record inserts or raises a user's result for the date.
// Scores never go down: a lower score than the stored one is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_results (user_id, date, puzzle_index, score, words, max_score)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			score = excluded.score,
			words = excluded.words,
			updated_at = CURRENT_TIMESTAMP
		WHERE excluded.score > daily_results.score`,
		r.UserID, r.Date, r.PuzzleIndex, r.Score, r.Words, r.MaxScore,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID   string `json:"userId"`
	Username string `json:"username,omitempty"`
	Score    int    `json:"score"`
	Words    int    `json:"words"`
}

// Leaderboard returns the top results for a date: highest score first,
// earliest to reach it breaking ties. Default limit is 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.user_id, COALESCE(u.username, ''), d.score, d.words
		FROM daily_results d
		LEFT JOIN users u ON u.id = d.user_id
		WHERE d.date=?
		ORDER BY d.score DESC, d.updated_at ASC, d.created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Username, &r.Score, &r.Words); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
