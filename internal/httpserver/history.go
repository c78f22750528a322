// internal/httpserver/history.go
//
// Best-effort game history in SQLite: one games row per session, updated on
// every accepted word, plus per-user counters. Failures are logged, never
// surfaced to the player.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/store"
)

// recordNewGame inserts the history row for a fresh session.
func (s *Server) recordNewGame(ctx context.Context, sess *store.Session, signedIn bool) {
	g := sess.Game
	var userID, anonID any
	if signedIn {
		userID = sess.OwnerID
	} else {
		anonID = sess.OwnerID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, user_id, anonymous_id, required_letter, optional_letters, max_score, started_at)
		VALUES (?,?,?,?,?,?,?)`,
		sess.ID, userID, anonID, string(g.RequiredLetter()), g.OptionalLetters(), g.MaxScore(),
		sess.StartedAt.Format(time.RFC3339))
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert game row")
		return
	}
	if signedIn {
		if _, err := s.db.ExecContext(ctx, `UPDATE users SET games_played = games_played + 1 WHERE id=?`, sess.OwnerID); err != nil {
			log.Warn().Err(err).Str("user", sess.OwnerID).Msg("bump games played")
		}
	}
}

// recordPlay updates the games row and the owning user's counters after an
// accepted word. Rows that do not belong to caller are left alone.
func (s *Server) recordPlay(ctx context.Context, sess *store.Session, caller string, pangram bool) {
	snap := sess.Game.Snapshot()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin history tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE games SET words=?, score=?, rank=?, updated_at=?
		WHERE id=? AND (user_id=? OR anonymous_id=?)`,
		len(snap.Played), snap.Score, snap.Rank, time.Now().UTC().Format(time.RFC3339),
		sess.ID, caller, caller)
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("update game row")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Warn().Str("gameId", sess.ID).Str("caller", caller).Msg("game row not owned by caller")
		return
	}

	bonus := 0
	if pangram {
		bonus = 1
	}
	// games.user_id follows claims made after the session started.
	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET
			words_found = words_found + 1,
			pangrams    = pangrams + ?,
			best_score  = MAX(best_score, ?)
		WHERE id = (SELECT user_id FROM games WHERE id=?)`,
		bonus, snap.Score, sess.ID); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("bump user stats")
		return
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit history tx")
	}
}

// handleStats returns the signed-in user's counters.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	me, err := currentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	u, err := s.findUserByID(r.Context(), me.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":          u.ID,
		"gamesPlayed": u.GamesPlayed,
		"wordsFound":  u.WordsFound,
		"pangrams":    u.Pangrams,
		"bestScore":   u.BestScore,
	})
}

// gameRow is one entry of /games/mine.
type gameRow struct {
	ID        string `json:"id"`
	Required  string `json:"required"`
	Optional  string `json:"optional"`
	Words     int    `json:"words"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"maxScore"`
	Rank      string `json:"rank"`
	StartedAt string `json:"startedAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// handleMyGames returns the signed-in user's 50 most recent games.
func (s *Server) handleMyGames(w http.ResponseWriter, r *http.Request) {
	me, err := currentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	rows, err := s.db.QueryContext(r.Context(), `
		SELECT id, required_letter, optional_letters, words, score, max_score, rank, started_at, COALESCE(updated_at,'')
		FROM games WHERE user_id=? ORDER BY started_at DESC LIMIT 50`, me.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	defer rows.Close()

	out := []gameRow{}
	for rows.Next() {
		var gr gameRow
		if err := rows.Scan(&gr.ID, &gr.Required, &gr.Optional, &gr.Words, &gr.Score,
			&gr.MaxScore, &gr.Rank, &gr.StartedAt, &gr.UpdatedAt); err != nil {
			log.Warn().Err(err).Msg("scan game row")
			continue
		}
		out = append(out, gr)
	}
	_ = json.NewEncoder(w).Encode(out)
}
