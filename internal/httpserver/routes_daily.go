// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start or resume today's puzzle
//   - POST /daily/play        → submit a word to today's puzzle
//   - GET  /daily/leaderboard → top 20 scores for today (or ?date=YYYY-MM-DD)
//
// Everyone gets the same puzzle on a given date (HMAC of date + salt).
// Each player has one in-memory session per date, and sessions from earlier
// dates are dropped when the next one starts. The best score is
// upserted to the DB after every accepted word.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/daily"
	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/store"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	results  *daily.Store
	mu       sync.Mutex        // guards sessions
	sessions map[string]string // userID|date → session ID
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		results:  daily.NewStore(s.db),
		sessions: make(map[string]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/play", dd.handlePlay)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// today returns today's date key, puzzle index and letters.
func (d *dailyServer) today() (date string, idx int, letters game.LetterSet) {
	now := d.srv.now().UTC()
	puzzles := d.srv.lex.Puzzles
	idx = daily.PuzzleIndex(now, d.srv.cfg.DailySalt, len(puzzles))
	return daily.DateKey(now), idx, puzzles[idx].Letters
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	newGameRes
	Date  string `json:"date"`
	Score int    `json:"score"`
	Best  int    `json:"best"` // best score already recorded for today
}

// handleNew creates or reuses the caller's session for today's puzzle.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, signedIn := d.srv.ownerID(w, r)
	date, idx, letters := d.today()
	key := uid + "|" + date

	best := 0
	if res, found, err := d.results.Get(r.Context(), uid, date); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("load daily result")
	} else if found {
		best = res.Score
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.pruneLocked(r.Context(), date)
	if id, ok := d.sessions[key]; ok {
		if sess, err := d.srv.store.Get(r.Context(), id); err == nil {
			_ = json.NewEncoder(w).Encode(dailyNewRes{newGameResFor(sess), date, sess.Game.Score(), best})
			return
		}
	}

	sess := store.NewSession(d.srv.lex.NewGame(letters), uid)
	sess.Date = date
	if err := d.srv.store.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	d.sessions[key] = sess.ID
	d.srv.recordNewGame(r.Context(), sess, signedIn)
	hlog.FromRequest(r).Info().Str("date", date).Int("puzzle", idx).Msg("daily session started")

	_ = json.NewEncoder(w).Encode(dailyNewRes{newGameResFor(sess), date, 0, best})
}

// pruneLocked drops sessions from dates other than today, both from the
// index and from the session store. Callers hold d.mu.
func (d *dailyServer) pruneLocked(ctx context.Context, today string) {
	for key, id := range d.sessions {
		if strings.HasSuffix(key, "|"+today) {
			continue
		}
		delete(d.sessions, key)
		if err := d.srv.store.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Str("gameId", id).Msg("drop stale daily session")
		}
	}
}

// dailyPlayRes is the response payload for /daily/play.
type dailyPlayRes struct {
	playRes
	Date string `json:"date"`
}

// handlePlay applies a word to the caller's session for today.
// Sessions from an earlier date are rejected with 409.
func (d *dailyServer) handlePlay(w http.ResponseWriter, r *http.Request) {
	uid, _ := d.srv.ownerID(w, r)

	var req playReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	date, idx, _ := d.today()

	d.mu.Lock()
	id, ok := d.sessions[uid+"|"+date]
	d.mu.Unlock()
	if !ok || id != req.GameID {
		writeError(w, http.StatusConflict, "no_session")
		return
	}
	sess, ok := d.srv.lookupSession(w, r, id)
	if !ok {
		return
	}

	res := d.srv.applyPlay(r, sess, req.Word, uid)
	if res.Result == game.Valid {
		err := d.results.Record(r.Context(), daily.Result{
			UserID:      uid,
			Date:        date,
			PuzzleIndex: idx,
			Score:       res.Score,
			Words:       len(sess.Game.Played()),
			MaxScore:    res.MaxScore,
		})
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("record daily result")
		}
	}
	_ = json.NewEncoder(w).Encode(dailyPlayRes{res, date})
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	rows, err := d.results.Leaderboard(r.Context(), date, 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
