// internal/httpserver/routes_game.go
//
// Free-play routes:
//   - POST /game/new    → start a session (given letters or a random puzzle)
//   - POST /game/play   → submit one word
//   - POST /game/check  → live input filter for the letters typed so far
//   - GET  /game/{id}   → current snapshot

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/store"
)

// mountGame registers the /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/play", s.handlePlay)
		r.Post("/check", s.handleCheck)
		r.Get("/{id}", s.handleGetGame)
	})
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Optional string `json:"optional"` // e.g. "clwgro"; empty with Required → random puzzle
	Required string `json:"required"` // single letter
}
type newGameRes struct {
	GameID   string `json:"gameId"`
	Required string `json:"required"`
	Optional string `json:"optional"`
	Answers  int    `json:"answers"`
	Pangrams int    `json:"pangrams"`
	MaxScore int    `json:"maxScore"`
}

func newGameResFor(sess *store.Session) newGameRes {
	g := sess.Game
	return newGameRes{
		GameID:   sess.ID,
		Required: string(g.RequiredLetter()),
		Optional: g.OptionalLetters(),
		Answers:  g.AnswerCount(),
		Pangrams: g.PangramCount(),
		MaxScore: g.MaxScore(),
	}
}

// handleNewGame builds a session for the requested letters (or a random
// puzzle), stores it and records a history row for the owner.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body asks for a random puzzle.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	letters := s.lex.RandomPuzzle().Letters
	if req.Required != "" || req.Optional != "" {
		ls, err := game.ParseLetters(req.Optional, req.Required)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		letters = ls
	}

	owner, signedIn := s.ownerID(w, r)
	sess := store.NewSession(s.lex.NewGame(letters), owner)
	if err := s.store.Save(r.Context(), sess); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordNewGame(r.Context(), sess, signedIn)

	_ = json.NewEncoder(w).Encode(newGameResFor(sess))
}

// playReq/Res payloads for POST /game/play and /daily/play.
type playReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}
type playRes struct {
	Result   game.PlayResult `json:"result"`
	Points   int             `json:"points"`
	Pangram  bool            `json:"pangram"`
	Score    int             `json:"score"`
	MaxScore int             `json:"maxScore"`
	Rank     string          `json:"rank"`
}

// lookupSession resolves gameID, writing a 404 when it is unknown.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request, gameID string) (*store.Session, bool) {
	sess, err := s.store.Get(r.Context(), gameID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_failed")
		return nil, false
	}
	return sess, true
}

// lookupFreePlay is lookupSession for the /game routes: daily sessions and
// sessions owned by someone else are reported as unknown.
func (s *Server) lookupFreePlay(w http.ResponseWriter, r *http.Request, gameID string) (*store.Session, bool) {
	sess, ok := s.lookupSession(w, r, gameID)
	if !ok {
		return nil, false
	}
	if sess.Date != "" || !ownsSession(r, sess) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return sess, true
}

// applyPlay runs one word through the session and builds the response.
// Accepted words are recorded in history (best effort) against the caller.
func (s *Server) applyPlay(r *http.Request, sess *store.Session, word, caller string) playRes {
	g := sess.Game
	word = strings.ToLower(strings.TrimSpace(word))
	res := g.Play(word)

	out := playRes{Result: res, Score: g.Score(), MaxScore: g.MaxScore(), Rank: g.Rank()}
	if res == game.Valid {
		out.Points = g.ScoreWord(word)
		out.Pangram = g.IsPangram(word)
		s.recordPlay(r.Context(), sess, caller, out.Pangram)
	}
	hlog.FromRequest(r).Debug().
		Str("gameId", sess.ID).
		Str("word", word).
		Stringer("result", res).
		Int("score", out.Score).
		Msg("play")
	return out
}

// handlePlay submits a word to a free-play session.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req playReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, ok := s.lookupFreePlay(w, r, req.GameID)
	if !ok {
		return
	}
	caller, _ := s.ownerID(w, r)
	_ = json.NewEncoder(w).Encode(s.applyPlay(r, sess, req.Word, caller))
}

// checkReq/Res payloads for POST /game/check.
type checkReq struct {
	GameID string `json:"gameId"`
	Input  string `json:"input"`
}
type checkRes struct {
	Valid bool `json:"valid"`
}

// handleCheck reports whether typed input only uses the puzzle's letters.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, ok := s.lookupFreePlay(w, r, req.GameID)
	if !ok {
		return
	}
	valid := sess.Game.IsValidPartialInput(strings.ToLower(req.Input))
	_ = json.NewEncoder(w).Encode(checkRes{Valid: valid})
}

// gameRes is the GET /game/{id} payload.
type gameRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date,omitempty"`
	game.Snapshot
}

// handleGetGame returns the session snapshot.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupFreePlay(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(gameRes{GameID: sess.ID, Date: sess.Date, Snapshot: sess.Game.Snapshot()})
}
