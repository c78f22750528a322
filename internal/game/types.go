// internal/game/types.go
//
// Core type definitions for the Spelling Bee rules engine.
// Defines:
//   - PlayResult: closed set of outcomes for a single play.
//   - LetterSet: the puzzle's required letter plus its optional letters.
//   - Game: state for a single puzzle session.

package game

import (
	"sync"
)

const (
	// MinLength is the minimum number of letters in a play.
	MinLength = 4
	// PangramBonus is added to the score of any word using every optional letter.
	PangramBonus = 7
)

// PlayResult is the outcome of playing one word.
// Values:
//   - Valid:          accepted; added to the played set and scored.
//   - AlreadyPlayed:  a valid word that was accepted earlier.
//   - InvalidWord:    letters are fine but the word is not an answer.
//   - InvalidLength:  fewer than MinLength letters.
//   - InvalidLetters: uses a letter outside the puzzle or omits the required one.
type PlayResult uint8

const (
	Valid PlayResult = iota
	AlreadyPlayed
	InvalidWord
	InvalidLength
	InvalidLetters
)

var playResultNames = [...]string{
	Valid:          "valid",
	AlreadyPlayed:  "already_played",
	InvalidWord:    "invalid_word",
	InvalidLength:  "invalid_length",
	InvalidLetters: "invalid_letters",
}

// String returns the snake_case wire name of r.
func (r PlayResult) String() string {
	if int(r) < len(playResultNames) {
		return playResultNames[r]
	}
	return "unknown"
}

// MarshalText lets PlayResult serialize as its name in JSON.
func (r PlayResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// LetterSet holds the letters of one puzzle.
// Optional never contains Required and is kept sorted so that no ordering
// information leaks to a player.
type LetterSet struct {
	Required rune
	Optional []rune
}

// Game holds the state of a single Spelling Bee session.
// letters and answers are fixed at construction; played and score change
// only through Play, under mu.
type Game struct {
	letters  LetterSet
	answers  map[string]struct{} // answer set for lookups
	sorted   []string            // answer set in lexicographic order
	maxScore int                 // cached sum of ScoreWord over answers

	mu     sync.Mutex
	played map[string]struct{} // accepted words so far
	score  int                 // running total of accepted words
}

// Snapshot is a consistent read of a session for display.
type Snapshot struct {
	Required string   `json:"required"`
	Optional string   `json:"optional"`
	Played   []string `json:"played"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Rank     string   `json:"rank"`
	Answers  int      `json:"answers"`
	Pangrams int      `json:"pangrams"`
}
