// internal/words/words.go
//
// Lexicon sources for the game engine.
//
// Responsibilities:
//   - Parse raw word-list text into candidate words.
//   - Load the main and excluded lists from environment-provided files or
//     fall back to the embedded defaults in package assets.
//   - Build game sessions from raw text (NewGame).
//
// Raw text format:
//   • Words are separated by any whitespace (usually one per line).
//   • A line whose first non-blank character is '#' is a comment.
//   • Case is ignored; words are returned lowercased.
//
// Environment variables:
//   WORDS_MAIN_FILE=/path/to/words.txt
//   WORDS_EXCLUDED_FILE=/path/to/excluded.txt
//   WORDS_PUZZLES_FILE=/path/to/puzzles.txt
//
// Initialization is run once (sync.Once); Init returns the same error on
// every call.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/assets"
	"github.com/robalobadob/spellingbee/internal/game"
)

// Lexicon is a loaded set of raw word lists plus the puzzle rotation.
type Lexicon struct {
	Main     []string
	Excluded []string
	Puzzles  []Puzzle
}

// Sources names optional files overriding the embedded lists.
// Empty fields fall back to the embedded defaults.
type Sources struct {
	MainFile     string
	ExcludedFile string
	PuzzlesFile  string
}

// SourcesFromEnv reads Sources from WORDS_* environment variables.
func SourcesFromEnv() Sources {
	return Sources{
		MainFile:     os.Getenv("WORDS_MAIN_FILE"),
		ExcludedFile: os.Getenv("WORDS_EXCLUDED_FILE"),
		PuzzlesFile:  os.Getenv("WORDS_PUZZLES_FILE"),
	}
}

var (
	initOnce   sync.Once
	defaultLex *Lexicon
	initialErr error
)

// Init loads the default lexicon exactly once from the environment.
// Returns an error if the main list ends up empty or no puzzle is usable.
func Init() error {
	initOnce.Do(func() {
		defaultLex, initialErr = Load(SourcesFromEnv())
	})
	return initialErr
}

// Default returns the lexicon loaded by Init, or nil before Init.
func Default() *Lexicon {
	return defaultLex
}

// Load reads every list named by src, using embedded defaults for the rest.
func Load(src Sources) (*Lexicon, error) {
	mainText, err := textOr(src.MainFile, assets.MainText)
	if err != nil {
		return nil, fmt.Errorf("words: main list: %w", err)
	}
	exclText, err := textOr(src.ExcludedFile, assets.ExcludedText)
	if err != nil {
		return nil, fmt.Errorf("words: excluded list: %w", err)
	}
	puzzleLines, err := puzzleLinesOr(src.PuzzlesFile)
	if err != nil {
		return nil, fmt.Errorf("words: puzzles: %w", err)
	}

	lex := &Lexicon{
		Main:     Parse(mainText),
		Excluded: Parse(exclText),
		Puzzles:  ParsePuzzles(puzzleLines),
	}
	if len(lex.Main) == 0 {
		return nil, errors.New("words: main list is empty")
	}
	if len(lex.Puzzles) == 0 {
		return nil, errors.New("words: no usable puzzles")
	}
	log.Info().
		Int("main", len(lex.Main)).
		Int("excluded", len(lex.Excluded)).
		Int("puzzles", len(lex.Puzzles)).
		Msg("lexicon loaded")
	return lex, nil
}

// NewGame builds a session for a puzzle against this lexicon.
func (l *Lexicon) NewGame(letters game.LetterSet) *game.Game {
	return game.NewWithLetters(letters, l.Main, l.Excluded)
}

// Stats returns counts of loaded entries: (main, excluded, puzzles).
func (l *Lexicon) Stats() (mainCount, excludedCount, puzzleCount int) {
	return len(l.Main), len(l.Excluded), len(l.Puzzles)
}

// NewGame builds a session straight from raw word-list text.
func NewGame(optional string, required rune, mainText, excludedText string) *game.Game {
	return game.New(optional, required, Parse(mainText), Parse(excludedText))
}

// Parse splits raw word-list text into lowercase words.
// Comment lines are skipped; no other validation is done here, the
// lexicon filter drops anything unusable.
func Parse(text string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, w := range strings.Fields(line) {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

// textOr reads path if set, otherwise the embedded fallback.
func textOr(path string, fallback func() (string, error)) (string, error) {
	if path == "" {
		return fallback()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
