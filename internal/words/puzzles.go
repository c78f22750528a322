// internal/words/puzzles.go
//
// Puzzle rotation for new games and the Daily Challenge.
// Each puzzle line is "<required> <optional>", e.g. "i clwgro".
// Malformed lines are logged and skipped.

package words

import (
	"crypto/rand"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/assets"
	"github.com/robalobadob/spellingbee/internal/game"
)

// Puzzle is one letter combination from the rotation.
type Puzzle struct {
	Letters game.LetterSet
}

// String renders the puzzle in its file form.
func (p Puzzle) String() string {
	return string(p.Letters.Required) + " " + p.Letters.OptionalString()
}

// ParsePuzzles converts puzzle lines into letter sets.
func ParsePuzzles(lines []string) []Puzzle {
	out := make([]Puzzle, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Warn().Str("line", line).Msg("skipping malformed puzzle")
			continue
		}
		ls, err := game.ParseLetters(fields[1], fields[0])
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping malformed puzzle")
			continue
		}
		out = append(out, Puzzle{Letters: ls})
	}
	return out
}

// RandomPuzzle returns a cryptographically random puzzle from the rotation.
func (l *Lexicon) RandomPuzzle() Puzzle {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.Puzzles))))
	return l.Puzzles[nBig.Int64()]
}

// puzzleLinesOr reads puzzle lines from path, or the embedded list.
func puzzleLinesOr(path string) ([]string, error) {
	if path == "" {
		return assets.PuzzleLines()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(b), "\n") {
		s := strings.TrimSpace(strings.ToLower(line))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
