// internal/game/engine.go
//
// Core rules engine for a single Spelling Bee session.
// Responsibilities:
//   - Build the answer set for a puzzle from raw word lists.
//   - Validate plays in a fixed priority order (length, letters, dictionary, duplicate).
//   - Score accepted words and keep the running total.
//   - Answer read-only queries used for live input filtering and display.
//
// Notes:
//   - Letters and answers never change after New; they are read without locking.
//   - played and score are guarded by Game.mu.
package game

import (
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// New constructs a session for the given letters.
// mainWords and excludedWords are raw candidates; see FilterLexicon.
// An empty answer set is allowed: every play is then InvalidWord at best.
func New(optional string, required rune, mainWords, excludedWords []string) *Game {
	return NewWithLetters(NewLetterSet(optional, required), mainWords, excludedWords)
}

// NewWithLetters is New for an already built LetterSet.
func NewWithLetters(letters LetterSet, mainWords, excludedWords []string) *Game {
	sorted := FilterLexicon(mainWords, excludedWords, letters)
	g := &Game{
		letters: letters,
		answers: make(map[string]struct{}, len(sorted)),
		sorted:  sorted,
		played:  make(map[string]struct{}),
	}
	for _, w := range sorted {
		g.answers[w] = struct{}{}
	}
	for _, w := range sorted {
		g.maxScore += g.ScoreWord(w)
	}

	log.Debug().
		Str("required", string(letters.Required)).
		Str("optional", letters.OptionalString()).
		Int("answers", len(sorted)).
		Int("maxScore", g.maxScore).
		Msg("puzzle lexicon built")
	return g
}

// Play validates word and, if it is a new answer, records and scores it.
//
// Checks run in this order and the first failure wins:
//   1. fewer than MinLength letters       → InvalidLength
//   2. foreign letter or no required one  → InvalidLetters
//   3. not in the answer set              → InvalidWord
//   4. already accepted                   → AlreadyPlayed
//
// Only a Valid result changes state. Like the other word queries, Play
// ignores case.
func (g *Game) Play(word string) PlayResult {
	word = lowerWord(word)
	switch {
	case utf8.RuneCountInString(word) < MinLength:
		return InvalidLength
	case !g.hasValidLetters(word):
		return InvalidLetters
	case !g.isAnswer(word):
		return InvalidWord
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, dup := g.played[word]; dup {
		return AlreadyPlayed
	}
	g.played[word] = struct{}{}
	g.score += g.ScoreWord(word)
	return Valid
}

// ScoreWord computes the value of word independent of play history:
// one point for a four-letter word, one point per letter beyond that,
// plus PangramBonus for a pangram. Words outside the answer set score 0.
func (g *Game) ScoreWord(word string) int {
	word = lowerWord(word)
	if !g.isAnswer(word) {
		return 0
	}
	var base int
	switch n := utf8.RuneCountInString(word); {
	case n == MinLength:
		base = 1
	case n > MinLength:
		base = n
	}
	if g.IsPangram(word) {
		base += PangramBonus
	}
	return base
}

// IsPangram reports whether word is an answer that contains the required
// letter and every optional letter.
func (g *Game) IsPangram(word string) bool {
	word = lowerWord(word)
	return g.isAnswer(word) &&
		g.letters.hasRequired(word) &&
		g.letters.coversOptional(word)
}

// IsValidPartialInput reports whether every character of prefix is one of
// the puzzle's letters. Length and dictionary membership are ignored.
func (g *Game) IsValidPartialInput(prefix string) bool {
	return g.letters.usesOnly(lowerWord(prefix))
}

// Score returns the running total.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// MaxScore returns the score for playing every answer.
func (g *Game) MaxScore() int { return g.maxScore }

// RequiredLetter returns the letter every answer contains.
func (g *Game) RequiredLetter() rune { return g.letters.Required }

// OptionalLetters returns the optional letters in sorted order.
func (g *Game) OptionalLetters() string { return g.letters.OptionalString() }

// Letters returns a copy of the puzzle's letter set.
func (g *Game) Letters() LetterSet {
	return LetterSet{Required: g.letters.Required, Optional: slices.Clone(g.letters.Optional)}
}

// AnswerCount returns the size of the answer set.
func (g *Game) AnswerCount() int { return len(g.sorted) }

// Answers returns the answer set in lexicographic order.
func (g *Game) Answers() []string { return slices.Clone(g.sorted) }

// PangramCount returns how many answers are pangrams.
func (g *Game) PangramCount() int {
	n := 0
	for _, w := range g.sorted {
		if g.IsPangram(w) {
			n++
		}
	}
	return n
}

// Played returns the accepted words in lexicographic order.
func (g *Game) Played() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playedLocked()
}

// Rank names the player's progress through the puzzle.
func (g *Game) Rank() string {
	return RankFor(g.Score(), g.maxScore)
}

// Snapshot returns letters, progress and totals read under one lock.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	played, score := g.playedLocked(), g.score
	g.mu.Unlock()
	return Snapshot{
		Required: string(g.letters.Required),
		Optional: g.letters.OptionalString(),
		Played:   played,
		Score:    score,
		MaxScore: g.maxScore,
		Rank:     RankFor(score, g.maxScore),
		Answers:  len(g.sorted),
		Pangrams: g.PangramCount(),
	}
}

func (g *Game) playedLocked() []string {
	out := maps.Keys(g.played)
	slices.Sort(out)
	return out
}

// hasValidLetters reports whether word uses only puzzle letters and
// includes the required one.
func (g *Game) hasValidLetters(word string) bool {
	return g.letters.hasRequired(word) && g.letters.usesOnly(word)
}

// isAnswer reports whether word is in the answer set.
func (g *Game) isAnswer(word string) bool {
	_, ok := g.answers[word]
	return ok
}
