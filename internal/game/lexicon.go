// internal/game/lexicon.go
//
// Lexicon filtering: reduces a raw word list to the answer set of one puzzle.
//
// Steps (in order):
//   1. candidates minus excluded words (both normalized to lowercase)
//   2. letters filter: only the puzzle's letters
//   3. required-letter filter
//   4. length filter: at least MinLength letters
//
// Malformed words are dropped, never reported.

package game

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterLexicon returns the sorted, de-duplicated answer set for letters.
func FilterLexicon(candidates, excluded []string, letters LetterSet) []string {
	lower := cases.Lower(language.Und)

	skip := make(map[string]struct{}, len(excluded))
	for _, w := range excluded {
		skip[normalizeWord(lower, w)] = struct{}{}
	}

	set := make(map[string]struct{}, len(candidates))
	for _, w := range candidates {
		w = normalizeWord(lower, w)
		if w == "" {
			continue
		}
		if _, bad := skip[w]; bad {
			continue
		}
		set[w] = struct{}{}
	}

	for w := range set {
		switch {
		case !letters.usesOnly(w):
			delete(set, w)
		case !letters.hasRequired(w):
			delete(set, w)
		case utf8.RuneCountInString(w) < MinLength:
			delete(set, w)
		}
	}

	out := maps.Keys(set)
	slices.Sort(out)
	return out
}

func normalizeWord(c cases.Caser, w string) string {
	return c.String(strings.TrimSpace(w))
}

// lowerWord folds case the same way the filter does, for single lookups.
func lowerWord(w string) string {
	return cases.Lower(language.Und).String(w)
}
