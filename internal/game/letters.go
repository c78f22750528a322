// internal/game/letters.go
//
// Construction and queries for LetterSet.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// ErrInvalidLetters is returned by ParseLetters for unusable puzzle input.
var ErrInvalidLetters = errors.New("invalid letters")

// NewLetterSet builds a LetterSet from loose input.
// Letters are lowercased; non-letters, duplicates and any copy of the
// required letter are dropped from the optional set.
func NewLetterSet(optional string, required rune) LetterSet {
	required = unicode.ToLower(required)
	opt := make([]rune, 0, len(optional))
	for _, r := range optional {
		r = unicode.ToLower(r)
		if !unicode.IsLetter(r) || r == required {
			continue
		}
		opt = append(opt, r)
	}
	slices.Sort(opt)
	return LetterSet{Required: required, Optional: slices.Compact(opt)}
}

// ParseLetters is the strict variant used for user-supplied puzzles.
// required must be exactly one letter and optional must be letters only.
func ParseLetters(optional, required string) (LetterSet, error) {
	required = strings.TrimSpace(required)
	if utf8.RuneCountInString(required) != 1 {
		return LetterSet{}, fmt.Errorf("%w: required must be a single letter, got %q", ErrInvalidLetters, required)
	}
	req, _ := utf8.DecodeRuneInString(required)
	if !unicode.IsLetter(req) {
		return LetterSet{}, fmt.Errorf("%w: required %q is not a letter", ErrInvalidLetters, req)
	}
	optional = strings.TrimSpace(optional)
	for _, r := range optional {
		if !unicode.IsLetter(r) {
			return LetterSet{}, fmt.Errorf("%w: optional %q is not a letter", ErrInvalidLetters, r)
		}
	}
	return NewLetterSet(optional, req), nil
}

// Allows reports whether r is the required letter or one of the optional ones.
func (ls LetterSet) Allows(r rune) bool {
	return r == ls.Required || slices.Contains(ls.Optional, r)
}

// OptionalString returns the optional letters in canonical (sorted) order.
func (ls LetterSet) OptionalString() string {
	return string(ls.Optional)
}

// usesOnly reports whether every rune of word is allowed.
func (ls LetterSet) usesOnly(word string) bool {
	for _, r := range word {
		if !ls.Allows(r) {
			return false
		}
	}
	return true
}

// hasRequired reports whether word contains the required letter.
func (ls LetterSet) hasRequired(word string) bool {
	return strings.ContainsRune(word, ls.Required)
}

// coversOptional reports whether word contains every optional letter.
func (ls LetterSet) coversOptional(word string) bool {
	for _, r := range ls.Optional {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}
