package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterLexicon(t *testing.T) {
	letters := NewLetterSet("clwgro", 'i')
	raw := []string{
		"  Will ", "will", "WILL", // case and whitespace collapse
		"cowgirl",
		"rail",   // foreign letter
		"roll",   // no required letter
		"oil",    // too short
		"",       // blank
		"wil-co", // punctuation
		"girl",
		"grill",
	}
	got := FilterLexicon(raw, []string{"GRILL"}, letters)
	assert.Equal(t, []string{"cowgirl", "girl", "will"}, got)
}

func TestFilterLexiconEmpty(t *testing.T) {
	assert.Empty(t, FilterLexicon(nil, nil, NewLetterSet("abc", 'd')))
}

func TestNewLetterSet(t *testing.T) {
	ls := NewLetterSet("OrgWlci c1", 'I')
	assert.Equal(t, 'i', ls.Required)
	assert.Equal(t, "cglorw", ls.OptionalString())
	assert.True(t, ls.Allows('i'))
	assert.True(t, ls.Allows('w'))
	assert.False(t, ls.Allows('a'))
}

func TestParseLetters(t *testing.T) {
	ls, err := ParseLetters(" clwgro ", "i")
	assert.NoError(t, err)
	assert.Equal(t, "cglorw", ls.OptionalString())

	for _, tc := range []struct{ optional, required string }{
		{"clwgro", ""},
		{"clwgro", "ab"},
		{"clwgro", "1"},
		{"clw9ro", "i"},
	} {
		_, err := ParseLetters(tc.optional, tc.required)
		assert.ErrorIs(t, err, ErrInvalidLetters, "%q/%q", tc.optional, tc.required)
	}
}

func TestRankFor(t *testing.T) {
	assert.Equal(t, "Beginner", RankFor(0, 100))
	assert.Equal(t, "Good Start", RankFor(2, 100))
	assert.Equal(t, "Solid", RankFor(20, 100))
	assert.Equal(t, "Genius", RankFor(99, 100))
	assert.Equal(t, "Queen Bee", RankFor(100, 100))
	assert.Equal(t, "Beginner", RankFor(0, 0))
}
