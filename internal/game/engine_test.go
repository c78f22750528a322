package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{
	"will", "cowgirl", "rail", "roll", "oil", "girl", "glow", "wig", "cowl",
	"crowing", "lilo", "Coil", "coil", "igloo", "grill", "word", "wilco",
}

func newTestGame() *Game {
	return New("clwgro", 'i', testWords, []string{"lilo"})
}

func TestPlayScenario(t *testing.T) {
	g := newTestGame()
	require.Equal(t, 0, g.Score())

	steps := []struct {
		word  string
		want  PlayResult
		score int
	}{
		{"will", Valid, 1},
		{"cowgirl", Valid, 15},
		{"rail", InvalidLetters, 15},
		{"roll", InvalidLetters, 15},
		{"clwgi", InvalidWord, 15},
		{"oil", InvalidLength, 15},
		{"cowgirl", AlreadyPlayed, 15},
	}
	for _, s := range steps {
		assert.Equal(t, s.want, g.Play(s.word), "play %q", s.word)
		assert.Equal(t, s.score, g.Score(), "score after %q", s.word)
	}
}

func TestPlayCheckPriority(t *testing.T) {
	g := newTestGame()

	// too short and foreign letters: length wins
	assert.Equal(t, InvalidLength, g.Play("zzz"))
	assert.Equal(t, InvalidLength, g.Play(""))
	// foreign letters and not a word: letters win
	assert.Equal(t, InvalidLetters, g.Play("zzzzzz"))
	// right letters, missing required letter
	assert.Equal(t, InvalidLetters, g.Play("glow"))
	// right letters, not an answer
	assert.Equal(t, InvalidWord, g.Play("wigg"))
	// excluded from the lexicon
	assert.Equal(t, InvalidWord, g.Play("lilo"))
	assert.Equal(t, 0, g.Score())
}

func TestPlayTwiceIsIdempotent(t *testing.T) {
	g := newTestGame()
	require.Equal(t, Valid, g.Play("girl"))
	before := g.Score()
	require.Equal(t, AlreadyPlayed, g.Play("girl"))
	assert.Equal(t, before, g.Score())
	assert.Equal(t, []string{"girl"}, g.Played())
}

func TestPlayLowercasesInput(t *testing.T) {
	g := newTestGame()
	assert.Equal(t, Valid, g.Play("COIL"))
	assert.Equal(t, AlreadyPlayed, g.Play("coil"))
}

func TestWordQueriesIgnoreCase(t *testing.T) {
	g := newTestGame()
	assert.Equal(t, Valid, g.Play("COWGIRL"))
	assert.Equal(t, 14, g.Score())
	assert.Equal(t, 14, g.ScoreWord("COWGIRL"))
	assert.Equal(t, g.ScoreWord("cowgirl"), g.ScoreWord("CowGirl"))
	assert.True(t, g.IsPangram("COWGIRL"))
	assert.True(t, g.IsValidPartialInput("CO"))
	assert.False(t, g.IsValidPartialInput("CA"))
}

func TestScoreWord(t *testing.T) {
	g := newTestGame()
	assert.Equal(t, 1, g.ScoreWord("will"))
	assert.Equal(t, 5, g.ScoreWord("igloo"))
	assert.Equal(t, 14, g.ScoreWord("cowgirl"))
	assert.Equal(t, 0, g.ScoreWord("oil"), "too short")
	assert.Equal(t, 0, g.ScoreWord("wiggle"), "not an answer")

	g.Play("cowgirl")
	assert.Equal(t, 14, g.ScoreWord("cowgirl"), "independent of history")
}

func TestIsPangram(t *testing.T) {
	g := newTestGame()
	assert.True(t, g.IsPangram("cowgirl"))
	assert.False(t, g.IsPangram("crowing"), "contains n, not an answer")
	assert.False(t, g.IsPangram("girl"))
	assert.False(t, g.IsPangram("clwgro"), "not an answer")
	assert.Equal(t, 1, g.PangramCount())
}

func TestIsValidPartialInput(t *testing.T) {
	g := newTestGame()
	assert.True(t, g.IsValidPartialInput(""))
	assert.True(t, g.IsValidPartialInput("co"))
	assert.True(t, g.IsValidPartialInput("glow"), "required letter not needed yet")
	assert.False(t, g.IsValidPartialInput("ra"))
}

func TestMaxScore(t *testing.T) {
	g := newTestGame()
	want := 0
	for _, w := range g.Answers() {
		want += g.ScoreWord(w)
	}
	assert.Equal(t, want, g.MaxScore())

	for _, w := range append(g.Answers(), "will", "zzzz", "oil") {
		prev := g.Score()
		g.Play(w)
		assert.GreaterOrEqual(t, g.Score(), prev)
		assert.LessOrEqual(t, g.Score(), g.MaxScore())
	}
	assert.Equal(t, g.MaxScore(), g.Score())
	assert.Equal(t, "Queen Bee", g.Rank())
}

func TestEmptyAnswerSet(t *testing.T) {
	g := New("xyz", 'q', nil, nil)
	assert.Equal(t, 0, g.MaxScore())
	assert.Equal(t, 0, g.AnswerCount())
	assert.Equal(t, InvalidWord, g.Play("qqxy"))
	assert.Equal(t, InvalidLength, g.Play("qx"))
	assert.Equal(t, "Beginner", g.Rank())
}

func TestSnapshot(t *testing.T) {
	g := newTestGame()
	g.Play("will")
	g.Play("coil")
	snap := g.Snapshot()
	assert.Equal(t, "i", snap.Required)
	assert.Equal(t, "cglorw", snap.Optional)
	assert.Equal(t, []string{"coil", "will"}, snap.Played)
	assert.Equal(t, 2, snap.Score)
	assert.Equal(t, g.MaxScore(), snap.MaxScore)
	assert.Equal(t, g.AnswerCount(), snap.Answers)
}

func TestPlayResultString(t *testing.T) {
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "invalid_letters", InvalidLetters.String())
	assert.Equal(t, "unknown", PlayResult(42).String())

	b, err := AlreadyPlayed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "already_played", string(b))
}

func TestPlayConcurrent(t *testing.T) {
	g := newTestGame()
	var wg sync.WaitGroup
	valid := make([]int, 8)
	for i := range valid {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, w := range g.Answers() {
				if g.Play(w) == Valid {
					valid[i]++
				}
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range valid {
		total += n
	}
	assert.Equal(t, g.AnswerCount(), total, "each answer accepted exactly once")
	assert.Equal(t, g.MaxScore(), g.Score())
}
