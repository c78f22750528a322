package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/spellingbee/internal/game"
)

func TestParse(t *testing.T) {
	text := "# header\nWill  cowgirl\n\n  # indented comment\nGIRL\r\ncoil\n"
	assert.Equal(t, []string{"will", "cowgirl", "girl", "coil"}, Parse(text))
	assert.Empty(t, Parse(""))
}

func TestNewGameFromText(t *testing.T) {
	g := NewGame("clwgro", 'i', "will\ncowgirl\nrail\noil\ngrill", "grill")
	assert.Equal(t, []string{"cowgirl", "will"}, g.Answers())
	assert.Equal(t, game.Valid, g.Play("will"))
	assert.Equal(t, game.InvalidWord, g.Play("grill"))
}

func TestLoadEmbedded(t *testing.T) {
	lex, err := Load(Sources{})
	require.NoError(t, err)
	m, e, p := lex.Stats()
	assert.Positive(t, m)
	assert.Positive(t, e)
	assert.Equal(t, 3, p)

	g := lex.NewGame(lex.Puzzles[0].Letters)
	assert.Equal(t, game.Valid, g.Play("will"))
	assert.Equal(t, game.Valid, g.Play("cowgirl"))
	assert.Equal(t, 15, g.Score())
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.txt")
	puzzlesPath := filepath.Join(dir, "puzzles.txt")
	require.NoError(t, os.WriteFile(mainPath, []byte("alpha\nbeta\n"), 0o644))
	require.NoError(t, os.WriteFile(puzzlesPath, []byte("# c\nA BHLP\nbad\n"), 0o644))

	lex, err := Load(Sources{MainFile: mainPath, PuzzlesFile: puzzlesPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, lex.Main)
	require.Len(t, lex.Puzzles, 1)
	assert.Equal(t, "a bhlp", lex.Puzzles[0].String())
	assert.Equal(t, lex.Puzzles[0], lex.RandomPuzzle())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(Sources{MainFile: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0o644))
	_, err = Load(Sources{MainFile: empty})
	assert.ErrorContains(t, err, "main list is empty")

	_, err = Load(Sources{PuzzlesFile: empty})
	assert.ErrorContains(t, err, "no usable puzzles")
}

func TestParsePuzzles(t *testing.T) {
	got := ParsePuzzles([]string{"i clwgro", "ii clwgro", "i", "e dinrtu"})
	require.Len(t, got, 2)
	assert.Equal(t, 'i', got[0].Letters.Required)
	assert.Equal(t, "dinrtu", got[1].Letters.OptionalString())
}
