package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedLists(t *testing.T) {
	main, err := MainText()
	require.NoError(t, err)
	require.Contains(t, main, "cowgirl")

	excl, err := ExcludedText()
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(excl))

	puzzles, err := PuzzleLines()
	require.NoError(t, err)
	require.Equal(t, "i clwgro", puzzles[0])
	for _, p := range puzzles {
		require.False(t, strings.HasPrefix(p, "#"))
	}
}
