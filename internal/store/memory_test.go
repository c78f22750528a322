package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/spellingbee/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	s := NewSession(game.New("clwgro", 'i', []string{"will"}, nil), "anon-1")
	_, err = uuid.Parse(s.ID)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, s))
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, game.Valid, got.Game.Play("will"))
	assert.Equal(t, 1, s.Game.Score(), "store hands out the live session")
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := NewSession(game.New("clwgro", 'i', nil, nil), "anon-1")
	require.NoError(t, st.Save(ctx, s))

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err := st.Get(ctx, s.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, st.Len())

	require.NoError(t, st.Delete(ctx, "nope"))
}
