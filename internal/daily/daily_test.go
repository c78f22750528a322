package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/spellingbee/internal/db"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	assert.Equal(t, "2026-10-18", DateKey(time.Date(2026, 10, 19, 5, 0, 0, 0, loc)))
}

func TestPuzzleIndex(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	a := PuzzleIndex(day, "salt", 3)
	assert.Equal(t, a, PuzzleIndex(day.Add(6*time.Hour), "salt", 3), "same day, same puzzle")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 3)
	assert.Equal(t, 0, PuzzleIndex(day, "salt", 0))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewStore(conn)
}

func TestStoreRecordAndLeaderboard(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, found, err := st.Get(ctx, "u1", "2026-10-19")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Record(ctx, Result{UserID: "u1", Date: "2026-10-19", Score: 5, Words: 2, MaxScore: 40}))
	require.NoError(t, st.Record(ctx, Result{UserID: "u2", Date: "2026-10-19", Score: 9, Words: 3, MaxScore: 40}))
	require.NoError(t, st.Record(ctx, Result{UserID: "u1", Date: "2026-10-19", Score: 12, Words: 4, MaxScore: 40}))
	// lower score is ignored
	require.NoError(t, st.Record(ctx, Result{UserID: "u2", Date: "2026-10-19", Score: 1, Words: 1, MaxScore: 40}))
	// other day
	require.NoError(t, st.Record(ctx, Result{UserID: "u3", Date: "2026-10-18", Score: 99, Words: 9, MaxScore: 99}))

	r, found, err := st.Get(ctx, "u1", "2026-10-19")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 12, r.Score)
	assert.Equal(t, 4, r.Words)

	top, err := st.Leaderboard(ctx, "2026-10-19", 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "u1", top[0].UserID)
	assert.Equal(t, 12, top[0].Score)
	assert.Equal(t, "u2", top[1].UserID)
	assert.Equal(t, 9, top[1].Score)
}
