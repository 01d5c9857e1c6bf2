package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/habits/internal/habit"
	"github.com/roach88/habits/internal/store"
)

// testDatabase returns a fresh database path inside a test tempdir.
func testDatabase(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "db.sqlite3")
}

// seedHabits opens the store at path, inserts the given habits, and
// closes it again, so the command under test gets the connection to
// itself.
func seedHabits(t *testing.T, path string, habits ...habit.Habit) {
	t.Helper()

	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	for _, h := range habits {
		require.NoError(t, st.InsertHabit(context.Background(), h))
	}
}
