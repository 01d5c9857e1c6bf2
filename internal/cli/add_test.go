package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/habits/internal/habit"
	"github.com/roach88/habits/internal/store"
)

func TestAdd(t *testing.T) {
	dbPath := testDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Database: dbPath, Format: "text"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"--title", "read",
		"--description", "twenty pages before bed",
		"--required",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Added habit "read".`)

	// Verify persistence.
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	habits, err := st.ListHabits(context.Background())
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, habit.Habit{
		Title:       "read",
		Description: "twenty pages before bed",
		Required:    true,
	}, habits[0])
}

func TestAdd_Duplicate(t *testing.T) {
	dbPath := testDatabase(t)
	seedHabits(t, dbPath, habit.Habit{Title: "read"})

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Database: dbPath, Format: "text"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--title", "read"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// Failed insert left the store unchanged.
	st, openErr := store.Open(dbPath)
	require.NoError(t, openErr)
	defer st.Close()

	count, countErr := st.CountRows(context.Background(), "habits")
	require.NoError(t, countErr)
	assert.Equal(t, 1, count)
}

func TestAdd_EmptyTitle(t *testing.T) {
	rootOpts := &RootOptions{Database: testDatabase(t), Format: "text"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", "   "})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-empty")
}

func TestAdd_MissingTitleFlag(t *testing.T) {
	rootOpts := &RootOptions{Database: testDatabase(t), Format: "text"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestAdd_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Database: testDatabase(t), Format: "json"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--title", "smoke", "--negative"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "smoke", data["title"])
	assert.Equal(t, true, data["negative"])
}

func TestAdd_UnreachableStore(t *testing.T) {
	// A database path under a file cannot be created.
	blocked := testDatabase(t)
	seedHabits(t, blocked) // creates the db file itself

	rootOpts := &RootOptions{Database: blocked + "/db.sqlite3", Format: "text"}
	cmd := NewAddCommand(rootOpts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", "read"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
