package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-ladder/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLevelsList(t *testing.T) {
	out, err := execute(t, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "Easy Street")
	assert.Contains(t, out, "GangLand")
	assert.Contains(t, out, "2000")
}

func TestLevelsShow(t *testing.T) {
	out, err := execute(t, "levels", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1 - Easy Street")
	assert.Contains(t, out, "=========H====")

	_, err = execute(t, "levels", "99")
	assert.Error(t, err)
}

func TestScores(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveScore("ladder", 4200, 3)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err := execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "4200")
	assert.Contains(t, out, "Best: 4200")

	out, err = execute(t, "scores", "--db", db, "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Scores cleared.")

	flagScoresClear = false
	out, err = execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")
}

func TestUnknownDifficulty(t *testing.T) {
	_, err := execute(t, "levels", "--difficulty", "nightmare")
	assert.ErrorContains(t, err, "unknown difficulty")
	flagDifficulty = ""
}
