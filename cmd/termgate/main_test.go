package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/termgate/cmd/termgate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against the database at dbPath.
func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := &main.Main{DBPath: dbPath}
	var stdout, stderr bytes.Buffer
	full := append([]string{args[0], "--db", dbPath}, args[1:]...)
	err := m.Run(context.Background(), full, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without a command", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := main.NewMain().Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := main.NewMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "ingest")
		assert.Contains(t, stdout.String(), "revalidate")
	})

	t.Run("checks terms without a database", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := &main.Main{DBPath: filepath.Join(t.TempDir(), "unused", "missing", "termgate.db")}

		err := m.Run(context.Background(), []string{"check", "Mixing Time"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `accept  "Mixing Time"`)
	})

	t.Run("rejects an unknown source", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "termgate.db")

		_, stderr, err := run(t, dbPath, "ingest", "--source", "ACME", t.TempDir())

		require.Error(t, err)
		assert.Contains(t, stderr, `unknown source "ACME"`)
	})
}

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "termgate.db")
	doc := filepath.Join(dir, "ne-107.txt")
	require.NoError(t, os.WriteFile(doc, []byte("The Mixing Time is the time required to reach homogeneity.\n"), 0644))

	stdout, _, err := run(t, dbPath, "ingest", "--source", "NAMUR", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Processing 1 documents")
	assert.Contains(t, stdout, "Committed 1, unchanged 0, skipped 0 documents")

	stdout, _, err = run(t, dbPath, "entries")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mixing Time  [en/NAMUR]  pending")
	assert.Contains(t, stdout, "- The Mixing Time is the time required to reach homogeneity.")

	stdout, _, err = run(t, dbPath, "ingest", "--source", "NAMUR", doc)
	require.NoError(t, err)
	assert.Contains(t, stdout, "unchanged")
	assert.Contains(t, stdout, "Committed 0, unchanged 1, skipped 0 documents")

	stdout, _, err = run(t, dbPath, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "committed")
	assert.Contains(t, stdout, doc)

	stdout, _, err = run(t, dbPath, "log", "--accepted")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accept")
	assert.Contains(t, stdout, "Mixing Time")

	out := filepath.Join(t.TempDir(), "log.jsonl")
	stdout, _, err = run(t, dbPath, "export-log", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reason":"accepted"`)
}
