package fs_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/fs"
	"github.com/fwojciec/termgate/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes every record as one JSON line", func(t *testing.T) {
		t.Parallel()

		total := 2500
		log := &mock.LogService{
			FindRecordsFn: func(_ context.Context, f termgate.LogFilter) ([]*termgate.LogRecord, error) {
				var out []*termgate.LogRecord
				for i := f.Offset; i < total && i < f.Offset+f.Limit; i++ {
					out = append(out, &termgate.LogRecord{ID: fmt.Sprintf("r%d", i), Reason: termgate.ReasonAccepted, Accepted: true})
				}
				return out, nil
			},
		}
		path := filepath.Join(t.TempDir(), "out", "log.jsonl")

		n, err := fs.NewLogExporter(log).Export(context.Background(), path, termgate.LogFilter{})

		require.NoError(t, err)
		assert.Equal(t, total, n)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, total)

		var first termgate.LogRecord
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.Equal(t, "r0", first.ID)
		assert.True(t, first.Accepted)
	})

	t.Run("leaves no file behind on failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "log.jsonl")
		require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0644))

		log := &mock.LogService{
			FindRecordsFn: func(context.Context, termgate.LogFilter) ([]*termgate.LogRecord, error) {
				return nil, errors.New("database is closed")
			},
		}

		_, err := fs.NewLogExporter(log).Export(context.Background(), path, termgate.LogFilter{})
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1, "temporary file removed")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "previous\n", string(data), "existing export untouched")
	})
}
