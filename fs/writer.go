package fs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/termgate"
)

// exportPageSize is the number of records read from the log per query.
const exportPageSize = 1000

// LogExporter writes the verdict log as JSONL, one record per line, for
// offline review. The file is written under a temporary name and renamed
// into place, so readers never see a partial export.
type LogExporter struct {
	Log termgate.LogService
}

// NewLogExporter creates a new LogExporter.
func NewLogExporter(log termgate.LogService) *LogExporter {
	return &LogExporter{Log: log}
}

// Export writes all records matching filter to path and returns how many
// were written. filter's pagination is ignored.
func (e *LogExporter) Export(ctx context.Context, path string, filter termgate.LogFilter) (n int, err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)

	filter.Limit = exportPageSize
	for filter.Offset = 0; ; filter.Offset += exportPageSize {
		records, err := e.Log.FindRecords(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("find records: %w", err)
		}
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return 0, err
			}
		}
		n += len(records)
		if len(records) < exportPageSize {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	return n, nil
}
