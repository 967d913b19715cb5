package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/m-Py/minDiff/types"
)

// CSV writes the dataset with a group label column to a local file.
//
// Every improved assignment rewrites the whole file, so after the search
// (or after a crash mid-run) the file holds the best assignment seen so
// far. The write goes through a temp file and an atomic rename; a reader
// never observes a half-written table.
type CSV struct {
	path        string
	data        *types.Dataset
	labelColumn string

	mu          sync.Mutex
	lastVersion int64
}

var _ types.Sink = (*CSV)(nil)

// NewCSV creates a sink writing the labeled dataset to the given path.
//
// Parameters:
//   - path: Output file path
//   - data: The dataset being searched (columns are echoed into the output)
//   - labelColumn: Name of the added group label column (e.g. Config.LabelColumn)
//
// Returns:
//   - *CSV: Initialized sink
//
// Example:
//
//	out := sink.NewCSV("result.csv", data, cfg.LabelColumn)
//	searcher, err := mindiff.NewSearcher(&cfg, data, mindiff.WithSink(out))
func NewCSV(path string, data *types.Dataset, labelColumn string) *CSV {
	return &CSV{
		path:        path,
		data:        data,
		labelColumn: labelColumn,
	}
}

// Write persists a snapshot, dropping it if a newer version was already written.
//
// Returns:
//   - error: File system or encoding failure
func (s *CSV) Write(ctx context.Context, snap types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Version <= s.lastVersion {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(snap.Labels) != s.data.Len() {
		return fmt.Errorf("snapshot has %d labels, dataset has %d items", len(snap.Labels), s.data.Len())
	}

	if err := s.writeFile(snap.Labels); err != nil {
		return err
	}

	s.lastVersion = snap.Version

	return nil
}

// writeFile renders the labeled table into a temp file and renames it over
// the target path.
func (s *CSV) writeFile(labels types.Assignment) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)

	columns := s.data.Columns()
	header := append(append([]string{}, columns...), s.labelColumn)
	if err := writer.Write(header); err != nil {
		tmp.Close()

		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(header))
	for i := 0; i < s.data.Len(); i++ {
		for c, name := range columns {
			record[c] = s.cell(name, i)
		}
		record[len(columns)] = strconv.Itoa(labels[i])

		if err := writer.Write(record); err != nil {
			tmp.Close()

			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()

		return fmt.Errorf("flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp output: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename output into place: %w", err)
	}

	return nil
}

// cell formats one dataset value; missing values render as empty cells.
func (s *CSV) cell(column string, row int) string {
	if col, ok := s.data.Numeric(column); ok {
		v := col[row]
		if math.IsNaN(v) {
			return ""
		}

		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if col, ok := s.data.Nominal(column); ok {
		return col[row]
	}

	return ""
}
