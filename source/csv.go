package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/m-Py/minDiff/types"
)

// CSV implements a dataset source reading a delimited text file.
//
// The first record is the header. Column types are inferred: a column whose
// every non-empty cell parses as a float becomes numeric, any other column
// becomes categorical. Empty cells are missing values (NaN for numeric
// columns, "" for categorical ones).
type CSV struct {
	path  string
	comma rune
}

var _ types.DatasetSource = (*CSV)(nil)

// CSVOption configures a CSV source.
type CSVOption func(*CSV)

// WithComma sets the field delimiter (default ',').
func WithComma(comma rune) CSVOption {
	return func(c *CSV) {
		c.comma = comma
	}
}

// NewCSV creates a new CSV dataset source.
//
// Parameters:
//   - path: Path to the delimited file
//   - opts: Optional configuration (delimiter)
//
// Returns:
//   - *CSV: Initialized CSV source
//
// Example:
//
//	src := source.NewCSV("students.csv")
//	data, err := src.Load(ctx)
func NewCSV(path string, opts ...CSVOption) *CSV {
	c := &CSV{path: path, comma: ','}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load reads and parses the file into a dataset.
//
// Returns:
//   - *types.Dataset: Dataset with one column per header field
//   - error: File, parse or shape error
func (c *CSV) Load(ctx context.Context) (*types.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open csv source: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = c.comma
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv source %s: %w", c.path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv source %s: need a header and at least one row", c.path)
	}

	header := records[0]
	rows := records[1:]

	return buildDataset(header, rows)
}

// buildDataset infers column types and assembles the dataset.
func buildDataset(header []string, rows [][]string) (*types.Dataset, error) {
	data := types.NewDataset(len(rows))

	for col, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty header", col)
		}

		cells := make([]string, len(rows))
		for i, row := range rows {
			if col >= len(row) {
				return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(header))
			}
			cells[i] = strings.TrimSpace(row[col])
		}

		if numeric, ok := parseNumericColumn(cells); ok {
			if err := data.AddNumeric(name, numeric); err != nil {
				return nil, err
			}

			continue
		}

		if err := data.AddNominal(name, cells); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// parseNumericColumn attempts to parse every non-empty cell as a float.
// An all-empty column is not numeric: without a single parseable value
// there is no evidence for the numeric interpretation.
func parseNumericColumn(cells []string) ([]float64, bool) {
	values := make([]float64, len(cells))
	parsed := false

	for i, cell := range cells {
		if cell == "" {
			values[i] = math.NaN()

			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
		parsed = true
	}

	return values, parsed
}
