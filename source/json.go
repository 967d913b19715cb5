package source

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/m-Py/minDiff/types"
	"github.com/tidwall/gjson"
)

// JSON implements a dataset source reading an array of JSON objects.
//
// Each array element is one item; object keys become columns. Number
// values produce numeric columns, string values categorical ones. A null
// or absent value is a missing value. The first element fixes the column
// set and order; a later element with a conflicting value type for a
// column is an error.
type JSON struct {
	path      string
	arrayPath string
}

var _ types.DatasetSource = (*JSON)(nil)

// JSONOption configures a JSON source.
type JSONOption func(*JSON)

// WithArrayPath selects the item array within the document using gjson
// path syntax (e.g. "results.items"). Default: the document root.
func WithArrayPath(path string) JSONOption {
	return func(j *JSON) {
		j.arrayPath = path
	}
}

// NewJSON creates a new JSON dataset source.
//
// Parameters:
//   - path: Path to the JSON file
//   - opts: Optional configuration (array path)
//
// Returns:
//   - *JSON: Initialized JSON source
//
// Example:
//
//	src := source.NewJSON("students.json", source.WithArrayPath("data.students"))
//	data, err := src.Load(ctx)
func NewJSON(path string, opts ...JSONOption) *JSON {
	j := &JSON{path: path}
	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Load reads and parses the file into a dataset.
//
// Returns:
//   - *types.Dataset: Dataset with one column per object key
//   - error: File, parse or shape error
func (j *JSON) Load(ctx context.Context) (*types.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(j.path)
	if err != nil {
		return nil, fmt.Errorf("open json source: %w", err)
	}

	doc := gjson.ParseBytes(raw)
	if j.arrayPath != "" {
		doc = doc.Get(j.arrayPath)
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("json source %s: expected an array of objects", j.path)
	}

	items := doc.Array()
	if len(items) == 0 {
		return nil, fmt.Errorf("json source %s: item array is empty", j.path)
	}

	columns := columnOrder(items[0])
	if len(columns) == 0 {
		return nil, fmt.Errorf("json source %s: first item has no keys", j.path)
	}

	data := types.NewDataset(len(items))
	for _, name := range columns {
		if err := addJSONColumn(data, items, name); err != nil {
			return nil, fmt.Errorf("json source %s: %w", j.path, err)
		}
	}

	return data, nil
}

// columnOrder returns the first item's keys in document order.
func columnOrder(item gjson.Result) []string {
	var columns []string
	item.ForEach(func(key, _ gjson.Result) bool {
		columns = append(columns, key.String())

		return true
	})

	return columns
}

// addJSONColumn determines the column's kind from its first present value
// and extracts one value per item.
func addJSONColumn(data *types.Dataset, items []gjson.Result, name string) error {
	kind := gjson.Null
	for _, item := range items {
		v := item.Get(name)
		if v.Exists() && v.Type != gjson.Null {
			kind = v.Type

			break
		}
	}

	switch kind {
	case gjson.Number:
		values := make([]float64, len(items))
		for i, item := range items {
			v := item.Get(name)
			switch {
			case !v.Exists() || v.Type == gjson.Null:
				values[i] = math.NaN()
			case v.Type == gjson.Number:
				values[i] = v.Float()
			default:
				return fmt.Errorf("column %q: item %d is %s, expected number", name, i, v.Type)
			}
		}

		return data.AddNumeric(name, values)
	case gjson.String, gjson.True, gjson.False:
		values := make([]string, len(items))
		for i, item := range items {
			v := item.Get(name)
			switch {
			case !v.Exists() || v.Type == gjson.Null:
				values[i] = ""
			case v.Type == gjson.Number:
				return fmt.Errorf("column %q: item %d is Number, expected string", name, i)
			default:
				values[i] = v.String()
			}
		}

		return data.AddNominal(name, values)
	default:
		return fmt.Errorf("column %q has no usable values", name)
	}
}
