package types

import (
	"fmt"
	"math"
)

// Dataset is a columnar table of items: rows are items, columns are named
// attributes. Numeric columns hold continuous measurements (NaN marks a
// missing value), nominal columns hold categorical values (the empty string
// marks a missing value).
//
// Ownership: the dataset is owned by the caller. The search engine only
// reads attribute values and never mutates them. Column slices returned by
// accessors are the backing storage and must be treated as read-only.
type Dataset struct {
	n       int
	order   []string
	numeric map[string][]float64
	nominal map[string][]string
}

// NewDataset creates an empty dataset with capacity for n items per column.
//
// Parameters:
//   - n: Number of items (rows); every column added later must have this length
//
// Returns:
//   - *Dataset: Empty dataset ready for AddNumeric/AddNominal calls
func NewDataset(n int) *Dataset {
	return &Dataset{
		n:       n,
		numeric: make(map[string][]float64),
		nominal: make(map[string][]string),
	}
}

// Len returns the number of items in the dataset.
func (d *Dataset) Len() int {
	return d.n
}

// AddNumeric adds a continuous attribute column. Use math.NaN() for missing
// values.
//
// Parameters:
//   - name: Column name (must be unique across both column kinds)
//   - values: One value per item
//
// Returns:
//   - error: Length mismatch or duplicate column name
func (d *Dataset) AddNumeric(name string, values []float64) error {
	if len(values) != d.n {
		return fmt.Errorf("column %q has %d values, dataset has %d items", name, len(values), d.n)
	}
	if d.HasColumn(name) {
		return fmt.Errorf("column %q already exists", name)
	}
	d.numeric[name] = values
	d.order = append(d.order, name)

	return nil
}

// AddNominal adds a categorical attribute column. Use the empty string for
// missing values.
//
// Parameters:
//   - name: Column name (must be unique across both column kinds)
//   - values: One category value per item
//
// Returns:
//   - error: Length mismatch or duplicate column name
func (d *Dataset) AddNominal(name string, values []string) error {
	if len(values) != d.n {
		return fmt.Errorf("column %q has %d values, dataset has %d items", name, len(values), d.n)
	}
	if d.HasColumn(name) {
		return fmt.Errorf("column %q already exists", name)
	}
	d.nominal[name] = values
	d.order = append(d.order, name)

	return nil
}

// Numeric returns the values of a continuous column.
//
// Returns:
//   - []float64: Backing slice of the column (read-only)
//   - bool: false if no numeric column with that name exists
func (d *Dataset) Numeric(name string) ([]float64, bool) {
	col, ok := d.numeric[name]

	return col, ok
}

// Nominal returns the values of a categorical column.
//
// Returns:
//   - []string: Backing slice of the column (read-only)
//   - bool: false if no nominal column with that name exists
func (d *Dataset) Nominal(name string) ([]string, bool) {
	col, ok := d.nominal[name]

	return col, ok
}

// HasColumn reports whether a column of either kind exists.
func (d *Dataset) HasColumn(name string) bool {
	if _, ok := d.numeric[name]; ok {
		return true
	}
	_, ok := d.nominal[name]

	return ok
}

// Columns returns the column names in insertion order.
//
// Returns:
//   - []string: Copy of the ordered column name list
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.order))
	copy(cols, d.order)

	return cols
}

// MissingCount returns the number of missing values in the named column
// (NaN for numeric columns, "" for nominal columns). Returns 0 for unknown
// columns.
func (d *Dataset) MissingCount(name string) int {
	missing := 0
	if col, ok := d.numeric[name]; ok {
		for _, v := range col {
			if math.IsNaN(v) {
				missing++
			}
		}

		return missing
	}
	if col, ok := d.nominal[name]; ok {
		for _, v := range col {
			if v == "" {
				missing++
			}
		}
	}

	return missing
}

// WithLabels returns a copy of the dataset augmented with a numeric column
// holding the given group labels. Existing columns share backing storage
// with the receiver; only the label column is newly allocated.
//
// Parameters:
//   - column: Name of the label column to add (e.g., "group")
//   - labels: One group label per item
//
// Returns:
//   - *Dataset: Augmented dataset
//   - error: Length mismatch or column name collision
func (d *Dataset) WithLabels(column string, labels Assignment) (*Dataset, error) {
	out := &Dataset{
		n:       d.n,
		order:   make([]string, len(d.order)),
		numeric: make(map[string][]float64, len(d.numeric)+1),
		nominal: make(map[string][]string, len(d.nominal)),
	}
	copy(out.order, d.order)
	for name, col := range d.numeric {
		out.numeric[name] = col
	}
	for name, col := range d.nominal {
		out.nominal[name] = col
	}

	vals := make([]float64, len(labels))
	for i, label := range labels {
		vals[i] = float64(label)
	}

	if err := out.AddNumeric(column, vals); err != nil {
		return nil, err
	}

	return out, nil
}
