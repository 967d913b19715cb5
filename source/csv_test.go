package source

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCSV_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("infers numeric and categorical columns", func(t *testing.T) {
		path := writeTempFile(t, "students.csv",
			"iq,gender\n95,f\n118.5,m\n102,f\n87,m\n")

		data, err := NewCSV(path).Load(ctx)
		require.NoError(t, err)
		require.Equal(t, 4, data.Len())

		iq, ok := data.Numeric("iq")
		require.True(t, ok)
		require.Equal(t, []float64{95, 118.5, 102, 87}, iq)

		gender, ok := data.Nominal("gender")
		require.True(t, ok)
		require.Equal(t, []string{"f", "m", "f", "m"}, gender)
	})

	t.Run("empty cells become missing values", func(t *testing.T) {
		path := writeTempFile(t, "missing.csv",
			"iq,gender\n95,f\n,m\n102,\n")

		data, err := NewCSV(path).Load(ctx)
		require.NoError(t, err)

		iq, _ := data.Numeric("iq")
		require.True(t, math.IsNaN(iq[1]))
		require.Equal(t, 1, data.MissingCount("iq"))
		require.Equal(t, 1, data.MissingCount("gender"))
	})

	t.Run("mixed column falls back to categorical", func(t *testing.T) {
		path := writeTempFile(t, "mixed.csv",
			"code\n12\nA7\n9\n")

		data, err := NewCSV(path).Load(ctx)
		require.NoError(t, err)

		_, isNumeric := data.Numeric("code")
		require.False(t, isNumeric)
		code, ok := data.Nominal("code")
		require.True(t, ok)
		require.Equal(t, []string{"12", "A7", "9"}, code)
	})

	t.Run("custom delimiter", func(t *testing.T) {
		path := writeTempFile(t, "semicolon.csv",
			"iq;gender\n95;f\n118;m\n")

		data, err := NewCSV(path, WithComma(';')).Load(ctx)
		require.NoError(t, err)

		iq, ok := data.Numeric("iq")
		require.True(t, ok)
		require.Equal(t, []float64{95, 118}, iq)
	})

	t.Run("header only is an error", func(t *testing.T) {
		path := writeTempFile(t, "empty.csv", "iq,gender\n")

		_, err := NewCSV(path).Load(ctx)
		require.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := NewCSV(filepath.Join(t.TempDir(), "nope.csv")).Load(ctx)
		require.Error(t, err)
	})

	t.Run("canceled context is an error", func(t *testing.T) {
		path := writeTempFile(t, "students.csv", "iq\n95\n")
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewCSV(path).Load(canceled)
		require.ErrorIs(t, err, context.Canceled)
	})
}
