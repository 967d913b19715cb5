package sink

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m-Py/minDiff/types"
)

func sampleData(t *testing.T) *types.Dataset {
	t.Helper()

	data := types.NewDataset(4)
	require.NoError(t, data.AddNumeric("iq", []float64{10, 10, 20, 20}))
	require.NoError(t, data.AddNominal("gender", []string{"f", "m", "f", "m"}))

	return data
}

func TestCSV_Write(t *testing.T) {
	ctx := context.Background()

	t.Run("writes labeled table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")
		out := NewCSV(path, sampleData(t), "group")

		err := out.Write(ctx, types.Snapshot{
			Version: 1,
			Labels:  types.Assignment{1, 2, 2, 1},
		})
		require.NoError(t, err)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Len(t, lines, 5)
		require.Equal(t, "iq,gender,group", lines[0])
		require.Equal(t, "10,f,1", lines[1])
		require.Equal(t, "20,f,2", lines[3])
	})

	t.Run("newer version overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")
		out := NewCSV(path, sampleData(t), "group")

		require.NoError(t, out.Write(ctx, types.Snapshot{Version: 1, Labels: types.Assignment{1, 1, 2, 2}}))
		require.NoError(t, out.Write(ctx, types.Snapshot{Version: 2, Labels: types.Assignment{1, 2, 1, 2}}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(raw), "10,m,2")
	})

	t.Run("stale version is dropped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")
		out := NewCSV(path, sampleData(t), "group")

		require.NoError(t, out.Write(ctx, types.Snapshot{Version: 2, Labels: types.Assignment{1, 2, 1, 2}}))
		require.NoError(t, out.Write(ctx, types.Snapshot{Version: 1, Labels: types.Assignment{2, 1, 2, 1}}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(raw), "10,f,1", "stale snapshot must not clobber the newer one")
	})

	t.Run("missing values render as empty cells", func(t *testing.T) {
		data := types.NewDataset(2)
		require.NoError(t, data.AddNumeric("iq", []float64{95, math.NaN()}))

		path := filepath.Join(t.TempDir(), "result.csv")
		out := NewCSV(path, data, "group")

		require.NoError(t, out.Write(ctx, types.Snapshot{Version: 1, Labels: types.Assignment{1, 2}}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(raw), "\n,2")
	})

	t.Run("label count mismatch is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")
		out := NewCSV(path, sampleData(t), "group")

		err := out.Write(ctx, types.Snapshot{Version: 1, Labels: types.Assignment{1, 2}})
		require.Error(t, err)
	})
}
