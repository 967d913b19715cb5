package source

import (
	"context"
	"testing"

	"github.com/m-Py/minDiff/types"
	"github.com/stretchr/testify/require"
)

func TestStatic_Load(t *testing.T) {
	t.Run("returns the wrapped dataset", func(t *testing.T) {
		data := types.NewDataset(3)
		require.NoError(t, data.AddNumeric("iq", []float64{100, 110, 120}))
		src := NewStatic(data)

		loaded, err := src.Load(context.Background())

		require.NoError(t, err)
		require.Same(t, data, loaded)
	})

	t.Run("update replaces the dataset", func(t *testing.T) {
		first := types.NewDataset(2)
		require.NoError(t, first.AddNumeric("iq", []float64{100, 110}))
		src := NewStatic(first)

		second := types.NewDataset(4)
		require.NoError(t, second.AddNumeric("iq", []float64{90, 95, 105, 120}))
		src.Update(second)

		loaded, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Same(t, second, loaded)
		require.Equal(t, 4, loaded.Len())
	})
}
