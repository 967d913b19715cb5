package sink

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	minditest "github.com/m-Py/minDiff/testing"
	"github.com/m-Py/minDiff/types"
)

func TestNATSKV_Write(t *testing.T) {
	ctx := context.Background()
	_, nc := minditest.StartEmbeddedNATS(t)
	kv := minditest.CreateJetStreamKV(t, nc, "assignments")

	t.Run("publishes snapshot", func(t *testing.T) {
		s := NewNATSKV(kv, "run-1")

		labels := types.Assignment{1, 2, 2, 1}
		err := s.Write(ctx, types.Snapshot{
			Version:     1,
			Iteration:   42,
			Score:       0.017,
			Labels:      labels,
			Fingerprint: labels.Fingerprint(),
		})
		require.NoError(t, err)

		entry, err := kv.Get(ctx, "run-1")
		require.NoError(t, err)

		var got types.Snapshot
		require.NoError(t, json.Unmarshal(entry.Value(), &got))
		require.Equal(t, int64(1), got.Version)
		require.Equal(t, labels, got.Labels)
		require.Equal(t, labels.Fingerprint(), got.Fingerprint)
	})

	t.Run("stale version is dropped", func(t *testing.T) {
		s := NewNATSKV(kv, "run-2")

		require.NoError(t, s.Write(ctx, types.Snapshot{Version: 2, Labels: types.Assignment{1, 2}}))
		require.NoError(t, s.Write(ctx, types.Snapshot{Version: 1, Labels: types.Assignment{2, 1}}))

		entry, err := kv.Get(ctx, "run-2")
		require.NoError(t, err)

		var got types.Snapshot
		require.NoError(t, json.Unmarshal(entry.Value(), &got))
		require.Equal(t, int64(2), got.Version)
	})
}

func TestNATSKV_Latest(t *testing.T) {
	ctx := context.Background()
	_, nc := minditest.StartEmbeddedNATS(t)
	kv := minditest.CreateJetStreamKV(t, nc, "assignments")

	t.Run("no snapshot yet", func(t *testing.T) {
		s := NewNATSKV(kv, "fresh")

		_, found, err := s.Latest(ctx)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("round-trips for resume", func(t *testing.T) {
		s := NewNATSKV(kv, "resume")

		want := types.Snapshot{
			Version:   3,
			Iteration: 500,
			Score:     0.004,
			Labels:    types.Assignment{1, 1, 2, 2, 3, 3},
		}
		require.NoError(t, s.Write(ctx, want))

		got, found, err := s.Latest(ctx)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, want.Version, got.Version)
		require.Equal(t, want.Labels, got.Labels)
	})
}

func TestOpenBucket(t *testing.T) {
	ctx := context.Background()
	_, nc := minditest.StartEmbeddedNATS(t)

	kv, err := OpenBucket(ctx, nc, "snapshots")
	require.NoError(t, err)
	require.NotNil(t, kv)

	// Opening again must return the existing bucket
	kv2, err := OpenBucket(ctx, nc, "snapshots")
	require.NoError(t, err)
	require.NotNil(t, kv2)
}
