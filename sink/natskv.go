package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/m-Py/minDiff/internal/kvutil"
	"github.com/m-Py/minDiff/internal/logger"
	"github.com/m-Py/minDiff/types"
)

// NATSKV publishes assignment snapshots to a NATS JetStream KeyValue bucket.
//
// Each Write overwrites one key, so the bucket always holds the latest best
// assignment and (with History > 1) its recent predecessors. Snapshot
// versions are checked before publishing: the Searcher writes asynchronously
// and a stale snapshot arriving late must not clobber a newer one.
type NATSKV struct {
	kv  jetstream.KeyValue
	key string

	mu          sync.Mutex
	lastVersion int64

	logger types.Logger
}

var _ types.Sink = (*NATSKV)(nil)

// NATSKVOption configures a NATSKV sink.
type NATSKVOption func(*NATSKV)

// WithLogger sets the sink's logger (default: no-op).
func WithLogger(log types.Logger) NATSKVOption {
	return func(s *NATSKV) {
		s.logger = log
	}
}

// NewNATSKV creates a new KV-backed sink writing snapshots under the given key.
//
// Parameters:
//   - kv: JetStream KV bucket (see OpenBucket)
//   - key: KV key to write snapshots to (e.g. "experiment-12")
//   - opts: Optional configuration (logger)
//
// Returns:
//   - *NATSKV: Initialized sink
//
// Example:
//
//	kv, err := sink.OpenBucket(ctx, nc, "assignments")
//	if err != nil { /* handle */ }
//	searcher, err := mindiff.NewSearcher(&cfg, data,
//	    mindiff.WithSink(sink.NewNATSKV(kv, "experiment-12")))
func NewNATSKV(kv jetstream.KeyValue, key string, opts ...NATSKVOption) *NATSKV {
	s := &NATSKV{
		kv:     kv,
		key:    key,
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// OpenBucket creates or opens the snapshot KV bucket.
//
// Several search processes may share a bucket, so creation races are
// handled with retries.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - nc: NATS connection
//   - bucket: Bucket name
//
// Returns:
//   - jetstream.KeyValue: The KV bucket instance
//   - error: Any error after retries
func OpenBucket(ctx context.Context, nc *nats.Conn, bucket string) (jetstream.KeyValue, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	return kvutil.EnsureKVBucketWithRetry(ctx, js, jetstream.KeyValueConfig{
		Bucket:  bucket,
		History: 10,
	}, 3)
}

// Write publishes a snapshot, dropping it if a newer version was already written.
//
// Returns:
//   - error: Marshal or KV operation failure
func (s *NATSKV) Write(ctx context.Context, snap types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Version <= s.lastVersion {
		s.logger.Debug("dropping stale snapshot",
			"version", snap.Version,
			"lastVersion", s.lastVersion,
		)

		return nil
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if _, err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("publish snapshot to %s: %w", s.key, err)
	}

	s.lastVersion = snap.Version
	s.logger.Debug("snapshot published",
		"key", s.key,
		"version", snap.Version,
		"score", snap.Score,
	)

	return nil
}

// Latest reads back the most recent snapshot under the sink's key.
//
// Useful for resuming a search: feed the returned labels to
// mindiff.WithPriorAssignment.
//
// Returns:
//   - types.Snapshot: The stored snapshot
//   - bool: false if no snapshot exists yet
//   - error: KV or unmarshal failure
func (s *NATSKV) Latest(ctx context.Context) (types.Snapshot, bool, error) {
	entry, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return types.Snapshot{}, false, nil
		}

		return types.Snapshot{}, false, fmt.Errorf("read snapshot %s: %w", s.key, err)
	}

	var snap types.Snapshot
	if err := json.Unmarshal(entry.Value(), &snap); err != nil {
		return types.Snapshot{}, false, fmt.Errorf("unmarshal snapshot %s: %w", s.key, err)
	}

	return snap, true, nil
}
