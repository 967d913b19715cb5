// Package testing provides test utilities for the minDiff library.
//
// This package offers helpers for setting up test environments: sample
// datasets for assignment searches and embedded NATS servers for sink
// integration testing. It follows Go's convention of providing testing
// utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - SampleDataset: Small dataset with numeric and categorical columns
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//
// Example usage:
//
//	import (
//	    "testing"
//	    minditest "github.com/m-Py/minDiff/testing"
//	)
//
//	func TestKVSink(t *testing.T) {
//	    _, nc := minditest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
