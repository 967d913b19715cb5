// Package sink provides built-in persistence sink implementations.
//
// Sinks receive a snapshot every time the search adopts a strictly better
// assignment, so a long run can be resumed or observed from outside the
// process. The package includes:
//
//   - CSV: Writes the dataset with a group label column to a local file
//   - NATSKV: Publishes snapshots to a NATS JetStream KeyValue bucket
//
// Custom sinks can be implemented by satisfying the types.Sink interface.
// Sink failures never abort a search; the Searcher logs them and continues.
package sink
