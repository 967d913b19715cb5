// Package source provides built-in dataset source implementations.
//
// Dataset sources load the items to be partitioned into groups.
// The package includes:
//
//   - Static: Wraps an already constructed dataset
//   - CSV: Loads a delimited file with numeric/categorical type inference
//   - JSON: Loads an array of JSON objects
//
// Custom sources can be implemented by satisfying the types.DatasetSource interface.
package source
