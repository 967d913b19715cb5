// Package types contains the shared types and interfaces of the minDiff
// library.
//
// It exists as a separate package so that internal packages can depend on
// these definitions without importing the root mindiff package, which would
// create an import cycle. The root package re-exports the public subset via
// type aliases, so users normally write mindiff.Dataset, mindiff.Logger,
// etc. and never import this package directly.
package types
