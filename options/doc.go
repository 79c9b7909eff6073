// Package options models the per-type and per-pair mapping directives:
// wildcard inference, stop-on-errors, null and empty-string propagation and
// the date format handed to the copier.
//
// Boolean options are tri-state (see Value) so that an option left
// unspecified on one side of a pair can defer to the other side, and
// ultimately to the global configuration. Reconcile merges the bundles found
// on the two types of a pair.
package options
