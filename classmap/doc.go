// Package classmap holds the data model produced by resolution: field
// descriptors, correspondences, class descriptors, class maps and the
// per-pair registry.
//
// Options resolve in layers. A class map consults its destination class
// (null and empty-string handling), then its own options, then the global
// Configuration.
package classmap
