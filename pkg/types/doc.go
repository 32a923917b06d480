// Package types defines the shared types for junct: the filesystem
// interface the core operates against and the request/outcome contract
// between the relocation worker and its coordinator.
package types
