// Package testutil provides test helpers: an error-injecting wrapper
// around types.FS and filesystem assertions for relocation results.
package testutil
