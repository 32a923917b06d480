// Package filesystem provides filesystem implementations for junct.
//
// This package contains the OS implementation of the types.FS interface
// and the recursive directory-move primitive used by the relocation
// worker.
package filesystem
