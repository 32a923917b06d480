// Package relocation implements the core of junct: a single-flight
// background worker that moves a directory's contents to a new location
// and replaces the original path with a junction, plus the coordinator
// that validates and submits requests and polls for outcomes.
//
// The worker owns one goroutine and processes requests strictly one at
// a time. The inbound task channel and outbound outcome channel are the
// only state shared with the caller. A failed step leaves the
// filesystem exactly as the failing step left it; partial completion is
// surfaced in the outcome, never repaired silently.
package relocation
