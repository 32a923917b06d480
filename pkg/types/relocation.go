package types

import "fmt"

// Step identifies one stage of the worker's move-then-link sequence.
type Step string

const (
	// StepClearTarget removes a pre-existing empty target directory
	StepClearTarget Step = "clear-target"

	// StepMoveContents moves the source directory onto the target
	StepMoveContents Step = "move-contents"

	// StepCreateLink creates the junction at the old source location
	StepCreateLink Step = "create-link"
)

// RelocationRequest describes one directory relocation. Source is the
// directory whose contents are moved and whose path is reused for the
// junction; Target is the location that receives the contents.
//
// Requests are constructed only by the coordinator after validation,
// and are owned by the worker while being processed.
type RelocationRequest struct {
	Source string
	Target string
}

// RelocationOutcome is the result of one accepted request, produced
// exactly once by the worker. A nil Err means the relocation succeeded;
// otherwise Step names the stage that failed.
type RelocationOutcome struct {
	Source string
	Target string
	Step   Step
	Err    error
}

// Failed reports whether the relocation failed
func (o RelocationOutcome) Failed() bool {
	return o.Err != nil
}

// String returns a short human-readable description of the outcome
func (o RelocationOutcome) String() string {
	if o.Failed() {
		return fmt.Sprintf("relocation %s -> %s failed at %s: %v", o.Source, o.Target, o.Step, o.Err)
	}
	return fmt.Sprintf("relocation %s -> %s succeeded", o.Source, o.Target)
}

// WorkerState is the lifecycle state of the relocation worker
type WorkerState int32

const (
	// StateIdle means the worker is waiting for a request
	StateIdle WorkerState = iota

	// StateRunning means a request is being processed
	StateRunning
)

// String returns the state name
func (s WorkerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
