package relocation

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/junct/pkg/errors"
	"github.com/arthur-debert/junct/pkg/filesystem"
	"github.com/arthur-debert/junct/pkg/logging"
	"github.com/arthur-debert/junct/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultPollInterval is how often WaitOutcome re-checks the result
// channel
const DefaultPollInterval = 100 * time.Millisecond

// CoordinatorOptions contains configuration for the coordinator
type CoordinatorOptions struct {
	// FS is the filesystem used for validation checks, for testing
	FS types.FS

	// Logger for coordinator activity; nil means the package default
	Logger *zerolog.Logger

	// PollInterval between WaitOutcome checks
	PollInterval time.Duration
}

// Coordinator is the boundary callers talk to. It gates submissions on
// precondition checks, enforces single-flight semantics, and delivers
// outcomes without ever blocking the caller's control flow.
type Coordinator struct {
	worker       *Worker
	fs           types.FS
	logger       zerolog.Logger
	pollInterval time.Duration

	inFlight atomic.Bool
}

// NewCoordinator creates a coordinator in front of the given worker
func NewCoordinator(worker *Worker, opts CoordinatorOptions) *Coordinator {
	logger := logging.GetLogger("relocation.coordinator")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Coordinator{
		worker:       worker,
		fs:           fsys,
		logger:       logger,
		pollInterval: pollInterval,
	}
}

// Validate runs the precondition checks for a relocation, in order,
// short-circuiting on the first failure. It has no side effects;
// calling it twice against an unchanged filesystem yields the same
// result both times.
func (c *Coordinator) Validate(source, target string) error {
	// a. source must exist and be a directory
	info, err := c.fs.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotADirectory,
				"%s does not exist or is not a directory", source).
				WithDetail("path", source)
		}
		return errors.Wrapf(err, errors.ErrIO, "checking source %s", source)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "%s is not a directory", source).
			WithDetail("path", source)
	}

	// b. target, if present, must be a directory
	targetInfo, err := c.fs.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing at the target; the move creates it
			return nil
		}
		return errors.Wrapf(err, errors.ErrIO, "checking target %s", target)
	}
	if !targetInfo.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "%s is not a directory", target).
			WithDetail("path", target)
	}

	// c. source and target must not be the same filesystem entry
	same, err := c.fs.SameFile(source, target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "comparing %s and %s", source, target)
	}
	if same {
		return errors.Newf(errors.ErrSamePath,
			"%s and %s are the same directory", source, target)
	}

	// d. an existing target must be empty
	entries, err := c.fs.ReadDir(target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "listing target %s", target)
	}
	if len(entries) > 0 {
		return errors.Newf(errors.ErrTargetNotEmpty, "%s is not empty", target).
			WithDetail("path", target).
			WithDetail("entries", len(entries))
	}

	return nil
}

// ValidateAndSubmit validates the paths and, if all preconditions pass,
// hands a request to the worker. At most one request may be in flight;
// overlapping submissions are rejected.
func (c *Coordinator) ValidateAndSubmit(source, target string) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return errors.New(errors.ErrRelocationBusy, "a relocation is already in progress")
	}

	if err := c.Validate(source, target); err != nil {
		c.inFlight.Store(false)
		c.logger.Debug().Err(err).Msg("Validation rejected submission")
		return err
	}

	c.worker.Tasks() <- types.RelocationRequest{Source: source, Target: target}

	c.logger.Info().
		Str("source", source).
		Str("target", target).
		Msg("Relocation submitted")

	return nil
}

// PollOutcome is a non-blocking check of the result channel. The second
// return value is false while no outcome is ready. A delivered outcome
// ends the in-flight state.
func (c *Coordinator) PollOutcome() (types.RelocationOutcome, bool) {
	select {
	case outcome := <-c.worker.Results():
		c.inFlight.Store(false)
		return outcome, true
	default:
		return types.RelocationOutcome{}, false
	}
}

// WaitOutcome polls at the configured interval until an outcome is
// delivered or ctx is done. The wait happens on the caller's goroutine;
// the worker is never blocked by it.
func (c *Coordinator) WaitOutcome(ctx context.Context) (types.RelocationOutcome, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		if outcome, ok := c.PollOutcome(); ok {
			return outcome, nil
		}

		select {
		case <-ctx.Done():
			return types.RelocationOutcome{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Shutdown stops the worker and waits for its loop to exit. Safe to
// call while the worker is idle.
func (c *Coordinator) Shutdown() {
	c.logger.Debug().Msg("Shutting down worker")
	c.worker.RequestStop()
	c.worker.AwaitStop()
}
