package relocation

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/junct/pkg/errors"
	"github.com/arthur-debert/junct/pkg/filesystem"
	"github.com/arthur-debert/junct/pkg/junction"
	"github.com/arthur-debert/junct/pkg/logging"
	"github.com/arthur-debert/junct/pkg/types"
	"github.com/rs/zerolog"
)

// Default channel capacities. The result buffer must be large enough
// that publishing an outcome never blocks the worker, since nothing
// drains it except the coordinator's poll.
const (
	DefaultQueueSize    = 1
	DefaultResultBuffer = 16
)

// WorkerOptions contains configuration for the relocation worker
type WorkerOptions struct {
	// FS is the filesystem operations interface, for testing
	FS types.FS

	// Linker creates the junction; defaults to the platform linker
	Linker junction.Linker

	// Logger for worker activity; nil means the package default
	Logger *zerolog.Logger

	// QueueSize is the inbound task channel capacity
	QueueSize int

	// ResultBuffer is the outbound outcome channel capacity
	ResultBuffer int
}

// Worker executes relocations one at a time on a dedicated goroutine,
// so the submitting side is never blocked by filesystem I/O. Requests
// arrive on the task channel and outcomes are published on the result
// channel, exactly one per accepted request.
type Worker struct {
	fs     types.FS
	linker junction.Linker
	logger zerolog.Logger

	tasks   chan types.RelocationRequest
	results chan types.RelocationOutcome

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	state atomic.Int32
}

// NewWorker creates a new worker instance
func NewWorker(opts WorkerOptions) *Worker {
	logger := logging.GetLogger("relocation.worker")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	linker := opts.Linker
	if linker == nil {
		linker = junction.NewLinker(fsys, junction.ModeAuto)
	}

	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	resultBuffer := opts.ResultBuffer
	if resultBuffer <= 0 {
		resultBuffer = DefaultResultBuffer
	}

	return &Worker{
		fs:      fsys,
		linker:  linker,
		logger:  logger,
		tasks:   make(chan types.RelocationRequest, queueSize),
		results: make(chan types.RelocationOutcome, resultBuffer),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the processing loop on its own goroutine. It must be
// called exactly once.
func (w *Worker) Start() {
	go w.processLoop()
}

// Tasks returns the inbound request channel
func (w *Worker) Tasks() chan<- types.RelocationRequest {
	return w.tasks
}

// Results returns the outbound outcome channel
func (w *Worker) Results() <-chan types.RelocationOutcome {
	return w.results
}

// State returns the worker's current lifecycle state
func (w *Worker) State() types.WorkerState {
	return types.WorkerState(w.state.Load())
}

// RequestStop asks the processing loop to exit after its current
// iteration. It is idempotent and does not interrupt an in-progress
// relocation.
func (w *Worker) RequestStop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
}

// AwaitStop blocks until the processing loop has exited
func (w *Worker) AwaitStop() {
	<-w.done
}

// Stop requests a stop and waits for the loop to exit
func (w *Worker) Stop() {
	w.RequestStop()
	w.AwaitStop()
}

// processLoop consumes requests until a stop is requested. The stop
// channel is observed only between tasks, never mid-sequence.
func (w *Worker) processLoop() {
	defer close(w.done)

	w.logger.Debug().Msg("Worker loop started")

	for {
		select {
		case <-w.stop:
			w.logger.Debug().Msg("Worker loop exiting")
			return
		case req := <-w.tasks:
			w.state.Store(int32(types.StateRunning))
			outcome := w.process(req)
			w.results <- outcome
			w.state.Store(int32(types.StateIdle))
		}
	}
}

// process runs the three-step sequence for one request. Step failures
// become data on the outcome; they never kill the loop, and completed
// steps are not rolled back.
func (w *Worker) process(req types.RelocationRequest) types.RelocationOutcome {
	logger := w.logger.With().
		Str("source", req.Source).
		Str("target", req.Target).
		Logger()

	finish := logging.LogOperationStart(logger, "relocate")
	defer finish()

	step, err := w.runSteps(req, logger)
	if err != nil {
		logger.Error().Err(err).Str("step", string(step)).Msg("Relocation failed")
		return types.RelocationOutcome{
			Source: req.Source,
			Target: req.Target,
			Step:   step,
			Err:    err,
		}
	}

	logger.Info().Msg("Relocation completed")
	return types.RelocationOutcome{Source: req.Source, Target: req.Target}
}

func (w *Worker) runSteps(req types.RelocationRequest, logger zerolog.Logger) (types.Step, error) {
	// Step 1: clear a pre-existing target. The removal is deliberately
	// non-recursive: a non-empty target fails here even if validation
	// was bypassed.
	if _, err := w.fs.Lstat(req.Target); err == nil {
		logger.Debug().Msg("Removing existing target")
		if err := w.fs.Remove(req.Target); err != nil {
			return types.StepClearTarget, errors.Wrapf(err, errors.ErrClearTarget,
				"removing existing target %s", req.Target).
				WithDetail("source", req.Source).
				WithDetail("target", req.Target)
		}
	} else if !os.IsNotExist(err) {
		return types.StepClearTarget, errors.Wrapf(err, errors.ErrClearTarget,
			"checking target %s", req.Target).
			WithDetail("source", req.Source).
			WithDetail("target", req.Target)
	}

	// Step 2: move the source directory onto the target
	logger.Debug().Msg("Moving directory contents")
	if err := filesystem.MoveDir(w.fs, req.Source, req.Target); err != nil {
		return types.StepMoveContents, errors.Wrapf(err, errors.ErrMoveContents,
			"moving %s to %s", req.Source, req.Target).
			WithDetail("source", req.Source).
			WithDetail("target", req.Target)
	}

	// Step 3: create the junction where the source used to be
	logger.Debug().Msg("Creating junction")
	if err := w.linker.CreateLink(req.Source, req.Target); err != nil {
		return types.StepCreateLink, errors.Wrapf(err, errors.ErrCreateLink,
			"creating junction %s -> %s", req.Source, req.Target).
			WithDetail("source", req.Source).
			WithDetail("target", req.Target)
	}

	return "", nil
}
