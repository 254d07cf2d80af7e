package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/Ivan-Ayub97/Metagify/internal/model"
)

// ErrBusy is returned when a batch is started while another is running.
var ErrBusy = errors.New("engine: a batch is already running")

// Job is a unit of work executed by the Dispatcher. A job returns its
// report and, for operations with preconditions, a top-level error that
// is distinct from the per-file errors inside the report.
type Job func(ctx context.Context) (model.Report, error)

// Dispatcher serializes batch execution: at most one job runs at a time,
// and further submissions are rejected with ErrBusy until it completes.
// Stop cancels the running job cooperatively; the job observes the
// cancellation at its next file boundary.
type Dispatcher struct {
	mu     sync.Mutex
	busy   bool
	cancel context.CancelFunc
}

// NewDispatcher creates an idle Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Busy reports whether a job is currently running.
func (d *Dispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

// Submit starts job on its own goroutine and invokes done with its
// outcome when it finishes. Returns ErrBusy if a job is already in
// flight.
func (d *Dispatcher) Submit(ctx context.Context, job Job, done func(model.Report, error)) error {
	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return ErrBusy
	}
	jobCtx, cancel := context.WithCancel(ctx)
	d.busy = true
	d.cancel = cancel
	d.mu.Unlock()

	go func() {
		report, err := job(jobCtx)

		d.mu.Lock()
		d.busy = false
		d.cancel = nil
		d.mu.Unlock()
		cancel()

		if done != nil {
			done(report, err)
		}
	}()

	return nil
}

// Stop requests cancellation of the running job, if any. The job keeps
// running until it reaches its next file boundary.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
}
