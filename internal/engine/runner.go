package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ledgersim-dev/ledgersim/internal/economy"
	"github.com/ledgersim-dev/ledgersim/internal/period"
)

// ErrRunInProgress is returned by Start while a run is still active. Ledger
// state is single-writer; concurrent runs against one economy are rejected,
// not queued.
var ErrRunInProgress = errors.New("simulation run already in progress")

// RunSpec describes one multi-period run.
type RunSpec struct {
	Periods         int
	RequiredReserve float64 // credit-mode policy input
	AnnualSurplus   float64 // fiat-mode policy input
}

// Runner dispatches multi-period runs to a background goroutine so callers
// stay responsive, while guaranteeing at most one active run per economy.
// Cancellation is cooperative: the context is checked between periods.
type Runner struct {
	engine *Engine
	log    *slog.Logger

	mu      sync.Mutex
	running bool
	done    chan struct{}
	err     error
}

// NewRunner creates a runner for an engine. A nil logger falls back to the
// default slog logger.
func NewRunner(engine *Engine, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{engine: engine, log: log}
}

// Start launches a run in the background. It fails with ErrRunInProgress if a
// run is already active. Completion is observable via Done and Err.
func (r *Runner) Start(ctx context.Context, spec RunSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return ErrRunInProgress
	}
	r.running = true
	r.done = make(chan struct{})
	r.err = nil
	go r.run(ctx, spec, r.done)
	return nil
}

// Run executes a run synchronously: Start plus waiting for completion.
func (r *Runner) Run(ctx context.Context, spec RunSpec) error {
	if err := r.Start(ctx, spec); err != nil {
		return err
	}
	<-r.Done()
	return r.Err()
}

// Done returns a channel closed when the current (or last) run finishes, or
// an already-closed channel if no run was ever started, so callers can always
// safely wait on it.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return r.done
}

// Err returns the terminal error of the last run, if any.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Runner) run(ctx context.Context, spec RunSpec, done chan struct{}) {
	mode := r.engine.Economy().Mode()
	r.log.Info("simulation run started",
		slog.String("mode", string(mode)),
		slog.Int("periods", spec.Periods))

	var err error
	for i := 0; i < spec.Periods; i++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		if err != nil {
			break
		}

		p := r.engine.Economy().Period() + 1
		switch mode {
		case economy.ModeCredit:
			_, err = r.engine.RunCreditPeriod(spec.RequiredReserve)
		case economy.ModeFiat:
			_, err = r.engine.RunFiatPeriod(spec.AnnualSurplus)
		}
		if err != nil {
			break
		}
		r.log.Debug("period complete", slog.String("period", period.Format(p)))
	}

	if err != nil {
		r.log.Error("simulation run aborted", slog.Any("error", err))
	} else {
		r.log.Info("simulation run finished",
			slog.Int("periods", r.engine.Economy().Period()))
	}

	r.mu.Lock()
	r.running = false
	r.err = err
	r.mu.Unlock()
	close(done)
}
