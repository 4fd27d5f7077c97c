package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hvackit/loadcalc/internal/engine"
	"github.com/hvackit/loadcalc/internal/logging"
	"github.com/hvackit/loadcalc/internal/model"
)

// Concurrency bounds for the runner.
const (
	DefaultConcurrency = 4
	MaxConcurrency     = 32
)

// Runner errors.
var (
	ErrNoJobs             = errors.New("no buildings to calculate")
	ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 32")
)

// Job is one building in a batch run. Name identifies the building in
// output; it defaults to the location when empty.
type Job struct {
	Name     string
	Building *model.Building
}

// Outcome pairs a job with its result or error. Individual failures never
// abort the batch; they are reported per job.
type Outcome struct {
	Name   string
	Result *engine.BuildingLoadResult
	Err    error
}

// ProgressFunc is invoked after each job completes.
type ProgressFunc func(snapshot Snapshot)

// Runner executes calculation jobs against one Engine with bounded
// concurrency. The Engine is stateless, so jobs share it freely.
type Runner struct {
	engine      *engine.Engine
	concurrency int
	onProgress  ProgressFunc
}

// NewRunner creates a Runner. Zero concurrency selects the default.
func NewRunner(eng *engine.Engine, concurrency int) (*Runner, error) {
	if eng == nil {
		return nil, errors.New("runner requires an engine")
	}
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency < 1 || concurrency > MaxConcurrency {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, concurrency)
	}

	return &Runner{engine: eng, concurrency: concurrency}, nil
}

// WithProgress sets a progress callback, invoked from worker goroutines.
func (r *Runner) WithProgress(fn ProgressFunc) *Runner {
	r.onProgress = fn
	return r
}

// Run calculates every job and returns outcomes in job order. The returned
// error is non-nil only for empty input or context cancellation; per-job
// calculation failures land in their Outcome.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "batch").
		Str("operation", "run").
		Int("jobs", len(jobs)).
		Int("concurrency", r.concurrency).
		Msg("starting batch calculation")

	outcomes := make([]Outcome, len(jobs))
	progress := newProgress(len(jobs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for i := range jobs {
		group.Go(func() error {
			job := jobs[i]

			name := job.Name
			if name == "" && job.Building != nil {
				name = job.Building.Location
			}

			result, err := r.engine.Calculate(groupCtx, job.Building)
			outcomes[i] = Outcome{Name: name, Result: result, Err: err}

			if err != nil {
				log.Warn().
					Str("component", "batch").
					Str("job", name).
					Err(err).
					Msg("calculation failed")
			}

			snapshot := progress.complete(err == nil)
			if r.onProgress != nil {
				r.onProgress(snapshot)
			}

			// Only cancellation propagates; per-job errors are outcomes.
			return groupCtx.Err()
		})
	}

	if err := group.Wait(); err != nil {
		return outcomes, err
	}

	log.Info().
		Str("component", "batch").
		Int("jobs", len(jobs)).
		Int("failed", progress.failed()).
		Msg("batch calculation complete")

	return outcomes, nil
}
