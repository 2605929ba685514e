package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"eox-sync/core/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for unknown job ids.
var ErrNotFound = errors.New("job not found")

// DefaultHistory is the number of finished jobs kept for inspection.
const DefaultHistory = 100

// Runner executes jobs in background goroutines and keeps a bounded
// history of finished ones.
type Runner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.RWMutex
	jobs    map[string]*Job
	order   []string
	active  map[string]*Job
	history int
	wg      sync.WaitGroup
	logger  *zap.Logger
}

// NewRunner creates a runner keeping up to history finished jobs.
func NewRunner(logger *zap.Logger, history int) *Runner {
	if history <= 0 {
		history = DefaultHistory
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(map[string]*Job),
		active:  make(map[string]*Job),
		history: history,
		logger:  logger,
	}
}

// Submit schedules fn in the background. When key is non-empty and a job
// with the same key is still pending or running, that job is returned
// instead and fn is not scheduled.
func (r *Runner) Submit(name, key string, fn Func) (*Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key != "" {
		if existing, ok := r.active[key]; ok {
			r.logger.Debug("Coalesced job submission", zap.String("job_id", existing.ID), zap.String("key", key))
			return existing, false
		}
	}

	job := &Job{
		ID:        uuid.NewString(),
		Name:      name,
		Key:       key,
		state:     StatePending,
		submitted: time.Now(),
		done:      make(chan struct{}),
	}
	r.jobs[job.ID] = job
	r.order = append(r.order, job.ID)
	if key != "" {
		r.active[key] = job
	}
	r.prune()

	metrics.JobsActive.Inc()
	r.wg.Add(1)
	go r.run(job, fn)

	return job, true
}

func (r *Runner) run(job *Job, fn Func) {
	defer r.wg.Done()
	defer metrics.JobsActive.Dec()

	log := r.logger.With(zap.String("job_id", job.ID), zap.String("job", job.Name))
	job.start()
	log.Info("Job started")

	result, err := r.execute(job, fn)
	job.finish(result, err)

	r.mu.Lock()
	if job.Key != "" && r.active[job.Key] == job {
		delete(r.active, job.Key)
	}
	r.mu.Unlock()

	if err != nil {
		log.Error("Job failed", zap.Error(err))
		return
	}
	log.Info("Job finished")
}

func (r *Runner) execute(job *Job, fn Func) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, p)
		}
	}()
	return fn(r.ctx)
}

// prune drops the oldest finished jobs beyond the history limit.
// Callers must hold r.mu.
func (r *Runner) prune() {
	excess := len(r.order) - r.history
	if excess <= 0 {
		return
	}
	kept := r.order[:0]
	for _, id := range r.order {
		if excess > 0 && r.jobs[id].isFinished() {
			delete(r.jobs, id)
			excess--
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
}

// Get returns the job with the given id.
func (r *Runner) Get(id string) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	return job, ok
}

// List returns all known jobs, most recent first.
func (r *Runner) List() []*Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Job, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.jobs[r.order[i]])
	}
	return out
}

// Wait blocks until the job finishes or ctx is done.
func (r *Runner) Wait(ctx context.Context, id string) (*Job, error) {
	job, ok := r.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	select {
	case <-job.Done():
		return job, nil
	case <-ctx.Done():
		return job, ctx.Err()
	}
}

// Shutdown waits for running jobs to finish. When ctx expires first the
// job context is cancelled and ctx.Err is returned.
func (r *Runner) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.cancel()
		return nil
	case <-ctx.Done():
		r.cancel()
		return ctx.Err()
	}
}
