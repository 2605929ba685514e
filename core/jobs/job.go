package jobs

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle state of a job.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Func is the work executed by a job. The returned value becomes the job result.
type Func func(ctx context.Context) (any, error)

// Job is a unit of background work.
type Job struct {
	ID   string
	Name string
	Key  string

	mu        sync.RWMutex
	state     State
	result    any
	err       string
	submitted time.Time
	started   time.Time
	finished  time.Time
	done      chan struct{}
}

// View is a point-in-time copy of a job, safe to serialize.
type View struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Key         string     `json:"key,omitempty"`
	State       State      `json:"state"`
	Result      any        `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// View returns a snapshot of the job.
func (j *Job) View() View {
	j.mu.RLock()
	defer j.mu.RUnlock()

	v := View{
		ID:          j.ID,
		Name:        j.Name,
		Key:         j.Key,
		State:       j.state,
		Result:      j.result,
		Error:       j.err,
		SubmittedAt: j.submitted,
	}
	if !j.started.IsZero() {
		started := j.started
		v.StartedAt = &started
	}
	if !j.finished.IsZero() {
		finished := j.finished
		v.FinishedAt = &finished
	}
	return v
}

// State returns the current state.
func (j *Job) State() State {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.state
}

// Result returns the value produced by the job function.
func (j *Job) Result() any {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.result
}

// Done is closed once the job has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

func (j *Job) isFinished() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

func (j *Job) start() {
	j.mu.Lock()
	j.state = StateRunning
	j.started = time.Now()
	j.mu.Unlock()
}

func (j *Job) finish(result any, err error) {
	j.mu.Lock()
	j.result = result
	j.finished = time.Now()
	if err != nil {
		j.state = StateFailed
		j.err = err.Error()
	} else {
		j.state = StateSucceeded
	}
	j.mu.Unlock()
	close(j.done)
}
