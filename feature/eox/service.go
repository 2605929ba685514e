package eox

import (
	"context"

	"eox-sync/core/jobs"

	"go.uber.org/zap"
)

const (
	jobName = "eox-sync"
	// Manual and periodic runs use separate keys: a manual trigger racing
	// itself is coalesced, a manual run may overlap a periodic one.
	keyManual   = "eox-sync:manual"
	keyPeriodic = "eox-sync:periodic"
)

// Service submits synchronization runs as background jobs.
type Service struct {
	orchestrator *Orchestrator
	runner       *jobs.Runner
	cfg          Config
	archive      *Archiver
	logger       *zap.Logger
}

// NewService creates a new service. archive may be nil.
func NewService(orchestrator *Orchestrator, runner *jobs.Runner, cfg Config, archive *Archiver, logger *zap.Logger) *Service {
	return &Service{orchestrator: orchestrator, runner: runner, cfg: cfg, archive: archive, logger: logger}
}

// Config returns the synchronization configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Trigger submits a run and returns its job. The boolean is false when an
// identical trigger is still running and its job was returned instead.
func (s *Service) Trigger(trigger Trigger) (*jobs.Job, bool) {
	key := keyPeriodic
	if trigger.Manual {
		key = keyManual
	}
	if len(trigger.Queries) > 0 || trigger.DryRun {
		key = ""
	}

	cfg := s.cfg
	job, started := s.runner.Submit(jobName, key, func(ctx context.Context) (any, error) {
		return s.orchestrator.Run(ctx, cfg, trigger), nil
	})
	if started {
		s.logger.Info("Synchronization submitted", zap.String("job_id", job.ID), zap.String("trigger", trigger.Source))
	}
	return job, started
}

// RunNow executes a run synchronously.
func (s *Service) RunNow(ctx context.Context, trigger Trigger) *Outcome {
	return s.orchestrator.Run(ctx, s.cfg, trigger)
}

// Job returns a submitted job.
func (s *Service) Job(id string) (*jobs.Job, bool) {
	return s.runner.Get(id)
}

// Jobs returns the known jobs, most recent first.
func (s *Service) Jobs() []*jobs.Job {
	return s.runner.List()
}

// Archived lists the archived response pages of a query.
func (s *Service) Archived(ctx context.Context, query string) ([]ArchivedPage, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.List(ctx, query)
}

// ArchivedPage returns the body of one archived response page.
func (s *Service) ArchivedPage(ctx context.Context, key string) ([]byte, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.Get(ctx, key)
}
