package eox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/logger"
	"eox-sync/core/metrics"
	"eox-sync/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the terminal state of a run.
type State string

const (
	// StateNotEligible means the run was not allowed to start.
	StateNotEligible State = "not_eligible"
	// StateSucceeded means every query was reconciled.
	StateSucceeded State = "succeeded"
	// StateFailed means a query or the connectivity check failed.
	StateFailed State = "failed"
)

const (
	// NotEnabledMessage is the status of a run that was not allowed to start.
	NotEnabledMessage = "task not enabled"
	// NoQueriesMessage is the status of a run without configured queries.
	NoQueriesMessage = "No Cisco EoX API queries configured."
	// UnreachableMessage is reported when the vendor API cannot be contacted.
	UnreachableMessage = "Cannot access the Cisco API. Please ensure that the server is connected to the internet and that the authentication settings are valid."
	// NotificationTitle is the title of every run notification.
	NotificationTitle = "Synchronization with Cisco EoX API"
)

// Trigger source names.
const (
	TriggerManual   = "manual"
	TriggerPeriodic = "periodic"
	TriggerCLI      = "cli"
)

// Trigger describes how a run was requested.
type Trigger struct {
	// Manual ignores the periodic-sync flag.
	Manual bool `json:"manual"`
	// Source names the caller (manual, periodic, cli).
	Source string `json:"source"`
	// Queries replaces the configured query patterns when non-empty.
	Queries []string `json:"queries,omitempty"`
	// DryRun decides every action without writing products or notifications.
	DryRun bool `json:"dry_run,omitempty"`
}

// QueryResult holds the actions of one query.
type QueryResult struct {
	Query   string             `json:"query"`
	Actions []reconcile.Action `json:"actions"`
	Summary reconcile.Summary  `json:"summary"`
}

// Outcome is the result of one run. Exactly one of StatusMessage and
// ErrorMessage is set.
type Outcome struct {
	RunID         string        `json:"run_id"`
	State         State         `json:"state"`
	Trigger       Trigger       `json:"trigger"`
	StatusMessage string        `json:"status_message,omitempty"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	Queries       []QueryResult `json:"queries,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	FinishedAt    time.Time     `json:"finished_at"`
}

// QueryReconciler reconciles one query.
type QueryReconciler interface {
	Reconcile(ctx context.Context, req Request) (*reconcile.Result, error)
}

// Checker verifies vendor connectivity before a run.
type Checker interface {
	Ping(ctx context.Context) error
}

// Notifier receives one message per finished run.
type Notifier interface {
	Emit(ctx context.Context, message string, isError bool) error
}

// Orchestrator drives a whole synchronization run.
type Orchestrator struct {
	reconciler QueryReconciler
	checker    Checker
	notifier   Notifier
	logger     *zap.Logger
}

// NewOrchestrator creates a new orchestrator. checker may be nil.
func NewOrchestrator(reconciler QueryReconciler, checker Checker, notifier Notifier, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{reconciler: reconciler, checker: checker, notifier: notifier, logger: logger}
}

// Run executes one synchronization with the given configuration.
//
// A run that is not manual while periodic sync is disabled, or any run
// while the API is disabled, ends NotEligible without contacting the
// vendor. Otherwise queries are reconciled one by one in configured order;
// the first error fails the whole run. Succeeded and Failed runs emit
// exactly one notification.
func (o *Orchestrator) Run(ctx context.Context, cfg Config, trigger Trigger) *Outcome {
	out := &Outcome{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		StartedAt: time.Now(),
	}
	log := logger.WithRun(o.logger, out.RunID).With(zap.String("trigger", trigger.Source))

	defer func() {
		out.FinishedAt = time.Now()
		metrics.SyncRuns.WithLabelValues(string(out.State)).Inc()
		metrics.SyncDuration.Observe(out.FinishedAt.Sub(out.StartedAt).Seconds())
	}()

	if !cfg.APIEnabled || (!trigger.Manual && !cfg.PeriodicSyncEnabled) {
		log.Info("Synchronization not enabled",
			zap.Bool("api_enabled", cfg.APIEnabled),
			zap.Bool("periodic_sync_enabled", cfg.PeriodicSyncEnabled))
		out.State = StateNotEligible
		out.StatusMessage = NotEnabledMessage
		return out
	}

	queries := trigger.Queries
	if len(queries) == 0 {
		queries = cfg.Queries()
	}

	if len(queries) == 0 {
		log.Info("No queries configured")
		out.State = StateSucceeded
		out.StatusMessage = NoQueriesMessage
		o.notify(ctx, log, out, trigger)
		return out
	}

	if o.checker != nil {
		if err := o.checker.Ping(ctx); err != nil {
			o.fail(ctx, log, out, trigger, err)
			return out
		}
	}

	blacklist := ParseBlacklist(cfg.ProductBlacklistRegex, log)
	log.Info("Starting synchronization", zap.Strings("queries", queries), zap.Int("blacklist_patterns", blacklist.Len()))

	for _, q := range queries {
		result, err := o.reconciler.Reconcile(ctx, Request{
			RunID:         out.RunID,
			Query:         q,
			Blacklist:     blacklist,
			CreateMissing: cfg.AutoCreateNewProducts,
			DryRun:        trigger.DryRun,
			Vendor:        cfg.Vendor,
		})
		if result != nil {
			out.Queries = append(out.Queries, QueryResult{Query: q, Actions: result.Actions, Summary: result.Summary})
		}
		if err != nil {
			o.fail(ctx, log, out, trigger, err)
			return out
		}
	}

	out.State = StateSucceeded
	out.StatusMessage = RenderReport(out.Queries)
	log.Info("Synchronization finished", zap.Int("queries", len(queries)))
	o.notify(ctx, log, out, trigger)
	return out
}

func (o *Orchestrator) fail(ctx context.Context, log *zap.Logger, out *Outcome, trigger Trigger, err error) {
	out.State = StateFailed
	out.ErrorMessage = FailureMessage(err)
	log.Error("Synchronization failed", zap.Error(err))
	o.notify(ctx, log, out, trigger)
}

func (o *Orchestrator) notify(ctx context.Context, log *zap.Logger, out *Outcome, trigger Trigger) {
	if trigger.DryRun || o.notifier == nil {
		return
	}

	msg, isError := out.StatusMessage, false
	if out.State == StateFailed {
		msg, isError = out.ErrorMessage, true
	}
	if err := o.notifier.Emit(ctx, msg, isError); err != nil {
		log.Error("Failed to emit notification", zap.Error(err))
	}
}

// FailureMessage converts a run error into the operator-facing message.
func FailureMessage(err error) string {
	var (
		credentials *ciscoapi.CredentialsError
		unreachable *ciscoapi.UnreachableError
		callFailed  *ciscoapi.CallFailedError
	)
	switch {
	case errors.As(err, &credentials):
		return fmt.Sprintf("Invalid credentials for Cisco EoX API or insufficient access rights (%s)", credentials.Detail)
	case errors.As(err, &unreachable):
		return UnreachableMessage
	case errors.As(err, &callFailed):
		return fmt.Sprintf("Cisco EoX API call failed (%s)", callFailed.Detail)
	default:
		return fmt.Sprintf("Unexpected error while synchronizing with the Cisco EoX API (%s)", err.Error())
	}
}
