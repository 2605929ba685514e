package eox

import (
	"context"
	"errors"
	"testing"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrchestrator_CallFailed(t *testing.T) {
	rec := &stubReconciler{err: ciscoapi.NewCallFailed("The API is broken", nil)}
	notes := &stubNotifier{}
	o := NewOrchestrator(rec, stubChecker{}, notes, zap.NewNop())

	out := o.Run(context.Background(), baseConfig(), manual())

	assert.Equal(t, StateFailed, out.State)
	assert.Equal(t, "Cisco EoX API call failed (The API is broken)", out.ErrorMessage)
	assert.Empty(t, out.StatusMessage)
	assert.Equal(t, []string{"Cisco EoX API call failed (The API is broken)"}, notes.messages)
	assert.Equal(t, []bool{true}, notes.errors)
}

func TestOrchestrator_NotEligible(t *testing.T) {
	rec := &stubReconciler{}
	notes := &stubNotifier{}
	o := NewOrchestrator(rec, stubChecker{err: errors.New("must not be called")}, notes, zap.NewNop())

	cfg := baseConfig()
	cfg.PeriodicSyncEnabled = false
	out := o.Run(context.Background(), cfg, Trigger{Source: TriggerPeriodic})

	assert.Equal(t, StateNotEligible, out.State)
	assert.Equal(t, NotEnabledMessage, out.StatusMessage)
	assert.Empty(t, rec.calls)
	assert.Empty(t, notes.messages)
	assert.False(t, out.FinishedAt.Before(out.StartedAt))
	assert.NotEmpty(t, out.RunID)
}

func TestOrchestrator_NoQueries(t *testing.T) {
	rec := &stubReconciler{}
	notes := &stubNotifier{}
	o := NewOrchestrator(rec, stubChecker{err: errors.New("must not be called")}, notes, zap.NewNop())

	cfg := baseConfig()
	cfg.APIQueries = ""
	out := o.Run(context.Background(), cfg, manual())

	assert.Equal(t, StateSucceeded, out.State)
	assert.Equal(t, NoQueriesMessage, out.StatusMessage)
	assert.Empty(t, rec.calls)
	assert.Equal(t, []string{NoQueriesMessage}, notes.messages)
	assert.Equal(t, []bool{false}, notes.errors)
}

func TestOrchestrator_TriggerQueriesOverrideConfig(t *testing.T) {
	rec := &stubReconciler{}
	o := NewOrchestrator(rec, nil, &stubNotifier{}, zap.NewNop())

	trigger := manual()
	trigger.Queries = []string{"C9300-*"}
	out := o.Run(context.Background(), baseConfig(), trigger)

	assert.Equal(t, StateSucceeded, out.State)
	assert.Equal(t, []string{"C9300-*"}, rec.calls)
}

func TestOrchestrator_PingFailureStopsRun(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "credentials",
			err:  &ciscoapi.CredentialsError{Detail: "invalid_client"},
			want: "Invalid credentials for Cisco EoX API or insufficient access rights (invalid_client)",
		},
		{
			name: "unreachable",
			err:  &ciscoapi.UnreachableError{Detail: "dial tcp: connection refused", Err: ciscoapi.NewCallFailed("dial tcp: connection refused", nil)},
			want: UnreachableMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &stubReconciler{}
			notes := &stubNotifier{}
			o := NewOrchestrator(rec, stubChecker{err: tt.err}, notes, zap.NewNop())

			out := o.Run(context.Background(), baseConfig(), manual())

			assert.Equal(t, StateFailed, out.State)
			assert.Equal(t, tt.want, out.ErrorMessage)
			assert.Empty(t, rec.calls)
			assert.Equal(t, []string{tt.want}, notes.messages)
		})
	}
}

func TestOrchestrator_StopsAtFirstFailingQuery(t *testing.T) {
	rec := &failingReconciler{failOn: "B", err: errors.New("disk full")}
	o := NewOrchestrator(rec, nil, &stubNotifier{}, zap.NewNop())

	cfg := baseConfig()
	cfg.APIQueries = "A;B;C"
	out := o.Run(context.Background(), cfg, manual())

	assert.Equal(t, StateFailed, out.State)
	assert.Equal(t, "Unexpected error while synchronizing with the Cisco EoX API (disk full)", out.ErrorMessage)
	assert.Equal(t, []string{"A", "B"}, rec.calls)
	require.Len(t, out.Queries, 1)
	assert.Equal(t, "A", out.Queries[0].Query)
}

func TestOrchestrator_NotifierErrorIsIgnored(t *testing.T) {
	o := NewOrchestrator(&stubReconciler{}, nil, &stubNotifier{err: errors.New("db down")}, zap.NewNop())

	out := o.Run(context.Background(), baseConfig(), manual())

	assert.Equal(t, StateSucceeded, out.State)
	assert.Equal(t, reportPrefix+NoChangesMessage+`</div>`, out.StatusMessage)
}

func TestOrchestrator_DryRunSkipsNotification(t *testing.T) {
	notes := &stubNotifier{}
	o := NewOrchestrator(&stubReconciler{}, nil, notes, zap.NewNop())

	trigger := manual()
	trigger.DryRun = true
	out := o.Run(context.Background(), baseConfig(), trigger)

	assert.Equal(t, StateSucceeded, out.State)
	assert.Empty(t, notes.messages)
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"call failed", ciscoapi.NewCallFailed("HTTP 500: oops", nil), "Cisco EoX API call failed (HTTP 500: oops)"},
		{"wrapped call failed", fmtWrap(ciscoapi.NewCallFailed("HTTP 502: bad gateway", nil)), "Cisco EoX API call failed (HTTP 502: bad gateway)"},
		{"credentials", &ciscoapi.CredentialsError{Detail: "invalid_client"}, "Invalid credentials for Cisco EoX API or insufficient access rights (invalid_client)"},
		{"unreachable wins over cause", &ciscoapi.UnreachableError{Detail: "x", Err: ciscoapi.NewCallFailed("x", nil)}, UnreachableMessage},
		{"unexpected", errors.New("boom"), "Unexpected error while synchronizing with the Cisco EoX API (boom)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureMessage(tt.err))
		})
	}
}

func fmtWrap(err error) error {
	return errors.Join(errors.New("failed to fetch page"), err)
}

type failingReconciler struct {
	failOn string
	err    error
	calls  []string
}

func (f *failingReconciler) Reconcile(ctx context.Context, req Request) (*reconcile.Result, error) {
	f.calls = append(f.calls, req.Query)
	if req.Query == f.failOn {
		return nil, f.err
	}
	return &reconcile.Result{Actions: []reconcile.Action{{Type: reconcile.ActionCreated, Key: req.Query}}}, nil
}
