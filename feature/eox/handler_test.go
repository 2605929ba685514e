package eox

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"eox-sync/core/jobs"
	"eox-sync/core/reconcile"
	"eox-sync/core/storage/mocks"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingReconciler holds every query until release is closed.
type blockingReconciler struct {
	release chan struct{}
	calls   atomic.Int32
}

func (b *blockingReconciler) Reconcile(ctx context.Context, req Request) (*reconcile.Result, error) {
	b.calls.Add(1)
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &reconcile.Result{Actions: []reconcile.Action{{Type: reconcile.ActionCreated, Key: "WS-C2960-24TT-L"}}}, nil
}

func setupService(t *testing.T, rec QueryReconciler, archive *Archiver) (*Service, *fiber.App) {
	runner := jobs.NewRunner(zap.NewNop(), 10)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = runner.Shutdown(ctx)
	})

	orch := NewOrchestrator(rec, nil, nil, zap.NewNop())
	service := NewService(orch, runner, baseConfig(), archive, zap.NewNop())

	app := fiber.New()
	require.NoError(t, NewFeature(service).Load(app))
	return service, app
}

func decodeView(t *testing.T, body io.Reader) map[string]any {
	var v map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func TestHandler_TriggerSyncCoalesces(t *testing.T) {
	rec := &blockingReconciler{release: make(chan struct{})}
	service, app := setupService(t, rec, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/eox/sync?force=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	first := decodeView(t, resp.Body)

	resp, err = app.Test(httptest.NewRequest("POST", "/eox/sync?force=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	second := decodeView(t, resp.Body)
	assert.Equal(t, first["id"], second["id"])

	close(rec.release)

	id := first["id"].(string)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	job, err := service.runner.Wait(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, jobs.StateSucceeded, job.State())

	out, ok := job.Result().(*Outcome)
	require.True(t, ok)
	assert.Equal(t, StateSucceeded, out.State)
	assert.Equal(t, TriggerManual, out.Trigger.Source)
	assert.Equal(t, int32(1), rec.calls.Load())

	resp, err = app.Test(httptest.NewRequest("GET", "/eox/jobs/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	view := decodeView(t, resp.Body)
	assert.Equal(t, "succeeded", view["state"])
	result := view["result"].(map[string]any)
	assert.Contains(t, result["status_message"], "create the Product <code>WS-C2960-24TT-L</code>")
}

func TestHandler_TriggerSyncWithQueries(t *testing.T) {
	rec := &blockingReconciler{release: make(chan struct{})}
	close(rec.release)
	service, app := setupService(t, rec, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/eox/sync?query=A&query=B;C", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	view := decodeView(t, resp.Body)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	job, err := service.runner.Wait(ctx, view["id"].(string))
	require.NoError(t, err)

	out := job.Result().(*Outcome)
	assert.Equal(t, []string{"A", "B", "C"}, out.Trigger.Queries)
	assert.False(t, out.Trigger.Manual)
	// Periodic sync is enabled in the base configuration.
	assert.Equal(t, StateSucceeded, out.State)
	assert.Equal(t, int32(3), rec.calls.Load())
}

func TestHandler_TriggerSyncDryRun(t *testing.T) {
	rec := &blockingReconciler{release: make(chan struct{})}
	close(rec.release)
	service, app := setupService(t, rec, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/eox/sync?force=true&dry_run=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	view := decodeView(t, resp.Body)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	job, err := service.runner.Wait(ctx, view["id"].(string))
	require.NoError(t, err)

	out := job.Result().(*Outcome)
	assert.True(t, out.Trigger.DryRun)
	assert.True(t, out.Trigger.Manual)
	assert.Equal(t, StateSucceeded, out.State)
}

func TestHandler_ListJobs(t *testing.T) {
	rec := &blockingReconciler{release: make(chan struct{})}
	close(rec.release)
	service, app := setupService(t, rec, nil)

	job, started := service.Trigger(Trigger{Manual: true, Source: TriggerManual})
	require.True(t, started)

	resp, err := app.Test(httptest.NewRequest("GET", "/eox/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var views []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.Equal(t, job.ID, views[0]["id"])
}

func TestHandler_GetJobNotFound(t *testing.T) {
	_, app := setupService(t, &stubReconciler{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/eox/jobs/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_ArchiveDisabled(t *testing.T) {
	_, app := setupService(t, &stubReconciler{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/eox/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/eox/archive/object?key=eox/Q/r/page-0001.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandler_Archive(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "eox/Q/r/page-0001.json", Size: 2, LastModified: time.Now()}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "eox/Q/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))
	client.On("GetObject", mock.Anything, "bucket", "eox/Q/r/page-0001.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader("{}")), nil)

	_, app := setupService(t, &stubReconciler{}, NewArchiver(client, "bucket", zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest("GET", "/eox/archive?query=Q", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pages []ArchivedPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pages))
	require.Len(t, pages, 1)
	assert.Equal(t, "eox/Q/r/page-0001.json", pages[0].Key)

	resp, err = app.Test(httptest.NewRequest("GET", "/eox/archive/object?key=eox/Q/r/page-0001.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "{}", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/eox/archive/object", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestService_DryRunIsNotCoalesced(t *testing.T) {
	rec := &blockingReconciler{release: make(chan struct{})}
	service, _ := setupService(t, rec, nil)
	defer close(rec.release)

	first, started := service.Trigger(Trigger{Manual: true, Source: TriggerManual, DryRun: true})
	require.True(t, started)
	second, started := service.Trigger(Trigger{Manual: true, Source: TriggerManual, DryRun: true})
	require.True(t, started)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestScheduler_SubmitsPeriodicRuns(t *testing.T) {
	rec := &blockingReconciler{release: make(chan struct{})}
	close(rec.release)
	service, _ := setupService(t, rec, nil)

	s := NewScheduler(service, 10*time.Millisecond, zap.NewNop())
	s.Start()

	assert.Eventually(t, func() bool {
		return len(service.Jobs()) >= 2
	}, 2*time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()

	for _, j := range service.Jobs() {
		assert.Equal(t, keyPeriodic, j.Key)
	}
}
