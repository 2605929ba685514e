package integrity

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"eox-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, pinger stubPinger) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	feature := NewFeature(setupDB(t), mockClient, "test-bucket", "", pinger, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func TestHandleDatabaseCheck(t *testing.T) {
	app, _ := setupTestApp(t, stubPinger{})

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
}

func TestHandleStorageCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, stubPinger{})
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "checked", body["status"])
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t, stubPinger{})
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", minio.MakeBucketOptions{}).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertExpectations(t)
}

func TestHandleStorageCheck_Error(t *testing.T) {
	app, mockClient := setupTestApp(t, stubPinger{})
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, errors.New("denied"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleAPICheck(t *testing.T) {
	app, _ := setupTestApp(t, stubPinger{})
	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/api", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	app, _ = setupTestApp(t, stubPinger{err: errors.New("refused")})
	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/api", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, stubPinger{})
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["database"]["matched"])
	assert.Equal(t, true, body["storage"]["exists"])
	assert.Equal(t, "ok", body["api"]["status"])
}
