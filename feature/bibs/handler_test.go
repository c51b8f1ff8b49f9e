package bibs

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"alma-utilities/core/reconcile"
	"alma-utilities/core/storage/mocks"
	"alma-utilities/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, resolver reconcile.Resolver) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", resolver, history.NewRecorder(nil, nil), zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleReconcile(t *testing.T) {
	app, mockClient := setupTestApp(t, foundResolver(map[string]string{"12345": "991234567890"}))

	mockClient.On("GetObject", mock.Anything, "test-bucket", "batch.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("originating_system_id,mms_id\n12345,\n")), nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "batch.csv", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	req := httptest.NewRequest("POST", "/bibs/reconcile", strings.NewReader(`{"object":"batch.csv"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body RunResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "batch.csv", body.Object)
	require.NotNil(t, body.Summary)
	assert.Equal(t, 1, body.Summary.Updated)
}

func TestHandleReconcile_MissingObject(t *testing.T) {
	app, mockClient := setupTestApp(t, foundResolver(nil))

	req := httptest.NewRequest("POST", "/bibs/reconcile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	mockClient.AssertNotCalled(t, "GetObject",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleReconcile_InvalidBody(t *testing.T) {
	app, _ := setupTestApp(t, foundResolver(nil))

	req := httptest.NewRequest("POST", "/bibs/reconcile", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleReconcile_InvalidDataset(t *testing.T) {
	app, mockClient := setupTestApp(t, foundResolver(nil))

	mockClient.On("GetObject", mock.Anything, "test-bucket", "bad.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("title,author\nFirst,Smith\n")), nil)

	req := httptest.NewRequest("POST", "/bibs/reconcile", strings.NewReader(`{"object":"bad.csv"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestHandleReconcile_StorageFailure(t *testing.T) {
	app, mockClient := setupTestApp(t, foundResolver(nil))

	mockClient.On("GetObject", mock.Anything, "test-bucket", "gone.csv", mock.Anything).
		Return(nil, assert.AnError)

	req := httptest.NewRequest("POST", "/bibs/reconcile", strings.NewReader(`{"object":"gone.csv"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleListDatasets(t *testing.T) {
	app, mockClient := setupTestApp(t, foundResolver(nil))

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "july.csv", Size: 12}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	req := httptest.NewRequest("GET", "/bibs/datasets", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []DatasetInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "july.csv", body[0].Object)
}

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	feature := NewFeature(mockClient, "test-bucket", foundResolver(nil), history.NewRecorder(nil, nil), zap.NewNop())

	assert.Equal(t, "bibs", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
