package history

import (
	"encoding/json"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	handler := NewHandler(NewRecorder(db, nil))
	handler.RegisterRoutes(app)
	return app, sqlMock
}

func TestHandleListRuns(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"id", "source", "total_records"}).
		AddRow("6a8f2a34-7c1d-4c5e-9b93-1f2d3e4a5b6c", "import.csv", 12)
	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `reconciliation_runs`")).
		WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/history/runs", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "import.csv", body[0].Source)
	assert.Equal(t, 12, body[0].TotalRecords)
}

func TestHandleListRuns_QueryFailure(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	req := httptest.NewRequest("GET", "/history/runs", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	db, _ := setupMockDB(t)
	feature := NewFeature(db, nil)

	assert.Equal(t, "history", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestLoader_DisabledWithoutDatabase(t *testing.T) {
	feature := NewFeature(nil, nil)
	assert.False(t, feature.IsEnabled())
}
