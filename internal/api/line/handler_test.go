package line

import (
	"encoding/json"
	"io/ioutil"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linestats-api-server/internal/models"
)

func setupApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New()
	service := NewLineService(NewLineRepository(db), zap.NewNop())
	LineRouter(app, service, zap.NewNop())
	return app
}

func TestLinesEndpoint(t *testing.T) {
	app := setupApp(t, setupDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/lines", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lines []models.Line
	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &lines))

	require.Len(t, lines, 2)
	assert.Equal(t, "Home", lines[0].Name)
}

func TestLinesEndpointByID(t *testing.T) {
	app := setupApp(t, setupDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/lines?line_id=2", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lines []models.Line
	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &lines))

	require.Len(t, lines, 1)
	assert.Equal(t, "Office", lines[0].Name)
}

func TestLineByPathEndpoint(t *testing.T) {
	app := setupApp(t, setupDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/lines/1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var found models.Line
	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &found))
	assert.Equal(t, "Home", found.Name)
}

func TestLineByPathEndpointUnknownIDIs404(t *testing.T) {
	app := setupApp(t, setupDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/lines/999", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLineByPathEndpointRejectsBadID(t *testing.T) {
	app := setupApp(t, setupDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/lines/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLinesEndpointRejectsBadID(t *testing.T) {
	app := setupApp(t, setupDB(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/lines?line_id=abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
