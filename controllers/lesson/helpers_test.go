package lessonControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"planbook/config"
	"planbook/database"
	"planbook/middleware"
	"planbook/models"
	lessonRoutes "planbook/routers/lessonRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires the lesson routes against a fresh in-memory database
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.LessonPlan{},
		&models.LessonObjective{},
		&models.LessonStep{},
		&models.LessonMaterial{},
		&models.LessonJob{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	lessonRoutes.SetupLessonRoutes(app)
	return app
}

func authToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID)
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the app and decodes the response envelope
func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func dataMap(t *testing.T, out map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := out["data"].(map[string]interface{})
	require.True(t, ok, "response data is not an object: %v", out)
	return data
}

func createPlan(t *testing.T, app *fiber.App, token string, body fiber.Map) map[string]interface{} {
	t.Helper()
	code, out := doJSON(t, app, "POST", "/lesson/plan", token, body)
	require.Equal(t, fiber.StatusCreated, code)
	return dataMap(t, out)
}

func planID(t *testing.T, plan map[string]interface{}) int {
	t.Helper()
	id, ok := plan["ID"].(float64)
	require.True(t, ok)
	return int(id)
}
