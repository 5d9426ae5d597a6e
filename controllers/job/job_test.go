package jobControllers_test

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
	jobRoutes "planbook/routers/jobRoutes"
	lessonRoutes "planbook/routers/lessonRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires lesson and job routes against a fresh in-memory database
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
	jobRoutes.SetupJobRoutes(app)
	return app
}

func authToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID)
	require.NoError(t, err)
	return token
}

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

func createPlan(t *testing.T, app *fiber.App, token, title string) int {
	t.Helper()
	code, out := doJSON(t, app, "POST", "/lesson/plan", token, fiber.Map{"title": title})
	require.Equal(t, fiber.StatusCreated, code)
	return int(dataMap(t, out)["ID"].(float64))
}

func TestCreateJobDefaults(t *testing.T) {
	app := setupApp(t)
	tokenA := authToken(t, "user-a")

	code, out := doJSON(t, app, "POST", "/job", tokenA, fiber.Map{})
	require.Equal(t, fiber.StatusCreated, code)
	job := dataMap(t, out)

	assert.Equal(t, "full", job["job_type"])
	assert.Equal(t, "pending", job["status"])
	assert.Nil(t, job["plan_id"])
}

func TestCreateJobWithForeignPlan(t *testing.T) {
	app := setupApp(t)
	tokenA := authToken(t, "user-a")
	tokenB := authToken(t, "user-b")

	foreignPlan := createPlan(t, app, tokenB, "World War II")

	code, _ := doJSON(t, app, "POST", "/job", tokenA, fiber.Map{"plan_id": foreignPlan, "job_type": "outline"})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestCreateJobRejectsUnknownType(t *testing.T) {
	app := setupApp(t)
	tokenA := authToken(t, "user-a")

	code, _ := doJSON(t, app, "POST", "/job", tokenA, fiber.Map{"job_type": "summarize"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestUpdateJobLifecycle(t *testing.T) {
	app := setupApp(t)
	tokenA := authToken(t, "user-a")

	plan := createPlan(t, app, tokenA, "Photosynthesis")

	code, out := doJSON(t, app, "POST", "/job", tokenA, fiber.Map{
		"plan_id":  plan,
		"job_type": "outline",
		"input":    fiber.Map{"topic": "photosynthesis", "grade": 5},
	})
	require.Equal(t, fiber.StatusCreated, code)
	job := dataMap(t, out)
	jobID := int(job["ID"].(float64))
	assert.Equal(t, "pending", job["status"])

	code, out = doJSON(t, app, "PUT", fmt.Sprintf("/job/%d", jobID), tokenA, fiber.Map{
		"status": "completed",
		"output": fiber.Map{"sections": []string{"intro", "experiment"}},
	})
	require.Equal(t, fiber.StatusOK, code)
	updated := dataMap(t, out)
	assert.Equal(t, "completed", updated["status"])
	output, ok := updated["output"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, output["sections"].([]interface{}), 2)

	// Empty update is a no-op
	code, out = doJSON(t, app, "PUT", fmt.Sprintf("/job/%d", jobID), tokenA, fiber.Map{})
	require.Equal(t, fiber.StatusOK, code)
	unchanged := dataMap(t, out)
	assert.Equal(t, "completed", unchanged["status"])
	assert.Equal(t, updated["UpdatedAt"], unchanged["UpdatedAt"])
}

func TestUpdateJobByOtherUser(t *testing.T) {
	app := setupApp(t)
	tokenA := authToken(t, "user-a")
	tokenB := authToken(t, "user-b")

	code, out := doJSON(t, app, "POST", "/job", tokenA, fiber.Map{})
	require.Equal(t, fiber.StatusCreated, code)
	jobID := int(dataMap(t, out)["ID"].(float64))

	code, _ = doJSON(t, app, "PUT", fmt.Sprintf("/job/%d", jobID), tokenB, fiber.Map{"status": "failed"})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestListJobsFilters(t *testing.T) {
	app := setupApp(t)
	tokenA := authToken(t, "user-a")
	tokenB := authToken(t, "user-b")

	plan := createPlan(t, app, tokenA, "Photosynthesis")
	foreignPlan := createPlan(t, app, tokenB, "World War II")

	code, _ := doJSON(t, app, "POST", "/job", tokenA, fiber.Map{"plan_id": plan, "job_type": "steps"})
	require.Equal(t, fiber.StatusCreated, code)
	code, _ = doJSON(t, app, "POST", "/job", tokenA, fiber.Map{"job_type": "full"})
	require.Equal(t, fiber.StatusCreated, code)

	// Plan-less jobs are included when no plan filter is applied
	code, out := doJSON(t, app, "GET", "/job/list", tokenA, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, dataMap(t, out)["jobs"].([]interface{}), 2)

	// ...and excluded once a specific plan is requested
	code, out = doJSON(t, app, "GET", fmt.Sprintf("/job/list?plan_id=%d", plan), tokenA, nil)
	require.Equal(t, fiber.StatusOK, code)
	jobs := dataMap(t, out)["jobs"].([]interface{})
	require.Len(t, jobs, 1)
	assert.Equal(t, "steps", jobs[0].(map[string]interface{})["job_type"])

	code, out = doJSON(t, app, "GET", "/job/list?status=pending", tokenA, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, dataMap(t, out)["jobs"].([]interface{}), 2)

	// Filtering by someone else's plan reveals nothing
	code, _ = doJSON(t, app, "GET", fmt.Sprintf("/job/list?plan_id=%d", foreignPlan), tokenA, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}
