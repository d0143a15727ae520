package projects_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmedhamdy-88/accounting-system/app/testutil"
)

type sessionApp struct {
	App    *fiber.App
	Cookie *http.Cookie
}

func newApp(t *testing.T) *sessionApp {
	t.Helper()
	app, _ := testutil.NewApp(t)
	return &sessionApp{App: app, Cookie: testutil.Login(t, app)}
}

func projectBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":         name,
		"type":         "feature film",
		"total_budget": 250000,
		"budget_breakdown": map[string]interface{}{
			"artists_salaries": 90000,
			"technical_crew":   60000,
			"equipment":        40000,
			"locations":        30000,
			// marketing intentionally omitted
			"other": 5000,
		},
	}
}

func createProject(t *testing.T, app *sessionApp, body map[string]interface{}) int64 {
	t.Helper()
	resp := testutil.Request(t, app.App, "POST", "/api/projects", body, app.Cookie)
	require.Equal(t, 201, resp.StatusCode)

	var created map[string]interface{}
	testutil.Decode(t, resp, &created)
	require.Equal(t, "Project created successfully", created["message"])
	return int64(created["project_id"].(float64))
}

func TestProjectsRequireSession(t *testing.T) {
	app := newApp(t)

	resp := testutil.Request(t, app.App, "GET", "/api/projects", nil, nil)
	assert.Equal(t, 401, resp.StatusCode)

	resp = testutil.Request(t, app.App, "POST", "/api/projects", projectBody("Sunset"), nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestCreateProjectWithBreakdown(t *testing.T) {
	app := newApp(t)

	id := createProject(t, app, projectBody("Sunset"))
	assert.Greater(t, id, int64(0))

	resp := testutil.Request(t, app.App, "GET", fmt.Sprintf("/api/projects/%d", id), nil, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)

	var project map[string]interface{}
	testutil.Decode(t, resp, &project)
	assert.Equal(t, "Sunset", project["name"])
	assert.Equal(t, "planning", project["status"])
	assert.Equal(t, 250000.0, project["total_budget"])
	assert.Equal(t, 0.0, project["spent_amount"])

	breakdown := project["budget_breakdown"].(map[string]interface{})
	assert.Equal(t, float64(id), breakdown["project_id"])
	assert.Equal(t, 90000.0, breakdown["artists_salaries"])
	// Omitted category defaults to zero.
	assert.Equal(t, 0.0, breakdown["marketing"])
}

func TestCreateProjectMissingField(t *testing.T) {
	app := newApp(t)

	body := projectBody("Sunset")
	delete(body, "total_budget")

	resp := testutil.Request(t, app.App, "POST", "/api/projects", body, app.Cookie)
	require.Equal(t, 400, resp.StatusCode)

	var errBody map[string]interface{}
	testutil.Decode(t, resp, &errBody)
	assert.Contains(t, errBody["error"], "total_budget")
}

func TestCreateProjectWithoutBreakdownObject(t *testing.T) {
	app := newApp(t)

	body := projectBody("Lean")
	delete(body, "budget_breakdown")
	id := createProject(t, app, body)

	resp := testutil.Request(t, app.App, "GET", fmt.Sprintf("/api/projects/%d", id), nil, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)

	var project map[string]interface{}
	testutil.Decode(t, resp, &project)
	breakdown := project["budget_breakdown"].(map[string]interface{})
	for _, cat := range []string{"artists_salaries", "technical_crew", "equipment", "locations", "marketing", "other"} {
		assert.Equal(t, 0.0, breakdown[cat], cat)
	}
}

func TestSpentAmountDerivedFromExpenses(t *testing.T) {
	app := newApp(t)
	id := createProject(t, app, projectBody("Tracked"))

	expense := map[string]interface{}{
		"category":       "equipment",
		"project_id":     id,
		"description":    "camera rental",
		"amount":         1200.0,
		"date":           "2026-03-01",
		"payment_method": "card",
	}
	resp := testutil.Request(t, app.App, "POST", "/api/expenses", expense, app.Cookie)
	require.Equal(t, 201, resp.StatusCode)

	cancelled := map[string]interface{}{
		"category":       "equipment",
		"project_id":     id,
		"description":    "returned lens",
		"amount":         500.0,
		"date":           "2026-03-02",
		"payment_method": "card",
		"status":         "cancelled",
	}
	resp = testutil.Request(t, app.App, "POST", "/api/expenses", cancelled, app.Cookie)
	require.Equal(t, 201, resp.StatusCode)

	resp = testutil.Request(t, app.App, "GET", fmt.Sprintf("/api/projects/%d", id), nil, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)

	var project map[string]interface{}
	testutil.Decode(t, resp, &project)
	// Cancelled expenses do not count toward spend.
	assert.Equal(t, 1200.0, project["spent_amount"])
}

func TestListProjectsNewestFirst(t *testing.T) {
	app := newApp(t)

	first := createProject(t, app, projectBody("First"))
	second := createProject(t, app, projectBody("Second"))
	require.Greater(t, second, first)

	resp := testutil.Request(t, app.App, "GET", "/api/projects", nil, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)

	var list []map[string]interface{}
	testutil.Decode(t, resp, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0]["name"])
	assert.Equal(t, "First", list[1]["name"])
}

func TestUpdateProjectPartialWithBreakdown(t *testing.T) {
	app := newApp(t)
	id := createProject(t, app, projectBody("Evolving"))

	resp := testutil.Request(t, app.App, "PUT", fmt.Sprintf("/api/projects/%d", id),
		map[string]interface{}{
			"status": "active",
			"budget_breakdown": map[string]interface{}{
				"marketing": 15000,
			},
		}, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)

	var project map[string]interface{}
	testutil.Decode(t, resp, &project)
	assert.Equal(t, "active", project["status"])
	assert.Equal(t, "Evolving", project["name"])

	breakdown := project["budget_breakdown"].(map[string]interface{})
	assert.Equal(t, 15000.0, breakdown["marketing"])
	// Other categories are untouched.
	assert.Equal(t, 90000.0, breakdown["artists_salaries"])
}

func TestUpdateProjectRejectsUnknownStatus(t *testing.T) {
	app := newApp(t)
	id := createProject(t, app, projectBody("Strict"))

	resp := testutil.Request(t, app.App, "PUT", fmt.Sprintf("/api/projects/%d", id),
		map[string]interface{}{"status": "on-ice"}, app.Cookie)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDeleteProjectDetachesDependents(t *testing.T) {
	app := newApp(t)
	id := createProject(t, app, projectBody("Doomed"))

	// An employee and an expense tied to the project.
	resp := testutil.Request(t, app.App, "POST", "/api/employees", map[string]interface{}{
		"name":         "Olga",
		"type":         "gaffer",
		"project_id":   id,
		"salary":       2100,
		"payment_type": "weekly",
		"start_date":   "2026-01-10",
	}, app.Cookie)
	require.Equal(t, 201, resp.StatusCode)
	var employee map[string]interface{}
	testutil.Decode(t, resp, &employee)
	employeeID := int64(employee["id"].(float64))

	resp = testutil.Request(t, app.App, "POST", "/api/expenses", map[string]interface{}{
		"category":       "locations",
		"project_id":     id,
		"description":    "warehouse rental",
		"amount":         3000,
		"date":           "2026-02-01",
		"payment_method": "bank transfer",
	}, app.Cookie)
	require.Equal(t, 201, resp.StatusCode)
	var expense map[string]interface{}
	testutil.Decode(t, resp, &expense)
	expenseID := int64(expense["id"].(float64))

	resp = testutil.Request(t, app.App, "DELETE", fmt.Sprintf("/api/projects/%d", id), nil, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)

	resp = testutil.Request(t, app.App, "GET", fmt.Sprintf("/api/projects/%d", id), nil, app.Cookie)
	assert.Equal(t, 404, resp.StatusCode)

	// Dependents survive with their project reference cleared.
	resp = testutil.Request(t, app.App, "GET", fmt.Sprintf("/api/employees/%d", employeeID), nil, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)
	testutil.Decode(t, resp, &employee)
	assert.Nil(t, employee["project_id"])

	resp = testutil.Request(t, app.App, "GET", fmt.Sprintf("/api/expenses/%d", expenseID), nil, app.Cookie)
	require.Equal(t, 200, resp.StatusCode)
	testutil.Decode(t, resp, &expense)
	assert.Nil(t, expense["project_id"])
}

func TestDeleteProjectNotFound(t *testing.T) {
	app := newApp(t)

	resp := testutil.Request(t, app.App, "DELETE", "/api/projects/8080", nil, app.Cookie)
	assert.Equal(t, 404, resp.StatusCode)
}
