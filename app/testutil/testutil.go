// Package testutil builds a fully wired application against an in-memory
// SQLite database for handler tests.
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/Ahmedhamdy-88/accounting-system/app/config"
	"github.com/Ahmedhamdy-88/accounting-system/app/database"
	"github.com/Ahmedhamdy-88/accounting-system/app/router"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

// NewApp returns an application backed by a fresh in-memory database with
// the admin account seeded.
func NewApp(t *testing.T) (*fiber.App, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// All statements must share the one in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, "sqlite3"))
	_, err = database.SeedAdmin(db, AdminUsername, AdminPassword)
	require.NoError(t, err)

	cfg := &config.Config{
		AdminUsername: AdminUsername,
		AdminPassword: AdminPassword,
		StaticDir:     t.TempDir(),
	}
	return router.New(cfg, db), db
}

// Login authenticates as the seeded admin and returns the session cookie.
func Login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	resp := Request(t, app, "POST", "/api/login", map[string]interface{}{
		"username": AdminUsername,
		"password": AdminPassword,
	}, nil)
	require.Equal(t, 200, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

// Request performs a JSON request against the app and returns the response.
func Request(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// RequestWithHeader is Request with one extra header set.
func RequestWithHeader(t *testing.T, app *fiber.App, method, path string, body interface{}, header, value string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(header, value)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Decode reads the response body as JSON into out.
func Decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
