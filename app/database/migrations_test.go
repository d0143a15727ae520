package database

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db, "sqlite3"))
	require.NoError(t, RunMigrations(db, "sqlite3"))

	for _, table := range []string{"users", "projects", "budget_breakdown", "employees", "payroll", "expenses"} {
		var count int
		err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count)
		require.NoError(t, err, table)
		assert.Equal(t, 0, count, table)
	}
}

func TestSeedAdmin(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db, "sqlite3"))

	created, err := SeedAdmin(db, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	// Second seed must not create a duplicate.
	created, err = SeedAdmin(db, "admin", "admin123")
	require.NoError(t, err)
	assert.False(t, created)

	user, err := GetUserByUsername(db, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.EqualValues(t, "admin", user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("admin123")))
	assert.NotEqual(t, "admin123", user.Password)
}

func TestGetUserByUsernameMissing(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db, "sqlite3"))

	_, err := GetUserByUsername(db, "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
