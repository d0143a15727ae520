package config

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds the runtime settings loaded from the environment.
type Config struct {
	Port          string
	DatabaseURL   string // when set, Postgres is used
	SQLitePath    string
	AdminUsername string
	AdminPassword string
	StaticDir     string
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "data/app.db"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		StaticDir:     getEnv("STATIC_DIR", "./static"),
	}
}

// Driver returns the database/sql driver name the config resolves to.
func (c *Config) Driver() string {
	if c.DatabaseURL != "" {
		return "postgres"
	}
	return "sqlite3"
}

// OpenDB opens the configured database and verifies the connection.
// Postgres is used when DATABASE_URL is set, otherwise a local SQLite file.
func OpenDB(cfg *Config) (*sql.DB, error) {
	driver := cfg.Driver()
	dsn := cfg.DatabaseURL
	if driver == "sqlite3" {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "postgres" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	} else {
		// SQLite serializes writers; a single connection avoids lock errors.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Connected to %s database", driver)
	return db, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
