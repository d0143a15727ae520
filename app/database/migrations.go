package database

import (
	"database/sql"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ahmedhamdy-88/accounting-system/app/models"
)

// serialPK returns the autoincrement primary key clause for the driver.
// Postgres and SQLite spell it differently; everything else in the DDL is
// shared.
func serialPK(driver string) string {
	if driver == "postgres" {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// RunMigrations creates any missing tables. Safe to run at every startup.
func RunMigrations(db *sql.DB, driver string) error {
	log.Println("Running database migrations...")

	pk := serialPK(driver)
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			username VARCHAR(255) UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS projects (
			id %s,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(100) NOT NULL,
			description TEXT,
			total_budget DOUBLE PRECISION NOT NULL,
			spent_amount DOUBLE PRECISION DEFAULT 0,
			start_date VARCHAR(10),
			end_date VARCHAR(10),
			status VARCHAR(20) DEFAULT 'planning',
			created_by INTEGER,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (created_by) REFERENCES users (id)
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS budget_breakdown (
			id %s,
			project_id INTEGER,
			artists_salaries DOUBLE PRECISION DEFAULT 0,
			technical_crew DOUBLE PRECISION DEFAULT 0,
			equipment DOUBLE PRECISION DEFAULT 0,
			locations DOUBLE PRECISION DEFAULT 0,
			marketing DOUBLE PRECISION DEFAULT 0,
			other DOUBLE PRECISION DEFAULT 0,
			FOREIGN KEY (project_id) REFERENCES projects (id)
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS employees (
			id %s,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(100) NOT NULL,
			project_id INTEGER,
			salary DOUBLE PRECISION NOT NULL,
			payment_type VARCHAR(50) NOT NULL,
			phone VARCHAR(50),
			id_number VARCHAR(100),
			start_date VARCHAR(10) NOT NULL,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects (id)
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS payroll (
			id %s,
			employee_id INTEGER NOT NULL,
			period VARCHAR(100) NOT NULL,
			start_date VARCHAR(10),
			end_date VARCHAR(10),
			base_amount DOUBLE PRECISION NOT NULL,
			bonus DOUBLE PRECISION DEFAULT 0,
			deductions DOUBLE PRECISION DEFAULT 0,
			overtime DOUBLE PRECISION DEFAULT 0,
			total DOUBLE PRECISION NOT NULL,
			payment_date VARCHAR(10) NOT NULL,
			status VARCHAR(20) DEFAULT 'pending',
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (employee_id) REFERENCES employees (id)
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS expenses (
			id %s,
			category VARCHAR(100) NOT NULL,
			project_id INTEGER,
			description TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			date VARCHAR(10) NOT NULL,
			vendor VARCHAR(255),
			receipt TEXT,
			payment_method VARCHAR(50) NOT NULL,
			status VARCHAR(20) DEFAULT 'pending',
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects (id)
		)`, pk),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedAdmin creates the administrator account unless it already exists.
// It reports whether a new account was created.
func SeedAdmin(db *sql.DB, username, password string) (bool, error) {
	var id int64
	err := db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return false, err
	}

	_, err = db.Exec(
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3)`,
		username, string(hash), string(models.AdminRole),
	)
	if err != nil {
		return false, err
	}

	log.Printf("Admin user created: username=%s", username)
	return true, nil
}
