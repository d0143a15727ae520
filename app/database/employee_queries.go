package database

import (
	"database/sql"

	"github.com/Ahmedhamdy-88/accounting-system/app/models"
)

// GetAllEmployees lists employees ordered alphabetically by name. The
// ordering is part of the API contract.
func GetAllEmployees(db *sql.DB) ([]*models.Employee, error) {
	query := `SELECT id, name, type, project_id, salary, payment_type,
			  phone, id_number, start_date, notes, created_at
			  FROM employees
			  ORDER BY name ASC, id ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		e := &models.Employee{}
		err := rows.Scan(
			&e.ID, &e.Name, &e.Type, &e.ProjectID, &e.Salary, &e.PaymentType,
			&e.Phone, &e.IDNumber, &e.StartDate, &e.Notes, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func GetEmployeeByID(db *sql.DB, id int64) (*models.Employee, error) {
	e := &models.Employee{}
	query := `SELECT id, name, type, project_id, salary, payment_type,
			  phone, id_number, start_date, notes, created_at
			  FROM employees WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.Name, &e.Type, &e.ProjectID, &e.Salary, &e.PaymentType,
		&e.Phone, &e.IDNumber, &e.StartDate, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateEmployee(db *sql.DB, e *models.Employee) error {
	query := `INSERT INTO employees (name, type, project_id, salary, payment_type,
			  phone, id_number, start_date, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		e.Name, e.Type, e.ProjectID, e.Salary, e.PaymentType,
		e.Phone, e.IDNumber, e.StartDate, e.Notes,
	).Scan(&e.ID, &e.CreatedAt)
}

func UpdateEmployee(db *sql.DB, e *models.Employee) error {
	query := `UPDATE employees
			  SET name = $1, type = $2, project_id = $3, salary = $4,
			      payment_type = $5, phone = $6, id_number = $7,
			      start_date = $8, notes = $9
			  WHERE id = $10`

	result, err := db.Exec(query,
		e.Name, e.Type, e.ProjectID, e.Salary, e.PaymentType,
		e.Phone, e.IDNumber, e.StartDate, e.Notes, e.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteEmployee(db *sql.DB, id int64) error {
	result, err := db.Exec(`DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
