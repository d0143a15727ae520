package database

import (
	"database/sql"

	"github.com/Ahmedhamdy-88/accounting-system/app/models"
)

const payrollColumns = `id, employee_id, period, start_date, end_date,
	base_amount, bonus, deductions, overtime, total, payment_date,
	status, notes, created_at`

func scanPayroll(row interface{ Scan(...interface{}) error }, p *models.Payroll) error {
	return row.Scan(
		&p.ID, &p.EmployeeID, &p.Period, &p.StartDate, &p.EndDate,
		&p.BaseAmount, &p.Bonus, &p.Deductions, &p.Overtime, &p.Total,
		&p.PaymentDate, &p.Status, &p.Notes, &p.CreatedAt,
	)
}

// GetAllPayroll lists payroll records newest payment first. The ordering is
// part of the API contract.
func GetAllPayroll(db *sql.DB) ([]*models.Payroll, error) {
	query := `SELECT ` + payrollColumns + `
			  FROM payroll
			  ORDER BY payment_date DESC, id DESC`
	return queryPayroll(db, query)
}

// GetPayrollByEmployee lists payroll records for one employee, newest
// payment first.
func GetPayrollByEmployee(db *sql.DB, employeeID int64) ([]*models.Payroll, error) {
	query := `SELECT ` + payrollColumns + `
			  FROM payroll
			  WHERE employee_id = $1
			  ORDER BY payment_date DESC, id DESC`
	return queryPayroll(db, query, employeeID)
}

func queryPayroll(db *sql.DB, query string, args ...interface{}) ([]*models.Payroll, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.Payroll{}
	for rows.Next() {
		p := &models.Payroll{}
		if err := scanPayroll(rows, p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func GetPayrollByID(db *sql.DB, id int64) (*models.Payroll, error) {
	p := &models.Payroll{}
	query := `SELECT ` + payrollColumns + ` FROM payroll WHERE id = $1`
	if err := scanPayroll(db.QueryRow(query, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

func CreatePayroll(db *sql.DB, p *models.Payroll) error {
	query := `INSERT INTO payroll (employee_id, period, start_date, end_date,
			  base_amount, bonus, deductions, overtime, total, payment_date,
			  status, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		p.EmployeeID, p.Period, p.StartDate, p.EndDate,
		p.BaseAmount, p.Bonus, p.Deductions, p.Overtime, p.Total,
		p.PaymentDate, p.Status, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
}

func UpdatePayroll(db *sql.DB, p *models.Payroll) error {
	query := `UPDATE payroll
			  SET employee_id = $1, period = $2, start_date = $3, end_date = $4,
			      base_amount = $5, bonus = $6, deductions = $7, overtime = $8,
			      total = $9, payment_date = $10, status = $11, notes = $12
			  WHERE id = $13`

	result, err := db.Exec(query,
		p.EmployeeID, p.Period, p.StartDate, p.EndDate,
		p.BaseAmount, p.Bonus, p.Deductions, p.Overtime, p.Total,
		p.PaymentDate, p.Status, p.Notes, p.ID,
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

func DeletePayroll(db *sql.DB, id int64) error {
	result, err := db.Exec(`DELETE FROM payroll WHERE id = $1`, id)
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
