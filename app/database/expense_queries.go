package database

import (
	"database/sql"
	"fmt"

	"github.com/Ahmedhamdy-88/accounting-system/app/models"
)

// ExpenseFilters represents the optional filters on expense listings.
type ExpenseFilters struct {
	ProjectID *int64
	Category  string
}

const expenseColumns = `id, category, project_id, description, amount, date,
	vendor, receipt, payment_method, status, notes, created_at`

func scanExpense(row interface{ Scan(...interface{}) error }, e *models.Expense) error {
	return row.Scan(
		&e.ID, &e.Category, &e.ProjectID, &e.Description, &e.Amount, &e.Date,
		&e.Vendor, &e.Receipt, &e.PaymentMethod, &e.Status, &e.Notes, &e.CreatedAt,
	)
}

// GetAllExpenses lists expenses newest date first, optionally narrowed by
// project or category. The ordering is part of the API contract.
func GetAllExpenses(db *sql.DB, filters ExpenseFilters) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	args := []interface{}{}

	where := ""
	if filters.ProjectID != nil {
		args = append(args, *filters.ProjectID)
		where = fmt.Sprintf(" WHERE project_id = $%d", len(args))
	}
	if filters.Category != "" {
		args = append(args, filters.Category)
		if where == "" {
			where = fmt.Sprintf(" WHERE category = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND category = $%d", len(args))
		}
	}
	query += where + ` ORDER BY date DESC, id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		if err := scanExpense(rows, e); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func GetExpenseByID(db *sql.DB, id int64) (*models.Expense, error) {
	e := &models.Expense{}
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	if err := scanExpense(db.QueryRow(query, id), e); err != nil {
		return nil, err
	}
	return e, nil
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (category, project_id, description, amount,
			  date, vendor, receipt, payment_method, status, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		e.Category, e.ProjectID, e.Description, e.Amount, e.Date,
		e.Vendor, e.Receipt, e.PaymentMethod, e.Status, e.Notes,
	).Scan(&e.ID, &e.CreatedAt)
}

func UpdateExpense(db *sql.DB, e *models.Expense) error {
	query := `UPDATE expenses
			  SET category = $1, project_id = $2, description = $3, amount = $4,
			      date = $5, vendor = $6, receipt = $7, payment_method = $8,
			      status = $9, notes = $10
			  WHERE id = $11`

	result, err := db.Exec(query,
		e.Category, e.ProjectID, e.Description, e.Amount, e.Date,
		e.Vendor, e.Receipt, e.PaymentMethod, e.Status, e.Notes, e.ID,
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

func DeleteExpense(db *sql.DB, id int64) error {
	result, err := db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
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
