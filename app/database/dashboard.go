package database

import "database/sql"

// DashboardSummary aggregates the headline figures shown on the dashboard.
type DashboardSummary struct {
	ProjectCount  int64   `json:"project_count"`
	EmployeeCount int64   `json:"employee_count"`
	PayrollCount  int64   `json:"payroll_count"`
	ExpenseCount  int64   `json:"expense_count"`
	TotalBudget   float64 `json:"total_budget"`
	TotalSpent    float64 `json:"total_spent"`
	TotalPayroll  float64 `json:"total_payroll"`
}

// GetDashboardSummary computes entity counts and aggregate spend. Cancelled
// expenses and payroll runs are excluded from the money totals.
func GetDashboardSummary(db *sql.DB) (*DashboardSummary, error) {
	s := &DashboardSummary{}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM projects`, &s.ProjectCount},
		{`SELECT COUNT(*) FROM employees`, &s.EmployeeCount},
		{`SELECT COUNT(*) FROM payroll`, &s.PayrollCount},
		{`SELECT COUNT(*) FROM expenses`, &s.ExpenseCount},
	}
	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	err := db.QueryRow(`SELECT COALESCE(SUM(total_budget), 0) FROM projects`).
		Scan(&s.TotalBudget)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE status != 'cancelled'`).Scan(&s.TotalSpent)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM payroll
		WHERE status != 'cancelled'`).Scan(&s.TotalPayroll)
	if err != nil {
		return nil, err
	}

	return s, nil
}
