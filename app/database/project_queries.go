package database

import (
	"database/sql"

	"github.com/Ahmedhamdy-88/accounting-system/app/models"
)

// spentAmountExpr derives a project's spend from its recorded expenses at
// read time; cancelled expenses do not count. The stored spent_amount
// column is intentionally ignored so the figure can never go stale.
const spentAmountExpr = `COALESCE((SELECT SUM(e.amount) FROM expenses e
	WHERE e.project_id = p.id AND e.status != 'cancelled'), 0)`

const projectColumns = `p.id, p.name, p.type, p.description, p.total_budget,
	` + spentAmountExpr + `, p.start_date, p.end_date, p.status, p.created_by,
	p.created_at`

func scanProject(row interface{ Scan(...interface{}) error }, pr *models.Project) error {
	return row.Scan(
		&pr.ID, &pr.Name, &pr.Type, &pr.Description, &pr.TotalBudget,
		&pr.SpentAmount, &pr.StartDate, &pr.EndDate, &pr.Status,
		&pr.CreatedBy, &pr.CreatedAt,
	)
}

// GetAllProjects lists projects newest first. The ordering is part of the
// API contract.
func GetAllProjects(db *sql.DB) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + `
			  FROM projects p
			  ORDER BY p.created_at DESC, p.id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		pr := &models.Project{}
		if err := scanProject(rows, pr); err != nil {
			return nil, err
		}
		projects = append(projects, pr)
	}
	return projects, rows.Err()
}

// GetProjectByID loads a project together with its budget breakdown.
func GetProjectByID(db *sql.DB, id int64) (*models.Project, error) {
	pr := &models.Project{}
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`
	if err := scanProject(db.QueryRow(query, id), pr); err != nil {
		return nil, err
	}

	bb := &models.BudgetBreakdown{}
	err := db.QueryRow(
		`SELECT id, project_id, artists_salaries, technical_crew, equipment,
		 locations, marketing, other
		 FROM budget_breakdown WHERE project_id = $1`, id,
	).Scan(
		&bb.ID, &bb.ProjectID, &bb.ArtistsSalaries, &bb.TechnicalCrew,
		&bb.Equipment, &bb.Locations, &bb.Marketing, &bb.Other,
	)
	if err == nil {
		pr.Breakdown = bb
	} else if err != sql.ErrNoRows {
		return nil, err
	}
	return pr, nil
}

// CreateProject inserts the project and its budget breakdown in a single
// transaction so a failed breakdown insert never leaves an orphaned project.
func CreateProject(db *sql.DB, pr *models.Project, bb *models.BudgetBreakdown) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO projects (name, type, description, total_budget,
		 start_date, end_date, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		pr.Name, pr.Type, pr.Description, pr.TotalBudget,
		pr.StartDate, pr.EndDate, pr.Status, pr.CreatedBy,
	).Scan(&pr.ID, &pr.CreatedAt)
	if err != nil {
		return err
	}

	bb.ProjectID = pr.ID
	err = tx.QueryRow(
		`INSERT INTO budget_breakdown (project_id, artists_salaries,
		 technical_crew, equipment, locations, marketing, other)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		bb.ProjectID, bb.ArtistsSalaries, bb.TechnicalCrew,
		bb.Equipment, bb.Locations, bb.Marketing, bb.Other,
	).Scan(&bb.ID)
	if err != nil {
		return err
	}

	pr.Breakdown = bb
	return tx.Commit()
}

// UpdateProject persists project fields and, when bb is non-nil, the budget
// breakdown as well, atomically.
func UpdateProject(db *sql.DB, pr *models.Project, bb *models.BudgetBreakdown) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE projects
		 SET name = $1, type = $2, description = $3, total_budget = $4,
		     start_date = $5, end_date = $6, status = $7
		 WHERE id = $8`,
		pr.Name, pr.Type, pr.Description, pr.TotalBudget,
		pr.StartDate, pr.EndDate, pr.Status, pr.ID,
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

	if bb != nil {
		_, err = tx.Exec(
			`UPDATE budget_breakdown
			 SET artists_salaries = $1, technical_crew = $2, equipment = $3,
			     locations = $4, marketing = $5, other = $6
			 WHERE project_id = $7`,
			bb.ArtistsSalaries, bb.TechnicalCrew, bb.Equipment,
			bb.Locations, bb.Marketing, bb.Other, pr.ID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteProject removes a project, its budget breakdown, and detaches any
// employees or expenses still pointing at it, in one transaction.
func DeleteProject(db *sql.DB, id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM budget_breakdown WHERE project_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE employees SET project_id = NULL WHERE project_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE expenses SET project_id = NULL WHERE project_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM projects WHERE id = $1`, id)
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

	return tx.Commit()
}
