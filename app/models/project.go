package models

import "time"

// Project represents a film/media production with its overall budget.
// SpentAmount is computed from the project's expenses at read time.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	TotalBudget float64   `json:"total_budget"`
	SpentAmount float64   `json:"spent_amount"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Status      string    `json:"status"`
	CreatedBy   *int64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	Breakdown *BudgetBreakdown `json:"budget_breakdown,omitempty"`
}

// BudgetBreakdown splits a project's budget across spending categories.
// Every project owns exactly one breakdown, created with it.
type BudgetBreakdown struct {
	ID              int64   `json:"id"`
	ProjectID       int64   `json:"project_id"`
	ArtistsSalaries float64 `json:"artists_salaries"`
	TechnicalCrew   float64 `json:"technical_crew"`
	Equipment       float64 `json:"equipment"`
	Locations       float64 `json:"locations"`
	Marketing       float64 `json:"marketing"`
	Other           float64 `json:"other"`
}
