package models

import "time"

// Employee represents a crew member on payroll. ProjectID is optional:
// an employee need not be tied to a single production.
type Employee struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	ProjectID   *int64    `json:"project_id"`
	Salary      float64   `json:"salary"`
	PaymentType string    `json:"payment_type"`
	Phone       *string   `json:"phone"`
	IDNumber    *string   `json:"id_number"`
	StartDate   string    `json:"start_date"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
