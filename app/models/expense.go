package models

import "time"

// Expense represents a single spend entry, optionally attributed to a project.
// Receipt holds a reference/path to the receipt document, not its contents.
type Expense struct {
	ID            int64     `json:"id"`
	Category      string    `json:"category"`
	ProjectID     *int64    `json:"project_id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Date          string    `json:"date"`
	Vendor        *string   `json:"vendor"`
	Receipt       *string   `json:"receipt"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
