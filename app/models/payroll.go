package models

import "time"

// Payroll represents one pay run for an employee over a period.
// Total is base + bonus + overtime - deductions.
type Payroll struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	Period      string    `json:"period"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	BaseAmount  float64   `json:"base_amount"`
	Bonus       float64   `json:"bonus"`
	Deductions  float64   `json:"deductions"`
	Overtime    float64   `json:"overtime"`
	Total       float64   `json:"total"`
	PaymentDate string    `json:"payment_date"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// ComputedTotal returns the total implied by the component amounts.
func (p *Payroll) ComputedTotal() float64 {
	return p.BaseAmount + p.Bonus + p.Overtime - p.Deductions
}
