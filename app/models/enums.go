package models

// UserRole defines the possible roles for a user account.
type UserRole string

const (
	AdminRole   UserRole = "admin"
	DefaultRole UserRole = "user"
)

// ProjectStatus defines the lifecycle states of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// PaymentStatus defines the settlement states shared by payroll records and expenses.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentApproved  PaymentStatus = "approved"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// ProjectStatuses lists the accepted project status values.
var ProjectStatuses = []string{
	string(ProjectPlanning),
	string(ProjectActive),
	string(ProjectCompleted),
	string(ProjectCancelled),
}

// PaymentStatuses lists the accepted payroll/expense status values.
var PaymentStatuses = []string{
	string(PaymentPending),
	string(PaymentApproved),
	string(PaymentPaid),
	string(PaymentCancelled),
}
