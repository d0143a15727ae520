package payroll

import (
	"database/sql"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/database"
	"github.com/Ahmedhamdy-88/accounting-system/app/models"
	"github.com/Ahmedhamdy-88/accounting-system/app/validation"
)

var requiredFields = []string{"employee_id", "period", "base_amount", "payment_date"}

// payrollFromPayload overlays the fields present in the payload onto p.
// The total is handled separately so it can be recomputed and checked
// against the amount fields.
func payrollFromPayload(body validation.Payload, p *models.Payroll) error {
	var err error
	if body.Has("employee_id") {
		if p.EmployeeID, err = body.Int("employee_id"); err != nil {
			return err
		}
	}
	if body.Has("period") {
		if p.Period, err = body.String("period"); err != nil {
			return err
		}
	}
	if body.Has("start_date") {
		if p.StartDate, err = body.StringPtr("start_date"); err != nil {
			return err
		}
	}
	if body.Has("end_date") {
		if p.EndDate, err = body.StringPtr("end_date"); err != nil {
			return err
		}
	}
	if body.Has("base_amount") {
		if p.BaseAmount, err = body.Float("base_amount"); err != nil {
			return err
		}
	}
	if body.Has("bonus") {
		if p.Bonus, err = body.FloatOr("bonus", 0); err != nil {
			return err
		}
	}
	if body.Has("deductions") {
		if p.Deductions, err = body.FloatOr("deductions", 0); err != nil {
			return err
		}
	}
	if body.Has("overtime") {
		if p.Overtime, err = body.FloatOr("overtime", 0); err != nil {
			return err
		}
	}
	if body.Has("payment_date") {
		if p.PaymentDate, err = body.String("payment_date"); err != nil {
			return err
		}
	}
	if body.Has("status") {
		if p.Status, err = body.OneOf("status", models.PaymentStatuses); err != nil {
			return err
		}
	}
	if body.Has("notes") {
		if p.Notes, err = body.StringPtr("notes"); err != nil {
			return err
		}
	}
	return nil
}

// resolveTotal recomputes the total from the amount fields. A
// client-supplied total must agree with the computation to the cent.
func resolveTotal(body validation.Payload, p *models.Payroll) error {
	computed := p.ComputedTotal()
	if body.Has("total") {
		supplied, err := body.Float("total")
		if err != nil {
			return err
		}
		if math.Abs(supplied-computed) > 0.01 {
			return &validation.FieldError{
				Field:   "total",
				Message: "does not match base_amount + bonus + overtime - deductions",
			}
		}
		p.Total = supplied
		return nil
	}
	p.Total = computed
	return nil
}

// checkEmployeeExists verifies the payroll record's employee reference at
// write time. A dangling reference is a validation failure, not a 404.
func checkEmployeeExists(db *sql.DB, employeeID int64) error {
	if _, err := database.GetEmployeeByID(db, employeeID); err != nil {
		if err == sql.ErrNoRows {
			return &validation.FieldError{Field: "employee_id", Message: "references a missing employee"}
		}
		return err
	}
	return nil
}

func GetPayrollRecordsAPI(c *fiber.Ctx, db *sql.DB) error {
	if q := c.Query("employee_id"); q != "" {
		employeeID, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return &validation.FieldError{Field: "employee_id", Message: "is not numeric"}
		}
		records, err := database.GetPayrollByEmployee(db, employeeID)
		if err != nil {
			return err
		}
		return c.JSON(records)
	}

	records, err := database.GetAllPayroll(db)
	if err != nil {
		return err
	}
	return c.JSON(records)
}

func CreatePayrollRecordAPI(c *fiber.Ctx, db *sql.DB) error {
	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}
	if err := body.RequireAll(requiredFields...); err != nil {
		return err
	}

	p := &models.Payroll{Status: string(models.PaymentPending)}
	if err := payrollFromPayload(body, p); err != nil {
		return err
	}
	if err := resolveTotal(body, p); err != nil {
		return err
	}
	if err := checkEmployeeExists(db, p.EmployeeID); err != nil {
		return err
	}
	if err := database.CreatePayroll(db, p); err != nil {
		return err
	}
	return c.Status(201).JSON(p)
}

func GetPayrollRecordAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid payroll id")
	}

	p, err := database.GetPayrollByID(db, int64(id))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func UpdatePayrollRecordAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid payroll id")
	}

	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}

	p, err := database.GetPayrollByID(db, int64(id))
	if err != nil {
		return err
	}
	if err := payrollFromPayload(body, p); err != nil {
		return err
	}
	if err := resolveTotal(body, p); err != nil {
		return err
	}
	if body.Has("employee_id") {
		if err := checkEmployeeExists(db, p.EmployeeID); err != nil {
			return err
		}
	}
	if err := database.UpdatePayroll(db, p); err != nil {
		return err
	}
	return c.JSON(p)
}

func DeletePayrollRecordAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid payroll id")
	}

	if err := database.DeletePayroll(db, int64(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Payroll record deleted successfully"})
}
