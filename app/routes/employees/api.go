package employees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/database"
	"github.com/Ahmedhamdy-88/accounting-system/app/models"
	"github.com/Ahmedhamdy-88/accounting-system/app/validation"
)

// requiredFields are the fields every new employee must carry.
var requiredFields = []string{"name", "type", "salary", "payment_type", "start_date"}

// employeeFromPayload overlays the fields present in the payload onto e.
// Fields absent from the request keep their current value.
func employeeFromPayload(body validation.Payload, e *models.Employee) error {
	var err error
	if body.Has("name") {
		if e.Name, err = body.String("name"); err != nil {
			return err
		}
	}
	if body.Has("type") {
		if e.Type, err = body.String("type"); err != nil {
			return err
		}
	}
	if body.Has("project_id") {
		if e.ProjectID, err = body.IntPtr("project_id"); err != nil {
			return err
		}
	}
	if body.Has("salary") {
		if e.Salary, err = body.Float("salary"); err != nil {
			return err
		}
	}
	if body.Has("payment_type") {
		if e.PaymentType, err = body.String("payment_type"); err != nil {
			return err
		}
	}
	if body.Has("phone") {
		if e.Phone, err = body.StringPtr("phone"); err != nil {
			return err
		}
	}
	if body.Has("id_number") {
		if e.IDNumber, err = body.StringPtr("id_number"); err != nil {
			return err
		}
	}
	if body.Has("start_date") {
		if e.StartDate, err = body.String("start_date"); err != nil {
			return err
		}
	}
	if body.Has("notes") {
		if e.Notes, err = body.StringPtr("notes"); err != nil {
			return err
		}
	}
	return nil
}

func GetEmployeesAPI(c *fiber.Ctx, db *sql.DB) error {
	employees, err := database.GetAllEmployees(db)
	if err != nil {
		return err
	}
	return c.JSON(employees)
}

func CreateEmployeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}
	if err := body.RequireAll(requiredFields...); err != nil {
		return err
	}

	e := &models.Employee{}
	if err := employeeFromPayload(body, e); err != nil {
		return err
	}
	if err := database.CreateEmployee(db, e); err != nil {
		return err
	}
	return c.Status(201).JSON(e)
}

func GetEmployeeAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid employee id")
	}

	e, err := database.GetEmployeeByID(db, int64(id))
	if err != nil {
		return err
	}
	return c.JSON(e)
}

func UpdateEmployeeAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid employee id")
	}

	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}

	e, err := database.GetEmployeeByID(db, int64(id))
	if err != nil {
		return err
	}
	if err := employeeFromPayload(body, e); err != nil {
		return err
	}
	if err := database.UpdateEmployee(db, e); err != nil {
		return err
	}
	return c.JSON(e)
}

func DeleteEmployeeAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid employee id")
	}

	if err := database.DeleteEmployee(db, int64(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}
