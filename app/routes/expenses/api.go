package expenses

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/database"
	"github.com/Ahmedhamdy-88/accounting-system/app/models"
	"github.com/Ahmedhamdy-88/accounting-system/app/validation"
)

var requiredFields = []string{"category", "description", "amount", "date", "payment_method"}

// expenseFromPayload overlays the fields present in the payload onto e.
func expenseFromPayload(body validation.Payload, e *models.Expense) error {
	var err error
	if body.Has("category") {
		if e.Category, err = body.String("category"); err != nil {
			return err
		}
	}
	if body.Has("project_id") {
		if e.ProjectID, err = body.IntPtr("project_id"); err != nil {
			return err
		}
	}
	if body.Has("description") {
		if e.Description, err = body.String("description"); err != nil {
			return err
		}
	}
	if body.Has("amount") {
		if e.Amount, err = body.Float("amount"); err != nil {
			return err
		}
	}
	if body.Has("date") {
		if e.Date, err = body.String("date"); err != nil {
			return err
		}
	}
	if body.Has("vendor") {
		if e.Vendor, err = body.StringPtr("vendor"); err != nil {
			return err
		}
	}
	if body.Has("receipt") {
		if e.Receipt, err = body.StringPtr("receipt"); err != nil {
			return err
		}
	}
	if body.Has("payment_method") {
		if e.PaymentMethod, err = body.String("payment_method"); err != nil {
			return err
		}
	}
	if body.Has("status") {
		if e.Status, err = body.OneOf("status", models.PaymentStatuses); err != nil {
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

func GetExpensesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.ExpenseFilters{Category: c.Query("category")}

	if q := c.Query("project_id"); q != "" {
		projectID, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return &validation.FieldError{Field: "project_id", Message: "is not numeric"}
		}
		filters.ProjectID = &projectID
	}

	expenses, err := database.GetAllExpenses(db, filters)
	if err != nil {
		return err
	}
	return c.JSON(expenses)
}

func CreateExpenseAPI(c *fiber.Ctx, db *sql.DB) error {
	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}
	if err := body.RequireAll(requiredFields...); err != nil {
		return err
	}

	e := &models.Expense{Status: string(models.PaymentPending)}
	if err := expenseFromPayload(body, e); err != nil {
		return err
	}
	if err := database.CreateExpense(db, e); err != nil {
		return err
	}
	return c.Status(201).JSON(e)
}

func GetExpenseAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid expense id")
	}

	e, err := database.GetExpenseByID(db, int64(id))
	if err != nil {
		return err
	}
	return c.JSON(e)
}

func UpdateExpenseAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid expense id")
	}

	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}

	e, err := database.GetExpenseByID(db, int64(id))
	if err != nil {
		return err
	}
	if err := expenseFromPayload(body, e); err != nil {
		return err
	}
	if err := database.UpdateExpense(db, e); err != nil {
		return err
	}
	return c.JSON(e)
}

func DeleteExpenseAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid expense id")
	}

	if err := database.DeleteExpense(db, int64(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
