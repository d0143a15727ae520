package payroll

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/routes/auth"
)

func SetupPayrollRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/payroll")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetPayrollRecordsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreatePayrollRecordAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetPayrollRecordAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdatePayrollRecordAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeletePayrollRecordAPI(c, db) })
}
