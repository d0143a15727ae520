package employees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/routes/auth"
)

func SetupEmployeesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/employees")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetEmployeesAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateEmployeeAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetEmployeeAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateEmployeeAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteEmployeeAPI(c, db) })
}
