package expenses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/routes/auth"
)

func SetupExpensesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetExpensesAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateExpenseAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetExpenseAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateExpenseAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteExpenseAPI(c, db) })
}
