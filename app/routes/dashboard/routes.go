package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/summary", func(c *fiber.Ctx) error { return GetSummaryAPI(c, db) })
}
