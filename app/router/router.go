// Package router assembles the fiber application: middleware, the central
// error boundary, and every route group. main and the tests share it.
package router

import (
	"database/sql"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Ahmedhamdy-88/accounting-system/app/config"
	"github.com/Ahmedhamdy-88/accounting-system/app/routes/auth"
	"github.com/Ahmedhamdy-88/accounting-system/app/routes/dashboard"
	"github.com/Ahmedhamdy-88/accounting-system/app/routes/employees"
	"github.com/Ahmedhamdy-88/accounting-system/app/routes/expenses"
	"github.com/Ahmedhamdy-88/accounting-system/app/routes/payroll"
	"github.com/Ahmedhamdy-88/accounting-system/app/routes/projects"
	"github.com/Ahmedhamdy-88/accounting-system/app/validation"
)

// errorHandler is the single boundary that maps errors to HTTP statuses:
// field validation failures to 400, unknown ids to 404, and anything
// unexpected to 500 with the fault logged server-side. No request fault
// escapes this handler.
func errorHandler(c *fiber.Ctx, err error) error {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return c.Status(400).JSON(fiber.Map{"error": fieldErr.Error()})
	}

	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"error": err.Error()})
}

// New builds the application with all routes registered against db.
func New(cfg *config.Config, db *sql.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "accounting-system",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Static dashboard pages
	app.Static("/", cfg.StaticDir)

	auth.SetupAuthRoutes(app, db, cfg.AdminUsername, cfg.AdminPassword)
	projects.SetupProjectsRoutes(app, db)
	employees.SetupEmployeesRoutes(app, db)
	payroll.SetupPayrollRoutes(app, db)
	expenses.SetupExpensesRoutes(app, db)
	dashboard.SetupDashboardRoutes(app, db)

	return app
}
