package projects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/routes/auth"
)

func SetupProjectsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/projects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetProjectsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateProjectAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetProjectAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateProjectAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteProjectAPI(c, db) })
}
