package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the session endpoints. The admin credentials are
// what /api/create-admin seeds.
func SetupAuthRoutes(app *fiber.App, db *sql.DB, adminUsername, adminPassword string) {
	app.Post("/api/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, db)
	})
	app.Post("/api/logout", LogoutAPI)
	app.Post("/api/create-admin", func(c *fiber.Ctx) error {
		return CreateAdminAPI(c, db, adminUsername, adminPassword)
	})

	app.Get("/api/current-user", AuthMiddleware, CurrentUserAPI)
}

// AuthMiddleware validates the session token and sets the principal on the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(sessionCookie)

	// Fall back to an Authorization header for non-browser clients.
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Not logged in"})
	}

	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid session"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)
	c.Locals("role", claims.Role)

	return c.Next()
}
