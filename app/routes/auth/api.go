package auth

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/database"
)

const sessionCookie = "session_token"

func LoginAPI(c *fiber.Ctx, db *sql.DB) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByUsername(db, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateSessionToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user": fiber.Map{
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logout successful"})
}

func CurrentUserAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"username": c.Locals("username"),
		"role":     c.Locals("role"),
	})
}

// CreateAdminAPI seeds the default administrator account. Development-only
// bootstrap; idempotent.
func CreateAdminAPI(c *fiber.Ctx, db *sql.DB, username, password string) error {
	created, err := database.SeedAdmin(db, username, password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create admin user"})
	}
	if !created {
		return c.JSON(fiber.Map{"message": "Admin user already exists"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Admin user created"})
}
