package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/database"
)

func GetSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	summary, err := database.GetDashboardSummary(db)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
