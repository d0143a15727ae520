package projects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Ahmedhamdy-88/accounting-system/app/database"
	"github.com/Ahmedhamdy-88/accounting-system/app/models"
	"github.com/Ahmedhamdy-88/accounting-system/app/validation"
)

var requiredFields = []string{"name", "type", "total_budget"}

// projectFromPayload overlays the fields present in the payload onto pr.
func projectFromPayload(body validation.Payload, pr *models.Project) error {
	var err error
	if body.Has("name") {
		if pr.Name, err = body.String("name"); err != nil {
			return err
		}
	}
	if body.Has("type") {
		if pr.Type, err = body.String("type"); err != nil {
			return err
		}
	}
	if body.Has("description") {
		if pr.Description, err = body.StringPtr("description"); err != nil {
			return err
		}
	}
	if body.Has("total_budget") {
		if pr.TotalBudget, err = body.Float("total_budget"); err != nil {
			return err
		}
	}
	if body.Has("start_date") {
		if pr.StartDate, err = body.StringPtr("start_date"); err != nil {
			return err
		}
	}
	if body.Has("end_date") {
		if pr.EndDate, err = body.StringPtr("end_date"); err != nil {
			return err
		}
	}
	if body.Has("status") {
		if pr.Status, err = body.OneOf("status", models.ProjectStatuses); err != nil {
			return err
		}
	}
	return nil
}

// breakdownPayload extracts the nested budget_breakdown object, when sent.
func breakdownPayload(body validation.Payload) (validation.Payload, error) {
	v, ok := body["budget_breakdown"]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, &validation.FieldError{Field: "budget_breakdown", Message: "must be an object"}
	}
	return validation.Payload(m), nil
}

// breakdownFromPayload overlays the category amounts present in sub onto bb.
func breakdownFromPayload(sub validation.Payload, bb *models.BudgetBreakdown) error {
	categories := []struct {
		name string
		dest *float64
	}{
		{"artists_salaries", &bb.ArtistsSalaries},
		{"technical_crew", &bb.TechnicalCrew},
		{"equipment", &bb.Equipment},
		{"locations", &bb.Locations},
		{"marketing", &bb.Marketing},
		{"other", &bb.Other},
	}
	for _, cat := range categories {
		if !sub.Has(cat.name) {
			continue
		}
		v, err := sub.Float(cat.name)
		if err != nil {
			return err
		}
		*cat.dest = v
	}
	return nil
}

func GetProjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	projects, err := database.GetAllProjects(db)
	if err != nil {
		return err
	}
	return c.JSON(projects)
}

func CreateProjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}
	if err := body.RequireAll(requiredFields...); err != nil {
		return err
	}

	pr := &models.Project{Status: string(models.ProjectPlanning)}
	if err := projectFromPayload(body, pr); err != nil {
		return err
	}
	if userID, ok := c.Locals("user_id").(int64); ok {
		pr.CreatedBy = &userID
	}

	// Omitted categories default to zero; every project gets exactly one
	// breakdown row.
	bb := &models.BudgetBreakdown{}
	sub, err := breakdownPayload(body)
	if err != nil {
		return err
	}
	if sub != nil {
		if err := breakdownFromPayload(sub, bb); err != nil {
			return err
		}
	}

	if err := database.CreateProject(db, pr, bb); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Project created successfully",
		"project_id": pr.ID,
	})
}

func GetProjectAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid project id")
	}

	pr, err := database.GetProjectByID(db, int64(id))
	if err != nil {
		return err
	}
	return c.JSON(pr)
}

func UpdateProjectAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid project id")
	}

	var body validation.Payload
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(400, "Invalid request body")
	}

	pr, err := database.GetProjectByID(db, int64(id))
	if err != nil {
		return err
	}
	if err := projectFromPayload(body, pr); err != nil {
		return err
	}

	sub, err := breakdownPayload(body)
	if err != nil {
		return err
	}
	var bb *models.BudgetBreakdown
	if sub != nil {
		bb = pr.Breakdown
		if bb == nil {
			bb = &models.BudgetBreakdown{ProjectID: pr.ID}
		}
		if err := breakdownFromPayload(sub, bb); err != nil {
			return err
		}
	}

	if err := database.UpdateProject(db, pr, bb); err != nil {
		return err
	}

	updated, err := database.GetProjectByID(db, int64(id))
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func DeleteProjectAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid project id")
	}

	if err := database.DeleteProject(db, int64(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
