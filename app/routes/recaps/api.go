package recaps

import (
	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// generateRequest is the payload for closing a month.
type generateRequest struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Force       bool   `json:"force"`
	GeneratedBy string `json:"generated_by"`
}

// GenerateRecapAPI closes a month. Without force a second generation for
// the same period is rejected with a conflict.
func GenerateRecapAPI(c *fiber.Ctx, engine *services.RecapEngine) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	recap, err := engine.Generate(req.Month, req.Year, req.Force, req.GeneratedBy)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    recap,
		"message": "Recap generated successfully",
	})
}

// GetRecapAPI returns the recap for one period.
func GetRecapAPI(c *fiber.Ctx, engine *services.RecapEngine) error {
	year, month, err := periodParams(c)
	if err != nil {
		return err
	}

	recap, err := engine.Get(month, year)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    recap,
	})
}

// ListRecapsAPI returns recaps, newest period first, optionally filtered
// by year or month.
func ListRecapsAPI(c *fiber.Ctx, engine *services.RecapEngine) error {
	filter := database.RecapFilter{
		Year:     c.QueryInt("year", 0),
		Month:    c.QueryInt("month", 0),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 12),
	}

	recaps, pagination, err := engine.List(filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       recaps,
		"pagination": pagination,
	})
}

// DeleteRecapAPI removes the recap for one period.
func DeleteRecapAPI(c *fiber.Ctx, engine *services.RecapEngine) error {
	year, month, err := periodParams(c)
	if err != nil {
		return err
	}

	if err := engine.Delete(month, year); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recap deleted successfully",
	})
}

// GetStatisticsAPI returns the detailed breakdown for a closed month.
func GetStatisticsAPI(c *fiber.Ctx, engine *services.RecapEngine) error {
	year, month, err := periodParams(c)
	if err != nil {
		return err
	}

	stats, err := engine.Statistics(month, year)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func periodParams(c *fiber.Ctx) (year, month int, err error) {
	year, err = c.ParamsInt("year")
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid year")
	}
	month, err = c.ParamsInt("month")
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid month")
	}
	return year, month, nil
}
