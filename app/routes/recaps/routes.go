package recaps

import (
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupRecapsRoutes registers the monthly recap API.
func SetupRecapsRoutes(app *fiber.App, engine *services.RecapEngine) {
	api := app.Group("/api/recaps")
	api.Get("/", func(c *fiber.Ctx) error { return ListRecapsAPI(c, engine) })
	api.Post("/", func(c *fiber.Ctx) error { return GenerateRecapAPI(c, engine) })
	api.Get("/:year/:month", func(c *fiber.Ctx) error { return GetRecapAPI(c, engine) })
	api.Delete("/:year/:month", func(c *fiber.Ctx) error { return DeleteRecapAPI(c, engine) })
	api.Get("/:year/:month/statistics", func(c *fiber.Ctx) error { return GetStatisticsAPI(c, engine) })
	api.Get("/:year/:month/export", func(c *fiber.Ctx) error { return ExportRecapAPI(c, engine) })
}
