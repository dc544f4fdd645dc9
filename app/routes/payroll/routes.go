package payroll

import (
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupPayrollRoutes registers the mentor payroll API.
func SetupPayrollRoutes(app *fiber.App, generator *services.PayrollGenerator, balance *services.BalanceService) {
	api := app.Group("/api/payroll")
	api.Get("/preview", func(c *fiber.Ctx) error { return PreviewAPI(c, generator) })
	api.Post("/generate", func(c *fiber.Ctx) error { return AutoGenerateAPI(c, generator, balance) })
}
