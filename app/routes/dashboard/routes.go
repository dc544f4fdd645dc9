package dashboard

import (
	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes registers the summary and projection API.
func SetupDashboardRoutes(app *fiber.App, store *database.Store, balance *services.BalanceService,
	obligations *services.ObligationResolver, projections *services.ProjectionEngine) {
	api := app.Group("/api/dashboard")
	api.Get("/summary", func(c *fiber.Ctx) error {
		return GetSummaryAPI(c, store, balance, obligations)
	})
	api.Get("/projections", func(c *fiber.Ctx) error { return GetProjectionsAPI(c, projections) })
}
