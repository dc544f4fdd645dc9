package spp

import (
	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupSppRoutes registers the tuition (SPP) API.
func SetupSppRoutes(app *fiber.App, store *database.Store, obligations *services.ObligationResolver, balance *services.BalanceService) {
	api := app.Group("/api/spp")
	api.Get("/status", func(c *fiber.Ctx) error { return GetStatusAPI(c, obligations) })
	api.Get("/outstanding", func(c *fiber.Ctx) error { return GetOutstandingAPI(c, obligations) })
	api.Get("/payments", func(c *fiber.Ctx) error { return ListPaymentsAPI(c, store) })
	api.Post("/payments", func(c *fiber.Ctx) error { return RecordPaymentAPI(c, obligations, balance) })
}
