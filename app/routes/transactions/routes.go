package transactions

import (
	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupTransactionsRoutes registers the ledger API.
func SetupTransactionsRoutes(app *fiber.App, store *database.Store, balance *services.BalanceService) {
	api := app.Group("/api/transactions")
	api.Get("/", func(c *fiber.Ctx) error { return ListTransactionsAPI(c, store) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateTransactionAPI(c, store, balance) })
	api.Get("/balance", func(c *fiber.Ctx) error { return GetBalanceAPI(c, balance) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetTransactionAPI(c, store) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateTransactionAPI(c, store, balance) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteTransactionAPI(c, store, balance) })
}
