package main

import (
	"errors"
	"log"

	"github.com/RzkyNT/E-Masjid-sub001/app/config"
	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
	"github.com/RzkyNT/E-Masjid-sub001/app/routes/dashboard"
	"github.com/RzkyNT/E-Masjid-sub001/app/routes/payroll"
	"github.com/RzkyNT/E-Masjid-sub001/app/routes/recaps"
	"github.com/RzkyNT/E-Masjid-sub001/app/routes/spp"
	"github.com/RzkyNT/E-Masjid-sub001/app/routes/transactions"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// errorHandler maps the error taxonomy to HTTP codes: validation problems
// are 400, missing rows 404, duplicate writes 409, everything else a
// logged 500.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var validationErr *models.ValidationError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		code = fiber.StatusNotFound
	case database.IsConflict(err):
		code = fiber.StatusConflict
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	default:
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	defer cfg.DB.Close()

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := database.NewStore(cfg.DB)
	balance := services.NewBalanceService(store)
	obligations := services.NewObligationResolver(store)
	generator := services.NewPayrollGenerator(store)
	recapEngine := services.NewRecapEngine(store, obligations)
	projections := services.NewProjectionEngine(store)

	// Close the previous month automatically on the 1st.
	services.StartScheduler(recapEngine)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	transactions.SetupTransactionsRoutes(app, store, balance)
	spp.SetupSppRoutes(app, store, obligations, balance)
	payroll.SetupPayrollRoutes(app, generator, balance)
	recaps.SetupRecapsRoutes(app, recapEngine)
	dashboard.SetupDashboardRoutes(app, store, balance, obligations, projections)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	log.Println("Server starting on", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}
