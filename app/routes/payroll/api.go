package payroll

import (
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// PreviewAPI computes the payout lines for a period without writing
// anything to the ledger.
func PreviewAPI(c *fiber.Ctx, generator *services.PayrollGenerator) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	lines, err := generator.Preview(month, year)
	if err != nil {
		return err
	}

	var total int64
	for _, line := range lines {
		if !line.Exists {
			total += line.Amount
		}
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"data":         lines,
		"total_to_pay": total,
	})
}

// generateRequest is the payload for a payroll generation batch.
type generateRequest struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	GeneratedBy string `json:"generated_by"`
}

// AutoGenerateAPI materializes payroll for a period. The batch is partial
// by design: per-mentor failures are reported alongside the entries that
// were created.
func AutoGenerateAPI(c *fiber.Ctx, generator *services.PayrollGenerator, balance *services.BalanceService) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := generator.AutoGenerate(req.Month, req.Year, req.GeneratedBy)
	if err != nil {
		return err
	}
	if result.Created > 0 {
		balance.Invalidate()
	}

	status := fiber.StatusOK
	if result.Created > 0 {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
