package spp

import (
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetStatusAPI reports the derived paid state for one student and period.
func GetStatusAPI(c *fiber.Ctx, obligations *services.ObligationResolver) error {
	studentID := c.Query("student_id")
	if studentID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "student_id is required")
	}
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	status, err := obligations.StatusFor(studentID, month, year)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    status,
	})
}

// GetOutstandingAPI lists active students still owing tuition for the
// period, optionally filtered by level, with the total outstanding sum.
func GetOutstandingAPI(c *fiber.Ctx, obligations *services.ObligationResolver) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	outstanding, total, err := obligations.OutstandingFor(c.Query("level"), month, year)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"data":              outstanding,
		"total_outstanding": total,
	})
}

// ListPaymentsAPI lists the SPP payments recorded for a period.
func ListPaymentsAPI(c *fiber.Ctx, store *database.Store) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	payments, err := store.ListSppPayments(month, year)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payments,
	})
}

// RecordPaymentAPI settles a student's tuition for a period.
func RecordPaymentAPI(c *fiber.Ctx, obligations *services.ObligationResolver, balance *services.BalanceService) error {
	var params services.RecordPaymentParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	payment, err := obligations.RecordPayment(params)
	if err != nil {
		return err
	}
	balance.Invalidate()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payment,
		"message": "Payment recorded successfully",
	})
}
