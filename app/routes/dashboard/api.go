package dashboard

import (
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/services"
	"github.com/RzkyNT/E-Masjid-sub001/app/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSummaryAPI returns the live financial snapshot the console landing
// page renders: running balance, current-month totals, outstanding
// tuition and roster counts.
func GetSummaryAPI(c *fiber.Ctx, store *database.Store, balance *services.BalanceService,
	obligations *services.ObligationResolver) error {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	current, err := balance.Current()
	if err != nil {
		return err
	}
	totals, err := store.PeriodTotals(month, year)
	if err != nil {
		return err
	}
	outstanding, totalOutstanding, err := obligations.OutstandingFor("", month, year)
	if err != nil {
		return err
	}
	students, err := store.CountActiveStudents()
	if err != nil {
		return err
	}
	mentors, err := store.CountActiveMentors()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"balance":           current,
			"balance_display":   utils.FormatRupiah(current),
			"month":             month,
			"year":              year,
			"month_income":      totals.TotalIncome,
			"month_expense":     totals.TotalExpense,
			"outstanding_count": len(outstanding),
			"total_outstanding": totalOutstanding,
			"active_students":   students,
			"active_mentors":    mentors,
		},
	})
}

// GetProjectionsAPI forecasts the coming months from recap history.
func GetProjectionsAPI(c *fiber.Ctx, projections *services.ProjectionEngine) error {
	months, err := projections.Project(c.QueryInt("months", 3))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    months,
	})
}
