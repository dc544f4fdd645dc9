package recaps

import (
	"fmt"

	"github.com/RzkyNT/E-Masjid-sub001/app/services"
	"github.com/RzkyNT/E-Masjid-sub001/app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ExportRecapAPI streams the recap for one period as an Excel workbook.
func ExportRecapAPI(c *fiber.Ctx, engine *services.RecapEngine) error {
	year, month, err := periodParams(c)
	if err != nil {
		return err
	}

	stats, err := engine.Statistics(month, year)
	if err != nil {
		return err
	}
	recap := stats.Recap

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Recap"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{fmt.Sprintf("Monthly Recap %02d/%d", recap.Month, recap.Year), ""},
		{"", ""},
		{"Opening Balance", utils.FormatRupiah(recap.OpeningBalance)},
		{"Total Income", utils.FormatRupiah(recap.TotalIncome)},
		{"Total Expense", utils.FormatRupiah(recap.TotalExpense)},
		{"Closing Balance", utils.FormatRupiah(recap.ClosingBalance)},
		{"", ""},
		{"Tuition Income", utils.FormatRupiah(recap.TuitionIncome)},
		{"Registration Income", utils.FormatRupiah(recap.RegistrationIncome)},
		{"Mentor Payments", utils.FormatRupiah(recap.MentorPaymentExpense)},
		{"Operational Expense", utils.FormatRupiah(recap.OperationalExpense)},
		{"", ""},
		{"Active Students", recap.TotalStudents},
		{"Active Mentors", recap.TotalMentors},
		{"Mentor Hours Taught", stats.MentorHoursTaught},
		{"Outstanding Tuition", utils.FormatRupiah(stats.OutstandingTuition)},
		{"Students Owing", stats.OutstandingCount},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("recap-%d-%02d.xlsx", recap.Year, recap.Month)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
