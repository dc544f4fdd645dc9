package services

import (
	"fmt"
	"log"
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
	"github.com/google/uuid"
)

// PayrollStore is the slice of storage the payroll generator needs.
type PayrollStore interface {
	MentorAttendanceTotals(month, year int) ([]models.MentorHours, error)
	GetMentor(id string) (*models.Mentor, error)
	HasPayrollEntry(mentorID, level string, month, year int) (bool, error)
	CreateTransaction(t *models.Transaction) error
}

// PayrollGenerator materializes mentor payroll from attendance. Each
// (mentor, level) aggregate of present hours becomes one mentor_payment
// expense entry, priced at the mentor's hourly rate at generation time.
type PayrollGenerator struct {
	store PayrollStore
}

// NewPayrollGenerator returns a generator reading and writing through
// store.
func NewPayrollGenerator(store PayrollStore) *PayrollGenerator {
	return &PayrollGenerator{store: store}
}

// PayrollError is one mentor-level failure inside a batch.
type PayrollError struct {
	MentorID string `json:"mentor_id"`
	Level    string `json:"level,omitempty"`
	Message  string `json:"message"`
}

// PayrollResult reports one generation batch. A batch is explicitly
// partial: failures are collected per mentor and never roll back the
// entries already created.
type PayrollResult struct {
	BatchID     string         `json:"batch_id"`
	Month       int            `json:"month"`
	Year        int            `json:"year"`
	Created     int            `json:"created"`
	Skipped     int            `json:"skipped"`
	TotalAmount int64          `json:"total_amount"`
	Errors      []PayrollError `json:"errors"`
}

// PayrollLine is one computed (mentor, level) payout, returned by Preview
// before anything is written.
type PayrollLine struct {
	MentorID   string `json:"mentor_id"`
	MentorName string `json:"mentor_name"`
	Level      string `json:"level"`
	Hours      int    `json:"hours"`
	HourlyRate int64  `json:"hourly_rate"`
	Amount     int64  `json:"amount"`
	Exists     bool   `json:"exists"`
}

// Preview computes the payout lines for a period without writing anything.
func (g *PayrollGenerator) Preview(month, year int) ([]PayrollLine, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	totals, err := g.store.MentorAttendanceTotals(month, year)
	if err != nil {
		return nil, err
	}

	lines := []PayrollLine{}
	for _, agg := range totals {
		mentor, err := g.store.GetMentor(agg.MentorID)
		if err != nil {
			continue
		}
		exists, err := g.store.HasPayrollEntry(agg.MentorID, agg.Level, month, year)
		if err != nil {
			return nil, err
		}
		lines = append(lines, PayrollLine{
			MentorID:   mentor.ID,
			MentorName: mentor.Name,
			Level:      agg.Level,
			Hours:      agg.Hours,
			HourlyRate: mentor.HourlyRate,
			Amount:     int64(agg.Hours) * mentor.HourlyRate,
			Exists:     exists,
		})
	}
	return lines, nil
}

// AutoGenerate creates the payroll entries for a period. Repeated
// invocation is a no-op for aggregates already materialized: an existing
// (mentor, level, period) entry is skipped, and the storage-level unique
// index catches the race between two concurrent generators.
func (g *PayrollGenerator) AutoGenerate(month, year int, generatedBy string) (*PayrollResult, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	totals, err := g.store.MentorAttendanceTotals(month, year)
	if err != nil {
		return nil, err
	}

	result := &PayrollResult{
		BatchID: uuid.New().String(),
		Month:   month,
		Year:    year,
		Errors:  []PayrollError{},
	}
	periodEnd := endOfMonth(month, year)

	for _, agg := range totals {
		mentor, err := g.store.GetMentor(agg.MentorID)
		if err != nil {
			result.Errors = append(result.Errors, PayrollError{
				MentorID: agg.MentorID, Level: agg.Level, Message: fmt.Sprintf("mentor lookup failed: %v", err)})
			continue
		}
		if !mentor.IsActive {
			result.Errors = append(result.Errors, PayrollError{
				MentorID: agg.MentorID, Level: agg.Level, Message: "mentor is inactive"})
			continue
		}
		if mentor.HourlyRate <= 0 {
			result.Errors = append(result.Errors, PayrollError{
				MentorID: agg.MentorID, Level: agg.Level, Message: "mentor has no hourly rate configured"})
			continue
		}

		exists, err := g.store.HasPayrollEntry(agg.MentorID, agg.Level, month, year)
		if err != nil {
			result.Errors = append(result.Errors, PayrollError{
				MentorID: agg.MentorID, Level: agg.Level, Message: fmt.Sprintf("duplicate check failed: %v", err)})
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		amount := int64(agg.Hours) * mentor.HourlyRate
		entry := &models.Transaction{
			Kind:       models.KindExpense,
			Category:   models.CategoryMentorPayment,
			Amount:     amount,
			OccurredOn: periodEnd,
			Reference:  &mentor.ID,
			Detail:     agg.Level,
			Notes: fmt.Sprintf("Payroll %02d/%d %s (%s): %d hours x %d, batch %s",
				month, year, mentor.Name, agg.Level, agg.Hours, mentor.HourlyRate, result.BatchID),
			RecordedBy: generatedBy,
		}
		if err := g.store.CreateTransaction(entry); err != nil {
			if err == database.ErrDuplicatePayroll {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, PayrollError{
				MentorID: agg.MentorID, Level: agg.Level, Message: fmt.Sprintf("failed to create entry: %v", err)})
			continue
		}
		result.Created++
		result.TotalAmount += amount
	}

	log.Printf("Payroll generation %02d/%d completed: %d created, %d skipped, %d errors",
		month, year, result.Created, result.Skipped, len(result.Errors))
	return result, nil
}

// endOfMonth returns the last day of the month, the date payroll entries
// are booked on so period totals pick them up.
func endOfMonth(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
}
