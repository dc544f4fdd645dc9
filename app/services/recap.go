package services

import (
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// RecapStore is the slice of storage the recap engine needs.
type RecapStore interface {
	GetRecap(month, year int) (*models.MonthlyRecap, error)
	InsertRecap(r *models.MonthlyRecap, force bool) error
	DeleteRecap(month, year int) error
	ListRecaps(f database.RecapFilter) ([]*models.MonthlyRecap, database.Pagination, error)
	PeriodTotals(month, year int) (models.PeriodTotals, error)
	BalanceBefore(date time.Time) (int64, error)
	CountActiveStudents() (int, error)
	CountActiveMentors() (int, error)
	StudentsByLevel() ([]models.LevelCount, error)
	MentorHoursTaught(month, year int) (int, error)
}

// RecapEngine closes calendar months. Each recap snapshots opening and
// closing balances so periods chain: month M opens with month M-1's
// closing balance, falling back to the ledger balance at period start
// when no prior recap exists.
type RecapEngine struct {
	store       RecapStore
	obligations *ObligationResolver
}

// NewRecapEngine returns an engine reading and writing through store.
// The obligation resolver feeds outstanding totals into statistics.
func NewRecapEngine(store RecapStore, obligations *ObligationResolver) *RecapEngine {
	return &RecapEngine{store: store, obligations: obligations}
}

// Generate closes one month. Without force a second generation for the
// same period fails with ErrAlreadyExists and leaves the stored recap
// untouched; with force the row is replaced atomically. The opening
// balance is resolved before totals so a forced forward regeneration
// cannot alter history.
func (e *RecapEngine) Generate(month, year int, force bool, generatedBy string) (*models.MonthlyRecap, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	if !force {
		if _, err := e.store.GetRecap(month, year); err == nil {
			return nil, database.ErrAlreadyExists
		} else if err != database.ErrNotFound {
			return nil, err
		}
	}

	opening, err := e.openingBalance(month, year)
	if err != nil {
		return nil, err
	}
	totals, err := e.store.PeriodTotals(month, year)
	if err != nil {
		return nil, err
	}
	students, err := e.store.CountActiveStudents()
	if err != nil {
		return nil, err
	}
	mentors, err := e.store.CountActiveMentors()
	if err != nil {
		return nil, err
	}

	recap := &models.MonthlyRecap{
		Month:                month,
		Year:                 year,
		OpeningBalance:       opening,
		TotalIncome:          totals.TotalIncome,
		TotalExpense:         totals.TotalExpense,
		ClosingBalance:       opening + totals.TotalIncome - totals.TotalExpense,
		TuitionIncome:        totals.TuitionIncome,
		RegistrationIncome:   totals.RegistrationIncome,
		MentorPaymentExpense: totals.MentorPaymentExpense,
		OperationalExpense:   totals.OperationalExpense,
		TotalStudents:        students,
		TotalMentors:         mentors,
		GeneratedBy:          generatedBy,
	}
	if err := e.store.InsertRecap(recap, force); err != nil {
		return nil, err
	}
	return recap, nil
}

// openingBalance resolves the chain: prior month's closing balance when a
// recap exists, else the ledger fold up to the period start.
func (e *RecapEngine) openingBalance(month, year int) (int64, error) {
	prevMonth, prevYear := month-1, year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, year-1
	}

	prev, err := e.store.GetRecap(prevMonth, prevYear)
	if err == nil {
		return prev.ClosingBalance, nil
	}
	if err != database.ErrNotFound {
		return 0, err
	}
	return e.store.BalanceBefore(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
}

// Get returns the recap for a period or ErrNotFound.
func (e *RecapEngine) Get(month, year int) (*models.MonthlyRecap, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	return e.store.GetRecap(month, year)
}

// List returns recaps matching the filter, newest period first.
func (e *RecapEngine) List(f database.RecapFilter) ([]*models.MonthlyRecap, database.Pagination, error) {
	return e.store.ListRecaps(f)
}

// Delete removes the recap for a period.
func (e *RecapEngine) Delete(month, year int) error {
	if err := validatePeriod(month, year); err != nil {
		return err
	}
	return e.store.DeleteRecap(month, year)
}

// RecapStatistics combines a stored recap with live roster, attendance and
// obligation aggregates for reporting.
type RecapStatistics struct {
	Recap              *models.MonthlyRecap `json:"recap"`
	StudentsByLevel    []models.LevelCount  `json:"students_by_level"`
	MentorHoursTaught  int                  `json:"mentor_hours_taught"`
	OutstandingCount   int                  `json:"outstanding_count"`
	OutstandingTuition int64                `json:"outstanding_tuition"`
}

// Statistics returns the detailed breakdown for a closed month.
func (e *RecapEngine) Statistics(month, year int) (*RecapStatistics, error) {
	recap, err := e.Get(month, year)
	if err != nil {
		return nil, err
	}

	byLevel, err := e.store.StudentsByLevel()
	if err != nil {
		return nil, err
	}
	hours, err := e.store.MentorHoursTaught(month, year)
	if err != nil {
		return nil, err
	}
	outstanding, total, err := e.obligations.OutstandingFor("", month, year)
	if err != nil {
		return nil, err
	}

	return &RecapStatistics{
		Recap:              recap,
		StudentsByLevel:    byLevel,
		MentorHoursTaught:  hours,
		OutstandingCount:   len(outstanding),
		OutstandingTuition: total,
	}, nil
}
