package services

import (
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// projectionWindow is the averaging window: the projection uses the mean
// income and expense of up to this many most recent recaps.
const projectionWindow = 6

// ProjectionStore is the slice of storage the projection engine needs.
type ProjectionStore interface {
	RecentRecaps(limit int) ([]*models.MonthlyRecap, error)
	CurrentBalance() (int64, error)
}

// ProjectionEngine forecasts future months from recap history. It is
// read-only: nothing it computes is persisted.
type ProjectionEngine struct {
	store ProjectionStore
}

// NewProjectionEngine returns an engine reading from store.
func NewProjectionEngine(store ProjectionStore) *ProjectionEngine {
	return &ProjectionEngine{store: store}
}

// ProjectedMonth is one forecast month.
type ProjectedMonth struct {
	Month            int   `json:"month"`
	Year             int   `json:"year"`
	ProjectedIncome  int64 `json:"projected_income"`
	ProjectedExpense int64 `json:"projected_expense"`
	Net              int64 `json:"net"`
	ProjectedBalance int64 `json:"projected_balance"`
}

// Project forecasts n months forward. Income and expense are the trailing
// mean over up to the six most recent recaps; the balance chains from the
// latest recap's closing balance, or the live balance when no recap
// exists. With no history the forecast is flat at the live balance.
func (p *ProjectionEngine) Project(n int) ([]ProjectedMonth, error) {
	if n < 1 {
		return nil, &models.ValidationError{Field: "months", Message: "must project at least one month"}
	}

	recaps, err := p.store.RecentRecaps(projectionWindow)
	if err != nil {
		return nil, err
	}

	var avgIncome, avgExpense, balance int64
	var startMonth, startYear int
	if len(recaps) > 0 {
		var income, expense int64
		for _, r := range recaps {
			income += r.TotalIncome
			expense += r.TotalExpense
		}
		avgIncome = income / int64(len(recaps))
		avgExpense = expense / int64(len(recaps))

		latest := recaps[0]
		balance = latest.ClosingBalance
		startMonth, startYear = nextPeriod(latest.Month, latest.Year)
	} else {
		balance, err = p.store.CurrentBalance()
		if err != nil {
			return nil, err
		}
		now := time.Now()
		startMonth, startYear = nextPeriod(int(now.Month()), now.Year())
	}

	months := make([]ProjectedMonth, 0, n)
	month, year := startMonth, startYear
	for i := 0; i < n; i++ {
		net := avgIncome - avgExpense
		balance += net
		months = append(months, ProjectedMonth{
			Month:            month,
			Year:             year,
			ProjectedIncome:  avgIncome,
			ProjectedExpense: avgExpense,
			Net:              net,
			ProjectedBalance: balance,
		})
		month, year = nextPeriod(month, year)
	}
	return months, nil
}

func nextPeriod(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}
