package database

import (
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// signedSum folds income as positive and expense as negative.
const signedSum = `COALESCE(SUM(CASE WHEN kind = 'income' THEN amount ELSE -amount END), 0)`

// CurrentBalance folds the signed amounts of every live ledger entry.
// This is the reference balance; the cached service layer must always
// agree with it.
func (s *Store) CurrentBalance() (int64, error) {
	var balance int64
	err := s.db.QueryRow(`SELECT ` + signedSum + ` FROM transactions`).Scan(&balance)
	return balance, err
}

// BalanceBefore folds the ledger up to, but not including, the given date.
// Used as the opening-balance fallback when no prior recap exists.
func (s *Store) BalanceBefore(date time.Time) (int64, error) {
	var balance int64
	err := s.db.QueryRow(`SELECT `+signedSum+` FROM transactions WHERE occurred_on < $1`, date).Scan(&balance)
	return balance, err
}

// PeriodTotals aggregates one calendar month of the ledger by kind, with
// the category subtotals a recap snapshots.
func (s *Store) PeriodTotals(month, year int) (models.PeriodTotals, error) {
	query := `SELECT
				COALESCE(SUM(CASE WHEN kind = 'income' THEN amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN kind = 'expense' THEN amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN category = 'tuition' THEN amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN category = 'registration' THEN amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN category = 'mentor_payment' THEN amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN category = 'operational' THEN amount ELSE 0 END), 0)
			  FROM transactions
			  WHERE EXTRACT(MONTH FROM occurred_on) = $1
			  AND EXTRACT(YEAR FROM occurred_on) = $2`

	var t models.PeriodTotals
	err := s.db.QueryRow(query, month, year).Scan(
		&t.TotalIncome, &t.TotalExpense,
		&t.TuitionIncome, &t.RegistrationIncome,
		&t.MentorPaymentExpense, &t.OperationalExpense,
	)
	return t, err
}
