package database

import (
	"database/sql"

	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

const recapColumns = `id, month, year, opening_balance, total_income, total_expense, closing_balance,
	tuition_income, registration_income, mentor_payment_expense, operational_expense,
	total_students, total_mentors, generated_by, generated_at`

func scanRecap(row interface{ Scan(...interface{}) error }) (*models.MonthlyRecap, error) {
	r := &models.MonthlyRecap{}
	err := row.Scan(
		&r.ID, &r.Month, &r.Year, &r.OpeningBalance, &r.TotalIncome, &r.TotalExpense, &r.ClosingBalance,
		&r.TuitionIncome, &r.RegistrationIncome, &r.MentorPaymentExpense, &r.OperationalExpense,
		&r.TotalStudents, &r.TotalMentors, &r.GeneratedBy, &r.GeneratedAt,
	)
	return r, err
}

// GetRecap returns the recap for a period or ErrNotFound.
func (s *Store) GetRecap(month, year int) (*models.MonthlyRecap, error) {
	r, err := scanRecap(s.db.QueryRow(
		`SELECT `+recapColumns+` FROM monthly_recaps WHERE month = $1 AND year = $2`, month, year))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// InsertRecap persists a recap. Without force a second writer for the same
// period receives ErrAlreadyExists from the unique constraint; with force
// the prior row is replaced atomically.
func (s *Store) InsertRecap(r *models.MonthlyRecap, force bool) error {
	query := `INSERT INTO monthly_recaps (month, year, opening_balance, total_income, total_expense, closing_balance,
				tuition_income, registration_income, mentor_payment_expense, operational_expense,
				total_students, total_mentors, generated_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if force {
		query += ` ON CONFLICT (month, year) DO UPDATE SET
				opening_balance = EXCLUDED.opening_balance,
				total_income = EXCLUDED.total_income,
				total_expense = EXCLUDED.total_expense,
				closing_balance = EXCLUDED.closing_balance,
				tuition_income = EXCLUDED.tuition_income,
				registration_income = EXCLUDED.registration_income,
				mentor_payment_expense = EXCLUDED.mentor_payment_expense,
				operational_expense = EXCLUDED.operational_expense,
				total_students = EXCLUDED.total_students,
				total_mentors = EXCLUDED.total_mentors,
				generated_by = EXCLUDED.generated_by,
				generated_at = NOW()`
	}
	query += ` RETURNING id, generated_at`

	err := s.db.QueryRow(query,
		r.Month, r.Year, r.OpeningBalance, r.TotalIncome, r.TotalExpense, r.ClosingBalance,
		r.TuitionIncome, r.RegistrationIncome, r.MentorPaymentExpense, r.OperationalExpense,
		r.TotalStudents, r.TotalMentors, r.GeneratedBy,
	).Scan(&r.ID, &r.GeneratedAt)
	if isUniqueViolation(err, "uq_recap_period") {
		return ErrAlreadyExists
	}
	return err
}

// DeleteRecap removes the recap for a period. Returns ErrNotFound when no
// recap exists.
func (s *Store) DeleteRecap(month, year int) error {
	result, err := s.db.Exec(`DELETE FROM monthly_recaps WHERE month = $1 AND year = $2`, month, year)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// RecapFilter selects a page of recaps, optionally restricted to a year
// or month.
type RecapFilter struct {
	Year     int
	Month    int
	Page     int
	PageSize int
}

// ListRecaps returns recaps matching the filter, newest period first.
func (s *Store) ListRecaps(f RecapFilter) ([]*models.MonthlyRecap, Pagination, error) {
	where := ""
	var args []interface{}
	if f.Year > 0 {
		args = append(args, f.Year)
		where = ` WHERE year = $1`
	}
	if f.Month > 0 {
		args = append(args, f.Month)
		if where == "" {
			where = ` WHERE month = $1`
		} else {
			where += ` AND month = $2`
		}
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM monthly_recaps`+where, args...).Scan(&total); err != nil {
		return nil, Pagination{}, err
	}
	page := NewPagination(f.Page, f.PageSize, total)

	query := `SELECT ` + recapColumns + ` FROM monthly_recaps` + where +
		` ORDER BY year DESC, month DESC` +
		` LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, page.PageSize, page.Offset())

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, Pagination{}, err
	}
	defer rows.Close()

	recaps := []*models.MonthlyRecap{}
	for rows.Next() {
		r, err := scanRecap(rows)
		if err != nil {
			return nil, Pagination{}, err
		}
		recaps = append(recaps, r)
	}
	return recaps, page, rows.Err()
}

// RecentRecaps returns up to limit recaps, newest period first. The
// projection engine averages over this window.
func (s *Store) RecentRecaps(limit int) ([]*models.MonthlyRecap, error) {
	rows, err := s.db.Query(
		`SELECT `+recapColumns+` FROM monthly_recaps ORDER BY year DESC, month DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recaps := []*models.MonthlyRecap{}
	for rows.Next() {
		r, err := scanRecap(rows)
		if err != nil {
			return nil, err
		}
		recaps = append(recaps, r)
	}
	return recaps, rows.Err()
}
