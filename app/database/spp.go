package database

import (
	"database/sql"
	"fmt"

	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// GetSppPayment returns the unique payment for a student and period, or
// ErrNotFound when the period is unpaid.
func (s *Store) GetSppPayment(studentID string, month, year int) (*models.SppPayment, error) {
	query := `SELECT id, student_id, month, year, amount, method, notes, receipt_no, transaction_id, recorded_by, paid_at, created_at
			  FROM spp_payments
			  WHERE student_id = $1 AND month = $2 AND year = $3`

	p := &models.SppPayment{}
	err := s.db.QueryRow(query, studentID, month, year).Scan(
		&p.ID, &p.StudentID, &p.Month, &p.Year, &p.Amount, &p.Method,
		&p.Notes, &p.ReceiptNo, &p.TransactionID, &p.RecordedBy, &p.PaidAt, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

// PaidStudentIDs returns the set of students with a payment row for the
// period. The obligation resolver subtracts this set from the active
// roster to derive outstanding dues.
func (s *Store) PaidStudentIDs(month, year int) (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT student_id FROM spp_payments WHERE month = $1 AND year = $2`, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paid := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		paid[id] = true
	}
	return paid, rows.Err()
}

// CreateSppPayment inserts the payment row and its tuition income ledger
// entry in one database transaction. Either both rows land or neither
// does; a duplicate period surfaces as ErrAlreadyPaid with no partial
// write. The created ledger entry id is linked back onto the payment.
func (s *Store) CreateSppPayment(p *models.SppPayment, entry *models.Transaction) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryPayment := `INSERT INTO spp_payments (student_id, month, year, amount, method, notes, receipt_no, recorded_by)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
					 RETURNING id, paid_at, created_at`
	err = tx.QueryRow(queryPayment,
		p.StudentID, p.Month, p.Year, p.Amount, string(p.Method), p.Notes, p.ReceiptNo, p.RecordedBy,
	).Scan(&p.ID, &p.PaidAt, &p.CreatedAt)
	if isUniqueViolation(err, "uq_spp_student_period") {
		return ErrAlreadyPaid
	}
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}

	queryEntry := `INSERT INTO transactions (kind, category, amount, occurred_on, reference, detail, notes, recorded_by)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				   RETURNING id, created_at, updated_at`
	err = tx.QueryRow(queryEntry,
		string(entry.Kind), string(entry.Category), entry.Amount, entry.OccurredOn,
		entry.Reference, entry.Detail, entry.Notes, entry.RecordedBy,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry: %v", err)
	}

	if _, err := tx.Exec(`UPDATE spp_payments SET transaction_id = $1 WHERE id = $2`, entry.ID, p.ID); err != nil {
		return fmt.Errorf("failed to link ledger entry: %v", err)
	}
	p.TransactionID = &entry.ID

	return tx.Commit()
}

// ListSppPayments returns all payments for a period with student info,
// newest first.
func (s *Store) ListSppPayments(month, year int) ([]*models.SppPayment, error) {
	query := `SELECT p.id, p.student_id, p.month, p.year, p.amount, p.method, p.notes,
			  p.receipt_no, p.transaction_id, p.recorded_by, p.paid_at, p.created_at,
			  s.name, s.level, s.monthly_fee
			  FROM spp_payments p
			  JOIN students s ON p.student_id = s.id
			  WHERE p.month = $1 AND p.year = $2
			  ORDER BY p.paid_at DESC`

	rows, err := s.db.Query(query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.SppPayment{}
	for rows.Next() {
		p := &models.SppPayment{Student: &models.Student{}}
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Month, &p.Year, &p.Amount, &p.Method, &p.Notes,
			&p.ReceiptNo, &p.TransactionID, &p.RecordedBy, &p.PaidAt, &p.CreatedAt,
			&p.Student.Name, &p.Student.Level, &p.Student.MonthlyFee,
		)
		if err != nil {
			return nil, err
		}
		p.Student.ID = p.StudentID
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
