package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// TransactionFilter selects a page of ledger entries. All filters are
// AND-combined; Search matches notes case-insensitively.
type TransactionFilter struct {
	Kind     models.TransactionKind
	Category models.TransactionCategory
	Month    int
	Year     int
	Search   string
	Page     int
	PageSize int
}

// Pagination carries the record and page counts the console needs to
// render a pager.
type Pagination struct {
	Page         int `json:"page"`
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
	TotalPages   int `json:"total_pages"`
}

// NewPagination normalizes page/page_size and computes the page count.
func NewPagination(page, pageSize, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return Pagination{Page: page, PageSize: pageSize, TotalRecords: total, TotalPages: pages}
}

// Offset returns the OFFSET for the normalized page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// whereClause builds the WHERE conditions and arguments for the filter.
func (f TransactionFilter) whereClause() (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Kind != "" {
		args = append(args, string(f.Kind))
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, string(f.Category))
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Month > 0 {
		args = append(args, f.Month)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM occurred_on) = $%d", len(args)))
	}
	if f.Year > 0 {
		args = append(args, f.Year)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM occurred_on) = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("notes ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// CreateTransaction validates and persists a new ledger entry, filling in
// the generated id and timestamps.
func (s *Store) CreateTransaction(t *models.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO transactions (kind, category, amount, occurred_on, reference, detail, notes, recorded_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	err := s.db.QueryRow(query,
		string(t.Kind), string(t.Category), t.Amount, t.OccurredOn,
		t.Reference, t.Detail, t.Notes, t.RecordedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if isUniqueViolation(err, "uq_payroll_mentor_period") {
		return ErrDuplicatePayroll
	}
	return err
}

// GetTransactionByID returns one ledger entry or ErrNotFound.
func (s *Store) GetTransactionByID(id string) (*models.Transaction, error) {
	query := `SELECT id, kind, category, amount, occurred_on, reference, detail, notes, recorded_by, created_at, updated_at
			  FROM transactions WHERE id = $1`

	t := &models.Transaction{}
	err := s.db.QueryRow(query, id).Scan(
		&t.ID, &t.Kind, &t.Category, &t.Amount, &t.OccurredOn,
		&t.Reference, &t.Detail, &t.Notes, &t.RecordedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return t, err
}

// UpdateTransaction overwrites an existing ledger entry in place after
// re-validating it. Returns ErrNotFound if the id does not exist.
func (s *Store) UpdateTransaction(t *models.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	query := `UPDATE transactions
			  SET kind = $1, category = $2, amount = $3, occurred_on = $4,
			      reference = $5, detail = $6, notes = $7, updated_at = NOW()
			  WHERE id = $8`

	result, err := s.db.Exec(query,
		string(t.Kind), string(t.Category), t.Amount, t.OccurredOn,
		t.Reference, t.Detail, t.Notes, t.ID,
	)
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

// DeleteTransaction permanently removes a ledger entry.
func (s *Store) DeleteTransaction(id string) error {
	result, err := s.db.Exec(`DELETE FROM transactions WHERE id = $1`, id)
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

// ListTransactions returns one page of ledger entries matching the filter,
// newest first, with pagination metadata.
func (s *Store) ListTransactions(f TransactionFilter) ([]*models.Transaction, Pagination, error) {
	where, args := f.whereClause()

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, Pagination{}, err
	}
	page := NewPagination(f.Page, f.PageSize, total)

	query := `SELECT id, kind, category, amount, occurred_on, reference, detail, notes, recorded_by, created_at, updated_at
			  FROM transactions` + where +
		fmt.Sprintf(" ORDER BY occurred_on DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, page.PageSize, page.Offset())

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, Pagination{}, err
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		t := &models.Transaction{}
		err := rows.Scan(
			&t.ID, &t.Kind, &t.Category, &t.Amount, &t.OccurredOn,
			&t.Reference, &t.Detail, &t.Notes, &t.RecordedBy, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, Pagination{}, err
		}
		transactions = append(transactions, t)
	}
	return transactions, page, rows.Err()
}

// HasPayrollEntry reports whether a mentor_payment entry already exists for
// the mentor, teaching level and period.
func (s *Store) HasPayrollEntry(mentorID, level string, month, year int) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM transactions
				WHERE category = 'mentor_payment'
				AND reference = $1 AND detail = $2
				AND EXTRACT(MONTH FROM occurred_on) = $3
				AND EXTRACT(YEAR FROM occurred_on) = $4
			  )`

	var exists bool
	err := s.db.QueryRow(query, mentorID, level, month, year).Scan(&exists)
	return exists, err
}
