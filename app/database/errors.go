package database

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors for the conflict and not-found taxonomy. Handlers map
// these to HTTP status codes at the edge.
var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists means a recap for the period already exists and
	// force was not set.
	ErrAlreadyExists = errors.New("recap already exists for this period")
	// ErrAlreadyPaid means an SPP payment for the (student, month, year)
	// triple already exists.
	ErrAlreadyPaid = errors.New("tuition already paid for this period")
	// ErrDuplicatePayroll means a payroll entry for the
	// (mentor, level, period) triple already exists.
	ErrDuplicatePayroll = errors.New("payroll already generated for this mentor and period")
)

// IsConflict reports whether err is one of the duplicate-write sentinels.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrAlreadyPaid) ||
		errors.Is(err, ErrDuplicatePayroll)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally on a specific constraint or index name.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
