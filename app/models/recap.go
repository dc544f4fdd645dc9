package models

import "time"

// MonthlyRecap is the closing snapshot for one calendar month. Recaps chain:
// the opening balance of month M equals the closing balance of month M-1.
type MonthlyRecap struct {
	ID                   string    `json:"id"`
	Month                int       `json:"month"`
	Year                 int       `json:"year"`
	OpeningBalance       int64     `json:"opening_balance"`
	TotalIncome          int64     `json:"total_income"`
	TotalExpense         int64     `json:"total_expense"`
	ClosingBalance       int64     `json:"closing_balance"`
	TuitionIncome        int64     `json:"tuition_income"`
	RegistrationIncome   int64     `json:"registration_income"`
	MentorPaymentExpense int64     `json:"mentor_payment_expense"`
	OperationalExpense   int64     `json:"operational_expense"`
	TotalStudents        int       `json:"total_students"`
	TotalMentors         int       `json:"total_mentors"`
	GeneratedBy          string    `json:"generated_by"`
	GeneratedAt          time.Time `json:"generated_at"`
}

// PeriodTotals aggregates the ledger for one month, grouped by kind with
// the category subtotals a recap snapshots.
type PeriodTotals struct {
	TotalIncome          int64 `json:"total_income"`
	TotalExpense         int64 `json:"total_expense"`
	TuitionIncome        int64 `json:"tuition_income"`
	RegistrationIncome   int64 `json:"registration_income"`
	MentorPaymentExpense int64 `json:"mentor_payment_expense"`
	OperationalExpense   int64 `json:"operational_expense"`
}
