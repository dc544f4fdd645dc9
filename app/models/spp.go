package models

import "time"

// SppPayment records one tuition (SPP) payment for a student and period.
// At most one row may exist per (student, month, year); the existence of
// the row is what makes the period "paid".
type SppPayment struct {
	ID            string        `json:"id"`
	StudentID     string        `json:"student_id"`
	Month         int           `json:"month"`
	Year          int           `json:"year"`
	Amount        int64         `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Notes         string        `json:"notes,omitempty"`
	ReceiptNo     string        `json:"receipt_no"`
	TransactionID *string       `json:"transaction_id,omitempty"` // ledger entry created with the payment
	RecordedBy    string        `json:"recorded_by"`
	PaidAt        time.Time     `json:"paid_at"`
	CreatedAt     time.Time     `json:"created_at"`

	Student *Student `json:"student,omitempty"` // optional for JSON responses
}

// TuitionStatus is the derived paid/unpaid state for one student and period.
type TuitionStatus struct {
	StudentID string      `json:"student_id"`
	Month     int         `json:"month"`
	Year      int         `json:"year"`
	Paid      bool        `json:"paid"`
	Payment   *SppPayment `json:"payment,omitempty"`
}

// Obligation is one outstanding tuition due: an active student with no
// payment row for the period, owing their current monthly fee.
type Obligation struct {
	Student    *Student `json:"student"`
	MonthlyFee int64    `json:"monthly_fee"`
}
