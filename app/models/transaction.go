package models

import "time"

// Transaction represents one signed financial event in the ledger.
// Amounts are stored in the smallest currency unit (whole rupiah).
type Transaction struct {
	ID         string              `json:"id"`
	Kind       TransactionKind     `json:"kind"`
	Category   TransactionCategory `json:"category"`
	Amount     int64               `json:"amount"`
	OccurredOn time.Time           `json:"occurred_on"`
	Reference  *string             `json:"reference,omitempty"` // student or mentor id that caused the entry
	Detail     string              `json:"detail,omitempty"`    // sub-key within a reference, e.g. teaching level for payroll
	Notes      string              `json:"notes,omitempty"`
	RecordedBy string              `json:"recorded_by"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Signed returns the entry's contribution to the running balance.
func (t *Transaction) Signed() int64 {
	if t.Kind == KindExpense {
		return -t.Amount
	}
	return t.Amount
}

// Validate checks the invariants every ledger entry must satisfy.
func (t *Transaction) Validate() error {
	if !ValidKind(t.Kind) {
		return &ValidationError{Field: "kind", Message: "unknown transaction kind"}
	}
	if !ValidCombination(t.Kind, t.Category) {
		return &ValidationError{Field: "category", Message: "category not allowed for kind"}
	}
	if t.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	if t.OccurredOn.IsZero() {
		return &ValidationError{Field: "occurred_on", Message: "date is required"}
	}
	return nil
}
