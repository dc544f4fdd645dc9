package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTransaction() *Transaction {
	return &Transaction{
		Kind:       KindIncome,
		Category:   CategoryTuition,
		Amount:     100000,
		OccurredOn: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	assert.NoError(t, validTransaction().Validate())

	cases := []struct {
		name   string
		mutate func(*Transaction)
		field  string
	}{
		{"unknown kind", func(tr *Transaction) { tr.Kind = "transfer" }, "kind"},
		{"tuition cannot be expense", func(tr *Transaction) { tr.Kind = KindExpense }, "category"},
		{"payroll cannot be income", func(tr *Transaction) {
			tr.Kind = KindIncome
			tr.Category = CategoryMentorPayment
		}, "category"},
		{"zero amount", func(tr *Transaction) { tr.Amount = 0 }, "amount"},
		{"negative amount", func(tr *Transaction) { tr.Amount = -500 }, "amount"},
		{"missing date", func(tr *Transaction) { tr.OccurredOn = time.Time{} }, "occurred_on"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTransaction()
			tc.mutate(tr)
			err := tr.Validate()
			var validationErr *ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, tc.field, validationErr.Field)
			}
		})
	}
}

func TestTransactionSigned(t *testing.T) {
	income := validTransaction()
	assert.Equal(t, int64(100000), income.Signed())

	expense := validTransaction()
	expense.Kind = KindExpense
	expense.Category = CategoryOperational
	assert.Equal(t, int64(-100000), expense.Signed())
}

func TestValidCombination(t *testing.T) {
	assert.True(t, ValidCombination(KindIncome, CategoryTuition))
	assert.True(t, ValidCombination(KindIncome, CategoryRegistration))
	assert.True(t, ValidCombination(KindExpense, CategoryMentorPayment))
	assert.True(t, ValidCombination(KindExpense, CategoryUtilities))
	assert.True(t, ValidCombination(KindIncome, CategoryOther))
	assert.True(t, ValidCombination(KindExpense, CategoryOther))

	assert.False(t, ValidCombination(KindExpense, CategoryTuition))
	assert.False(t, ValidCombination(KindExpense, CategoryRegistration))
	assert.False(t, ValidCombination(KindIncome, CategoryMentorPayment))
	assert.False(t, ValidCombination(KindIncome, CategoryUtilities))
	assert.False(t, ValidCombination("transfer", CategoryOther))
}
