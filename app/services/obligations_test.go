package services

import (
	"testing"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForUnpaidThenPaid(t *testing.T) {
	store := newMemStore()
	resolver := NewObligationResolver(store)
	student := store.addStudent("Aisyah", "iqra", 200000, true)

	status, err := resolver.StatusFor(student.ID, 3, 2024)
	require.NoError(t, err)
	assert.False(t, status.Paid)
	assert.Nil(t, status.Payment)

	_, err = resolver.RecordPayment(RecordPaymentParams{
		StudentID: student.ID, Month: 3, Year: 2024, Amount: 200000, Method: models.MethodCash,
	})
	require.NoError(t, err)

	status, err = resolver.StatusFor(student.ID, 3, 2024)
	require.NoError(t, err)
	assert.True(t, status.Paid)
	require.NotNil(t, status.Payment)
	assert.Equal(t, int64(200000), status.Payment.Amount)
}

func TestStatusForUnknownStudent(t *testing.T) {
	resolver := NewObligationResolver(newMemStore())

	_, err := resolver.StatusFor("missing", 3, 2024)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestOutstandingComplementsPaid(t *testing.T) {
	store := newMemStore()
	resolver := NewObligationResolver(store)

	var students []*models.Student
	for _, name := range []string{"Ali", "Budi", "Citra", "Dewi"} {
		students = append(students, store.addStudent(name, "iqra", 150000, true))
	}
	inactive := store.addStudent("Eko", "iqra", 150000, false)

	// Two of four pay.
	for _, st := range students[:2] {
		_, err := resolver.RecordPayment(RecordPaymentParams{
			StudentID: st.ID, Month: 4, Year: 2024, Amount: 150000, Method: models.MethodTransfer,
		})
		require.NoError(t, err)
	}

	outstanding, total, err := resolver.OutstandingFor("", 4, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), total)

	owing := make(map[string]bool)
	for _, o := range outstanding {
		owing[o.Student.ID] = true
		assert.Equal(t, int64(150000), o.MonthlyFee)
	}
	assert.False(t, owing[inactive.ID], "inactive students carry no obligation")

	// Every active student is either paid or outstanding, never both.
	for _, st := range students {
		status, err := resolver.StatusFor(st.ID, 4, 2024)
		require.NoError(t, err)
		assert.NotEqual(t, status.Paid, owing[st.ID], "student %s", st.Name)
	}
}

func TestOutstandingLevelFilter(t *testing.T) {
	store := newMemStore()
	resolver := NewObligationResolver(store)
	store.addStudent("Ali", "iqra", 100000, true)
	store.addStudent("Budi", "tahfidz", 250000, true)

	outstanding, total, err := resolver.OutstandingFor("tahfidz", 5, 2024)
	require.NoError(t, err)
	require.Len(t, outstanding, 1)
	assert.Equal(t, "Budi", outstanding[0].Student.Name)
	assert.Equal(t, int64(250000), total)
}

func TestRecordPaymentDuplicateLeavesLedgerUntouched(t *testing.T) {
	store := newMemStore()
	resolver := NewObligationResolver(store)
	student := store.addStudent("Aisyah", "iqra", 200000, true)

	_, err := resolver.RecordPayment(RecordPaymentParams{
		StudentID: student.ID, Month: 3, Year: 2024, Amount: 200000, Method: models.MethodCash,
	})
	require.NoError(t, err)
	require.Len(t, store.transactions, 1)

	_, err = resolver.RecordPayment(RecordPaymentParams{
		StudentID: student.ID, Month: 3, Year: 2024, Amount: 200000, Method: models.MethodCash,
	})
	assert.ErrorIs(t, err, database.ErrAlreadyPaid)
	assert.Len(t, store.transactions, 1, "no second ledger entry may be created")
}

func TestRecordPaymentRaisesBalance(t *testing.T) {
	store := newMemStore()
	resolver := NewObligationResolver(store)
	balance := NewBalanceService(store)
	student := store.addStudent("Sari", "iqra", 200000, true)

	before, err := balance.Current()
	require.NoError(t, err)

	outstanding, _, err := resolver.OutstandingFor("", 3, 2024)
	require.NoError(t, err)
	require.Len(t, outstanding, 1)
	assert.Equal(t, int64(200000), outstanding[0].MonthlyFee)

	payment, err := resolver.RecordPayment(RecordPaymentParams{
		StudentID: student.ID, Month: 3, Year: 2024, Amount: 200000, Method: models.MethodCash,
	})
	require.NoError(t, err)
	require.NotNil(t, payment.TransactionID)
	assert.NotEmpty(t, payment.ReceiptNo)
	balance.Invalidate()

	after, err := balance.Current()
	require.NoError(t, err)
	assert.Equal(t, before+200000, after)

	outstanding, _, err = resolver.OutstandingFor("", 3, 2024)
	require.NoError(t, err)
	assert.Empty(t, outstanding)
}

func TestRecordPaymentValidation(t *testing.T) {
	store := newMemStore()
	resolver := NewObligationResolver(store)
	student := store.addStudent("Sari", "iqra", 200000, true)

	cases := []struct {
		name   string
		params RecordPaymentParams
	}{
		{"month out of range", RecordPaymentParams{StudentID: student.ID, Month: 13, Year: 2024, Amount: 1000, Method: models.MethodCash}},
		{"zero amount", RecordPaymentParams{StudentID: student.ID, Month: 3, Year: 2024, Amount: 0, Method: models.MethodCash}},
		{"unknown method", RecordPaymentParams{StudentID: student.ID, Month: 3, Year: 2024, Amount: 1000, Method: "barter"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolver.RecordPayment(tc.params)
			var validationErr *models.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Empty(t, store.transactions, "validation failures must not write")
		})
	}
}
