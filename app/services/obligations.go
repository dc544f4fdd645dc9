package services

import (
	"fmt"
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
	"github.com/google/uuid"
)

// ObligationStore is the slice of storage the obligation resolver needs.
type ObligationStore interface {
	GetStudent(id string) (*models.Student, error)
	ActiveStudents(level string) ([]*models.Student, error)
	GetSppPayment(studentID string, month, year int) (*models.SppPayment, error)
	PaidStudentIDs(month, year int) (map[string]bool, error)
	CreateSppPayment(p *models.SppPayment, entry *models.Transaction) error
}

// ObligationResolver derives tuition obligations. A period is paid exactly
// when an SPP payment row exists for it; an obligation is the named
// projection (active roster for the period) minus (existing payment rows).
type ObligationResolver struct {
	store ObligationStore
}

// NewObligationResolver returns a resolver reading and writing through
// store.
func NewObligationResolver(store ObligationStore) *ObligationResolver {
	return &ObligationResolver{store: store}
}

// StatusFor reports the derived paid state for one student and period.
func (o *ObligationResolver) StatusFor(studentID string, month, year int) (*models.TuitionStatus, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if _, err := o.store.GetStudent(studentID); err != nil {
		return nil, err
	}

	status := &models.TuitionStatus{StudentID: studentID, Month: month, Year: year}
	payment, err := o.store.GetSppPayment(studentID, month, year)
	if err == database.ErrNotFound {
		return status, nil
	}
	if err != nil {
		return nil, err
	}
	status.Paid = true
	status.Payment = payment
	return status, nil
}

// OutstandingFor lists every active student (optionally filtered by level)
// without a payment for the period, each owing their current monthly fee.
// The returned total is the sum of those fees.
func (o *ObligationResolver) OutstandingFor(level string, month, year int) ([]models.Obligation, int64, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, 0, err
	}

	students, err := o.store.ActiveStudents(level)
	if err != nil {
		return nil, 0, err
	}
	paid, err := o.store.PaidStudentIDs(month, year)
	if err != nil {
		return nil, 0, err
	}

	outstanding := []models.Obligation{}
	var total int64
	for _, st := range students {
		if paid[st.ID] {
			continue
		}
		outstanding = append(outstanding, models.Obligation{Student: st, MonthlyFee: st.MonthlyFee})
		total += st.MonthlyFee
	}
	return outstanding, total, nil
}

// RecordPaymentParams carries one tuition payment submission.
type RecordPaymentParams struct {
	StudentID  string               `json:"student_id"`
	Month      int                  `json:"month"`
	Year       int                  `json:"year"`
	Amount     int64                `json:"amount"`
	Method     models.PaymentMethod `json:"method"`
	Notes      string               `json:"notes"`
	RecordedBy string               `json:"recorded_by"`
}

// RecordPayment settles a student's tuition for a period. The payment row
// and the tuition income ledger entry are written in one database
// transaction; a duplicate period fails with ErrAlreadyPaid and neither
// row is written.
func (o *ObligationResolver) RecordPayment(params RecordPaymentParams) (*models.SppPayment, error) {
	if err := validatePeriod(params.Month, params.Year); err != nil {
		return nil, err
	}
	if params.Amount <= 0 {
		return nil, &models.ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	if !models.ValidPaymentMethod(params.Method) {
		return nil, &models.ValidationError{Field: "method", Message: "unknown payment method"}
	}

	student, err := o.store.GetStudent(params.StudentID)
	if err != nil {
		return nil, err
	}

	payment := &models.SppPayment{
		StudentID:  student.ID,
		Month:      params.Month,
		Year:       params.Year,
		Amount:     params.Amount,
		Method:     params.Method,
		Notes:      params.Notes,
		ReceiptNo:  fmt.Sprintf("SPP-%04d%02d-%s", params.Year, params.Month, uuid.New().String()[:8]),
		RecordedBy: params.RecordedBy,
	}
	entry := &models.Transaction{
		Kind:       models.KindIncome,
		Category:   models.CategoryTuition,
		Amount:     params.Amount,
		OccurredOn: time.Now(),
		Reference:  &student.ID,
		Notes:      fmt.Sprintf("SPP %02d/%d %s", params.Month, params.Year, student.Name),
		RecordedBy: params.RecordedBy,
	}

	if err := o.store.CreateSppPayment(payment, entry); err != nil {
		return nil, err
	}
	return payment, nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return &models.ValidationError{Field: "month", Message: "month must be between 1 and 12"}
	}
	if year < 2000 || year > 2100 {
		return &models.ValidationError{Field: "year", Message: "year out of range"}
	}
	return nil
}
