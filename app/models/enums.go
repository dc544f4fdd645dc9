package models

// TransactionKind defines the direction of a ledger entry.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// TransactionCategory defines the fixed set of ledger categories.
type TransactionCategory string

const (
	CategoryTuition       TransactionCategory = "tuition"
	CategoryRegistration  TransactionCategory = "registration"
	CategoryOperational   TransactionCategory = "operational"
	CategoryMentorPayment TransactionCategory = "mentor_payment"
	CategoryUtilities     TransactionCategory = "utilities"
	CategoryOther         TransactionCategory = "other"
)

// categoriesByKind is the fixed enumeration of valid kind/category pairings.
var categoriesByKind = map[TransactionKind][]TransactionCategory{
	KindIncome:  {CategoryTuition, CategoryRegistration, CategoryOther},
	KindExpense: {CategoryMentorPayment, CategoryOperational, CategoryUtilities, CategoryOther},
}

// ValidKind reports whether k is a known transaction kind.
func ValidKind(k TransactionKind) bool {
	_, ok := categoriesByKind[k]
	return ok
}

// ValidCombination reports whether the category is allowed for the kind.
func ValidCombination(k TransactionKind, c TransactionCategory) bool {
	for _, allowed := range categoriesByKind[k] {
		if c == allowed {
			return true
		}
	}
	return false
}

// PaymentMethod defines how a tuition payment was made.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodQris     PaymentMethod = "qris"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodTransfer, MethodQris:
		return true
	}
	return false
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)
