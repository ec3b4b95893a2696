package finance

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// PaymentMethod is how money physically arrived
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodOnline
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// FeeStatus represents the due lifecycle of a collection record
type FeeStatus string

const (
	FeeStatusUnpaid        FeeStatus = "UNPAID"
	FeeStatusPartiallyPaid FeeStatus = "PARTIALLY_PAID"
	FeeStatusPaid          FeeStatus = "PAID"
)

// IsValid checks if the status is a valid FeeStatus
func (s FeeStatus) IsValid() bool {
	switch s {
	case FeeStatusUnpaid, FeeStatusPartiallyPaid, FeeStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of FeeStatus
func (s FeeStatus) String() string {
	return string(s)
}

// CollectionRecord is one fee transaction/period for a student. Cash and
// online are the only payment channels; amount paid is always their sum
// and the due is the total fee minus that sum, never negative.
type CollectionRecord struct {
	shared.TenantAggregateRoot
	ReceiptNumber string            `json:"receipt_number"`
	StudentID     uuid.UUID         `json:"student_id"`
	BranchID      uuid.UUID         `json:"branch_id"`
	TotalFee      valueobject.Money `json:"total_fee"`
	Cash          valueobject.Money `json:"cash"`
	Online        valueobject.Money `json:"online"`
	AccrualMonth  string            `json:"accrual_month"` // YYYY-MM the fee belongs to
	PaymentDate   valueobject.Date  `json:"payment_date"`
	Status        FeeStatus         `json:"status"`
	Remark        string            `json:"remark"`
}

// NewCollectionRecord creates a collection record for a fee period
func NewCollectionRecord(
	tenantID uuid.UUID,
	receiptNumber string,
	studentID, branchID uuid.UUID,
	totalFee, cash, online valueobject.Money,
	accrualMonth string,
	paymentDate valueobject.Date,
) (*CollectionRecord, error) {
	if receiptNumber == "" {
		return nil, shared.NewDomainError("INVALID_RECEIPT_NUMBER", "Receipt number cannot be empty")
	}
	if studentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT", "Collection record requires a student")
	}
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRANCH", "Collection record requires a branch")
	}
	if totalFee.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total fee cannot be negative")
	}
	if cash.IsNegative() || online.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amounts cannot be negative")
	}
	if !valueobject.ValidMonth(accrualMonth) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Accrual month must be YYYY-MM")
	}

	paid := cash.MustAdd(online)
	if greater, _ := paid.GreaterThan(totalFee); greater {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount paid cannot exceed total fee")
	}

	record := &CollectionRecord{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ReceiptNumber:       receiptNumber,
		StudentID:           studentID,
		BranchID:            branchID,
		TotalFee:            totalFee,
		Cash:                cash,
		Online:              online,
		AccrualMonth:        accrualMonth,
		PaymentDate:         paymentDate,
	}
	record.Status = record.deriveStatus()

	record.AddDomainEvent(NewCollectionRecordCreatedEvent(record))

	return record, nil
}

// AmountPaid returns cash + online
func (r *CollectionRecord) AmountPaid() valueobject.Money {
	return r.Cash.MustAdd(r.Online)
}

// Due returns the outstanding amount, floored at zero
func (r *CollectionRecord) Due() valueobject.Money {
	return r.TotalFee.MustSubtract(r.AmountPaid()).ClampZero()
}

func (r *CollectionRecord) deriveStatus() FeeStatus {
	if r.Due().IsZero() {
		return FeeStatusPaid
	}
	if r.AmountPaid().IsZero() {
		return FeeStatusUnpaid
	}
	return FeeStatusPartiallyPaid
}

// PayDue applies a payment against the outstanding due. The amount must
// be positive and must not exceed the current due; overpayment is
// rejected rather than converted into a credit.
func (r *CollectionRecord) PayDue(amount valueobject.Money, method PaymentMethod, paidOn valueobject.Date) error {
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_METHOD", fmt.Sprintf("Unknown payment method %q", method))
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	due := r.Due()
	if greater, err := amount.GreaterThan(due); err != nil {
		return shared.NewDomainError("INVALID_AMOUNT", err.Error())
	} else if greater {
		return shared.ErrDueExceeded
	}
	if paidOn.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}

	switch method {
	case PaymentMethodCash:
		r.Cash = r.Cash.MustAdd(amount)
	case PaymentMethodOnline:
		r.Online = r.Online.MustAdd(amount)
	}
	r.PaymentDate = paidOn
	r.Status = r.deriveStatus()
	r.Touch()

	r.AddDomainEvent(NewDuePaidEvent(r, amount, method, paidOn))

	return nil
}
