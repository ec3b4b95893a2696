package finance

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// PreviousDuePaidItem records a due payment that physically arrived in a
// later month than the fee accrued. Monthly reports add the amount to
// the month it arrived in and subtract it from the month it accrued in,
// so the same rupee never appears in two monthly views.
type PreviousDuePaidItem struct {
	shared.TenantAggregateRoot
	RecordID      uuid.UUID         `json:"record_id"` // Collection record the due belonged to
	StudentID     uuid.UUID         `json:"student_id"`
	BranchID      uuid.UUID         `json:"branch_id"`
	Amount        valueobject.Money `json:"amount"`
	Method        PaymentMethod     `json:"method"`
	PaidOn        valueobject.Date  `json:"paid_on"`
	OriginalMonth string            `json:"original_month"` // YYYY-MM the due accrued in
}

// NewPreviousDuePaidItem creates a cross-month due payment record
func NewPreviousDuePaidItem(
	tenantID, recordID, studentID, branchID uuid.UUID,
	amount valueobject.Money,
	method PaymentMethod,
	paidOn valueobject.Date,
	originalMonth string,
) (*PreviousDuePaidItem, error) {
	if recordID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECORD", "Previous due payment requires a collection record")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Unknown payment method")
	}
	if paidOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}
	if !valueobject.ValidMonth(originalMonth) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Original month must be YYYY-MM")
	}
	if paidOn.Month() == originalMonth {
		return nil, shared.NewDomainError("INVALID_MONTH", "Payment month matches accrual month; not a previous due")
	}

	return &PreviousDuePaidItem{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		RecordID:            recordID,
		StudentID:           studentID,
		BranchID:            branchID,
		Amount:              amount,
		Method:              method,
		PaidOn:              paidOn,
		OriginalMonth:       originalMonth,
	}, nil
}

// PaidMonth returns the YYYY-MM month the payment arrived in
func (p *PreviousDuePaidItem) PaidMonth() string {
	return p.PaidOn.Month()
}
