package finance

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// AdvancePayment is money received from a student ahead of being applied
// to a specific fee period. It is an explicit record; overpaying a due
// never creates one implicitly.
type AdvancePayment struct {
	shared.TenantAggregateRoot
	StudentID uuid.UUID         `json:"student_id"`
	BranchID  uuid.UUID         `json:"branch_id"`
	Amount    valueobject.Money `json:"amount"`
	Method    PaymentMethod     `json:"method"`
	PaidOn    valueobject.Date  `json:"paid_on"`
	Note      string            `json:"note"`
}

// NewAdvancePayment records an advance payment
func NewAdvancePayment(
	tenantID, studentID, branchID uuid.UUID,
	amount valueobject.Money,
	method PaymentMethod,
	paidOn valueobject.Date,
	note string,
) (*AdvancePayment, error) {
	if studentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT", "Advance payment requires a student")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Advance amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Unknown payment method")
	}
	if paidOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}
	if len(note) > 500 {
		return nil, shared.NewDomainError("INVALID_NOTE", "Note cannot exceed 500 characters")
	}

	return &AdvancePayment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		StudentID:           studentID,
		BranchID:            branchID,
		Amount:              amount,
		Method:              method,
		PaidOn:              paidOn,
		Note:                note,
	}, nil
}
