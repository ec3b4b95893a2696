package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// AdvancePaymentService provides application-level advance payment operations
type AdvancePaymentService struct {
	advanceRepo finance.AdvancePaymentRepository
}

// NewAdvancePaymentService creates a new AdvancePaymentService
func NewAdvancePaymentService(advanceRepo finance.AdvancePaymentRepository) *AdvancePaymentService {
	return &AdvancePaymentService{advanceRepo: advanceRepo}
}

// AdvancePaymentResponse represents an advance payment in API responses
type AdvancePaymentResponse struct {
	ID        uuid.UUID         `json:"id"`
	StudentID uuid.UUID         `json:"student_id"`
	BranchID  uuid.UUID         `json:"branch_id"`
	Amount    valueobject.Money `json:"amount"`
	Method    string            `json:"method"`
	PaidOn    valueobject.Date  `json:"paid_on"`
	Note      string            `json:"note,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// CreateAdvancePaymentRequest represents a request to record an advance payment
type CreateAdvancePaymentRequest struct {
	StudentID uuid.UUID        `json:"student_id" binding:"required"`
	BranchID  uuid.UUID        `json:"branch_id" binding:"required"`
	Amount    string           `json:"amount" binding:"required"`
	Method    string           `json:"method" binding:"required"`
	PaidOn    valueobject.Date `json:"paid_on" binding:"required"`
	Note      string           `json:"note"`
}

// Create records an advance payment
func (s *AdvancePaymentService) Create(ctx context.Context, tenantID uuid.UUID, req CreateAdvancePaymentRequest) (*AdvancePaymentResponse, error) {
	amount, err := valueobject.NewMoneyINRFromString(req.Amount)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Advance amount is not a valid amount")
	}

	payment, err := finance.NewAdvancePayment(
		tenantID, req.StudentID, req.BranchID,
		amount, finance.PaymentMethod(req.Method), req.PaidOn, req.Note,
	)
	if err != nil {
		return nil, err
	}

	if err := s.advanceRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	response := toAdvancePaymentResponse(payment)
	return &response, nil
}

// List returns advance payments for a tenant
func (s *AdvancePaymentService) List(ctx context.Context, tenantID uuid.UUID, page, pageSize int) (*shared.Paginated[AdvancePaymentResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	payments, err := s.advanceRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]AdvancePaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, toAdvancePaymentResponse(&payments[i]))
	}
	result := shared.NewPaginated(responses, int64(len(responses)), filter.Page, filter.PageSize)
	return &result, nil
}

// ListByStudent returns a student's advance payments
func (s *AdvancePaymentService) ListByStudent(ctx context.Context, tenantID, studentID uuid.UUID) ([]AdvancePaymentResponse, error) {
	payments, err := s.advanceRepo.FindByStudent(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}
	responses := make([]AdvancePaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, toAdvancePaymentResponse(&payments[i]))
	}
	return responses, nil
}

// Delete removes an advance payment
func (s *AdvancePaymentService) Delete(ctx context.Context, tenantID, paymentID uuid.UUID) error {
	return s.advanceRepo.Delete(ctx, tenantID, paymentID)
}

func toAdvancePaymentResponse(payment *finance.AdvancePayment) AdvancePaymentResponse {
	return AdvancePaymentResponse{
		ID:        payment.ID,
		StudentID: payment.StudentID,
		BranchID:  payment.BranchID,
		Amount:    payment.Amount,
		Method:    payment.Method.String(),
		PaidOn:    payment.PaidOn,
		Note:      payment.Note,
		CreatedAt: payment.CreatedAt,
	}
}
