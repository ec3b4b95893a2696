package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// CollectionService provides application-level fee collection operations
type CollectionService struct {
	collectionRepo finance.CollectionRecordRepository
	eventPublisher shared.EventPublisher
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(collectionRepo finance.CollectionRecordRepository) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CollectionService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CollectionResponse represents a collection record in API responses
type CollectionResponse struct {
	ID            uuid.UUID         `json:"id"`
	ReceiptNumber string            `json:"receipt_number"`
	StudentID     uuid.UUID         `json:"student_id"`
	BranchID      uuid.UUID         `json:"branch_id"`
	TotalFee      valueobject.Money `json:"total_fee"`
	Cash          valueobject.Money `json:"cash"`
	Online        valueobject.Money `json:"online"`
	AmountPaid    valueobject.Money `json:"amount_paid"`
	DueAmount     valueobject.Money `json:"due_amount"`
	AccrualMonth  string            `json:"accrual_month"`
	PaymentDate   valueobject.Date  `json:"payment_date"`
	Status        string            `json:"status"`
	Remark        string            `json:"remark,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Version       int               `json:"version"`
}

// PayDueRequest represents a payment against a record's outstanding due
type PayDueRequest struct {
	Amount string           `json:"amount" binding:"required"`
	Method string           `json:"method" binding:"required"`
	PaidOn valueobject.Date `json:"paid_on" binding:"required"`
}

// CollectionListFilter defines filtering options for collection list queries
type CollectionListFilter struct {
	Search    string     `form:"search"`
	StudentID *uuid.UUID `form:"student_id"`
	BranchID  *uuid.UUID `form:"branch_id"`
	Month     string     `form:"month" binding:"omitempty,month"`
	Status    string     `form:"status"`
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
}

// Get returns one collection record
func (s *CollectionService) Get(ctx context.Context, tenantID, recordID uuid.UUID) (*CollectionResponse, error) {
	record, err := s.collectionRepo.FindByIDForTenant(ctx, tenantID, recordID)
	if err != nil {
		return nil, err
	}
	response := toCollectionResponse(record)
	return &response, nil
}

// List returns collection records matching the filter
func (s *CollectionService) List(ctx context.Context, tenantID uuid.UUID, filter CollectionListFilter) (*shared.Paginated[CollectionResponse], error) {
	domainFilter := finance.CollectionFilter{
		Filter:       shared.DefaultFilter(),
		StudentID:    filter.StudentID,
		BranchID:     filter.BranchID,
		AccrualMonth: filter.Month,
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		status := finance.FeeStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown fee status")
		}
		domainFilter.Status = &status
	}
	if filter.Month != "" && !valueobject.ValidMonth(filter.Month) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month filter must be YYYY-MM")
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	records, err := s.collectionRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.collectionRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]CollectionResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toCollectionResponse(&records[i]))
	}
	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// PayDue applies a payment against a record's due. When the payment
// lands in a different month than the fee accrued, a previous-due item
// is recorded so monthly reports can attribute the money to the month it
// physically arrived in.
func (s *CollectionService) PayDue(ctx context.Context, tenantID, recordID uuid.UUID, req PayDueRequest) (*CollectionResponse, error) {
	record, err := s.collectionRepo.FindByIDForTenant(ctx, tenantID, recordID)
	if err != nil {
		return nil, err
	}

	amount, err := valueobject.NewMoneyINRFromString(req.Amount)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount is not a valid amount")
	}
	method := finance.PaymentMethod(req.Method)

	if err := record.PayDue(amount, method, req.PaidOn); err != nil {
		return nil, err
	}

	if req.PaidOn.Month() != record.AccrualMonth {
		item, err := finance.NewPreviousDuePaidItem(
			tenantID, record.ID, record.StudentID, record.BranchID,
			amount, method, req.PaidOn, record.AccrualMonth,
		)
		if err != nil {
			return nil, err
		}
		// One transaction: the record update and its previous-due trail
		// must not come apart
		if err := s.collectionRepo.SaveWithLockAndDuePayment(ctx, record, item); err != nil {
			return nil, err
		}
	} else {
		if err := s.collectionRepo.SaveWithLock(ctx, record); err != nil {
			return nil, err
		}
	}

	s.publishEvents(ctx, record)

	response := toCollectionResponse(record)
	return &response, nil
}

// Delete removes a collection record (explicit admin action only)
func (s *CollectionService) Delete(ctx context.Context, tenantID, recordID uuid.UUID) error {
	return s.collectionRepo.Delete(ctx, tenantID, recordID)
}

func (s *CollectionService) publishEvents(ctx context.Context, record *finance.CollectionRecord) {
	if s.eventPublisher == nil {
		record.ClearDomainEvents()
		return
	}
	for _, event := range record.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	record.ClearDomainEvents()
}

func toCollectionResponse(record *finance.CollectionRecord) CollectionResponse {
	return CollectionResponse{
		ID:            record.ID,
		ReceiptNumber: record.ReceiptNumber,
		StudentID:     record.StudentID,
		BranchID:      record.BranchID,
		TotalFee:      record.TotalFee,
		Cash:          record.Cash,
		Online:        record.Online,
		AmountPaid:    record.AmountPaid(),
		DueAmount:     record.Due(),
		AccrualMonth:  record.AccrualMonth,
		PaymentDate:   record.PaymentDate,
		Status:        record.Status.String(),
		Remark:        record.Remark,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
		Version:       record.Version,
	}
}
