package finance

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// Event type names for the finance context
const (
	EventTypeCollectionRecordCreated = "CollectionRecordCreated"
	EventTypeDuePaid                 = "DuePaid"
	EventTypeExpenseRecorded         = "ExpenseRecorded"
)

// CollectionRecordCreatedEvent is raised when a fee record is created
type CollectionRecordCreatedEvent struct {
	shared.BaseDomainEvent
	RecordID      uuid.UUID         `json:"record_id"`
	ReceiptNumber string            `json:"receipt_number"`
	StudentID     uuid.UUID         `json:"student_id"`
	TotalFee      valueobject.Money `json:"total_fee"`
	AccrualMonth  string            `json:"accrual_month"`
}

// EventType returns the event type name
func (e *CollectionRecordCreatedEvent) EventType() string {
	return EventTypeCollectionRecordCreated
}

// NewCollectionRecordCreatedEvent creates a new CollectionRecordCreatedEvent
func NewCollectionRecordCreatedEvent(record *CollectionRecord) *CollectionRecordCreatedEvent {
	return &CollectionRecordCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCollectionRecordCreated, "CollectionRecord", record.ID, record.TenantID),
		RecordID:        record.ID,
		ReceiptNumber:   record.ReceiptNumber,
		StudentID:       record.StudentID,
		TotalFee:        record.TotalFee,
		AccrualMonth:    record.AccrualMonth,
	}
}

// DuePaidEvent is raised when a payment is applied against a record's due
type DuePaidEvent struct {
	shared.BaseDomainEvent
	RecordID     uuid.UUID         `json:"record_id"`
	StudentID    uuid.UUID         `json:"student_id"`
	Amount       valueobject.Money `json:"amount"`
	Method       PaymentMethod     `json:"method"`
	PaidOn       valueobject.Date  `json:"paid_on"`
	RemainingDue valueobject.Money `json:"remaining_due"`
	Status       FeeStatus         `json:"status"`
}

// EventType returns the event type name
func (e *DuePaidEvent) EventType() string {
	return EventTypeDuePaid
}

// NewDuePaidEvent creates a new DuePaidEvent
func NewDuePaidEvent(record *CollectionRecord, amount valueobject.Money, method PaymentMethod, paidOn valueobject.Date) *DuePaidEvent {
	return &DuePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDuePaid, "CollectionRecord", record.ID, record.TenantID),
		RecordID:        record.ID,
		StudentID:       record.StudentID,
		Amount:          amount,
		Method:          method,
		PaidOn:          paidOn,
		RemainingDue:    record.Due(),
		Status:          record.Status,
	}
}

// ExpenseRecordedEvent is raised when an expense is recorded
type ExpenseRecordedEvent struct {
	shared.BaseDomainEvent
	ExpenseID     uuid.UUID         `json:"expense_id"`
	ExpenseNumber string            `json:"expense_number"`
	Title         string            `json:"title"`
	Category      ExpenseCategory   `json:"category"`
	Amount        valueobject.Money `json:"amount"`
	IncurredOn    valueobject.Date  `json:"incurred_on"`
}

// EventType returns the event type name
func (e *ExpenseRecordedEvent) EventType() string {
	return EventTypeExpenseRecorded
}

// NewExpenseRecordedEvent creates a new ExpenseRecordedEvent
func NewExpenseRecordedEvent(expense *Expense) *ExpenseRecordedEvent {
	return &ExpenseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseRecorded, "Expense", expense.ID, expense.TenantID),
		ExpenseID:       expense.ID,
		ExpenseNumber:   expense.ExpenseNumber,
		Title:           expense.Title,
		Category:        expense.Category,
		Amount:          expense.Amount(),
		IncurredOn:      expense.IncurredOn,
	}
}
