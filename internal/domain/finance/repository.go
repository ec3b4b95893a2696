package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
)

// CollectionFilter defines filtering options for collection queries
type CollectionFilter struct {
	shared.Filter
	StudentID    *uuid.UUID // Filter by student
	BranchID     *uuid.UUID // Filter by branch
	AccrualMonth string     // Filter by YYYY-MM accrual month
	Status       *FeeStatus // Filter by due lifecycle status
}

// CollectionRecordRepository defines the interface for collection record persistence
type CollectionRecordRepository interface {
	// FindByID finds a collection record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CollectionRecord, error)

	// FindByIDForTenant finds a collection record by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*CollectionRecord, error)

	// FindAllForTenant finds all collection records for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter CollectionFilter) ([]CollectionRecord, error)

	// FindByStudent finds all collection records for a student
	FindByStudent(ctx context.Context, tenantID, studentID uuid.UUID) ([]CollectionRecord, error)

	// Save creates or updates a collection record
	Save(ctx context.Context, record *CollectionRecord) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, record *CollectionRecord) error

	// SaveWithLockAndDuePayment saves the record with optimistic locking
	// and records the cross-month due payment in the same transaction.
	// Either both rows land or neither does; a record must never show a
	// cross-month payment without its previous-due trail.
	SaveWithLockAndDuePayment(ctx context.Context, record *CollectionRecord, item *PreviousDuePaidItem) error

	// Delete removes a collection record
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts collection records matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter CollectionFilter) (int64, error)

	// GenerateReceiptNumber generates the next receipt number for a tenant
	GenerateReceiptNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// PreviousDueFilter defines filtering options for previous-due queries
type PreviousDueFilter struct {
	shared.Filter
	BranchID      *uuid.UUID
	PaidMonth     string // YYYY-MM the payment arrived in
	OriginalMonth string // YYYY-MM the due accrued in
}

// PreviousDuePaidRepository defines the interface for cross-month due payment persistence
type PreviousDuePaidRepository interface {
	// FindAllForTenant finds previous-due payments with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter PreviousDueFilter) ([]PreviousDuePaidItem, error)

	// FindTouchingMonth finds payments that either arrived in or accrued
	// in the given month; both sides are needed to reconcile it
	FindTouchingMonth(ctx context.Context, tenantID uuid.UUID, month string) ([]PreviousDuePaidItem, error)

	// Save creates a previous-due payment record
	Save(ctx context.Context, item *PreviousDuePaidItem) error
}

// AdvancePaymentRepository defines the interface for advance payment persistence
type AdvancePaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdvancePayment, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*AdvancePayment, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]AdvancePayment, error)
	FindByStudent(ctx context.Context, tenantID, studentID uuid.UUID) ([]AdvancePayment, error)
	Save(ctx context.Context, payment *AdvancePayment) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ExpenseFilter defines filtering options for expense queries
type ExpenseFilter struct {
	shared.Filter
	BranchID *uuid.UUID // nil filter matches all; a filter on uuid.Nil matches global expenses
	Category *ExpenseCategory
	Month    string // YYYY-MM incurred month
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Expense, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ExpenseFilter) ([]Expense, error)
	Save(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ExpenseFilter) (int64, error)

	// GenerateExpenseNumber generates the next expense number for a tenant
	GenerateExpenseNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
