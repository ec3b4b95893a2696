package membership

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
)

// StudentFilter defines filtering options for student queries
type StudentFilter struct {
	shared.Filter
	BranchID *uuid.UUID // Filter by branch
	Active   *bool      // Filter by manual active flag
}

// StudentRepository defines the interface for student persistence
type StudentRepository interface {
	// FindByID finds a student by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Student, error)

	// FindByIDForTenant finds a student by ID for a specific tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Student, error)

	// FindAllForTenant finds all students for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter StudentFilter) ([]Student, error)

	// Save creates or updates a student
	Save(ctx context.Context, student *Student) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, student *Student) error

	// Delete removes a student
	Delete(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts students matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter StudentFilter) (int64, error)
}

// SeatFilter defines filtering options for seat queries
type SeatFilter struct {
	shared.Filter
	BranchID *uuid.UUID
}

// SeatRepository defines the interface for seat persistence
type SeatRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Seat, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Seat, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter SeatFilter) ([]Seat, error)
	Save(ctx context.Context, seat *Seat) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter SeatFilter) (int64, error)
}

// ShiftRepository defines the interface for shift persistence
type ShiftRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shift, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Shift, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Shift, error)
	Save(ctx context.Context, shift *Shift) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// BranchRepository defines the interface for branch persistence
type BranchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Branch, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Branch, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Branch, error)
	Save(ctx context.Context, branch *Branch) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// AssignmentRepository defines the interface for assignment persistence
type AssignmentRepository interface {
	// FindByID finds an assignment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Assignment, error)

	// FindActiveForTenant returns all active assignments for a tenant
	FindActiveForTenant(ctx context.Context, tenantID uuid.UUID) ([]Assignment, error)

	// FindActiveByStudent returns the student's active assignment, if any
	FindActiveByStudent(ctx context.Context, tenantID, studentID uuid.UUID) (*Assignment, error)

	// FindActiveByPair returns the active assignment for a (seat, shift)
	// pair, if any
	FindActiveByPair(ctx context.Context, tenantID, seatID, shiftID uuid.UUID) (*Assignment, error)

	// FindActiveBySeat returns all active assignments holding a seat
	FindActiveBySeat(ctx context.Context, tenantID, seatID uuid.UUID) ([]Assignment, error)

	// Save creates or updates an assignment
	Save(ctx context.Context, assignment *Assignment) error
}
