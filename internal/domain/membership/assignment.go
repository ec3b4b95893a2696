package membership

import (
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
)

// Assignment binds one student to one seat for one shift.
// At most one active assignment may exist per (seat, shift) pair.
type Assignment struct {
	shared.TenantAggregateRoot
	StudentID  uuid.UUID  `json:"student_id"`
	SeatID     uuid.UUID  `json:"seat_id"`
	ShiftID    uuid.UUID  `json:"shift_id"`
	Active     bool       `json:"active"`
	ReleasedAt *time.Time `json:"released_at"`
}

// NewAssignment creates an active assignment
func NewAssignment(tenantID, studentID, seatID, shiftID uuid.UUID) (*Assignment, error) {
	if studentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT", "Assignment requires a student")
	}
	if seatID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SEAT", "Assignment requires a seat")
	}
	if shiftID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHIFT", "Assignment requires a shift")
	}

	assignment := &Assignment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		StudentID:           studentID,
		SeatID:              seatID,
		ShiftID:             shiftID,
		Active:              true,
	}

	assignment.AddDomainEvent(NewSeatAssignedEvent(assignment))

	return assignment, nil
}

// Release frees the seat/shift pair. Releasing an already released
// assignment is a no-op.
func (a *Assignment) Release() {
	if !a.Active {
		return
	}

	now := time.Now()
	a.Active = false
	a.ReleasedAt = &now
	a.Touch()

	a.AddDomainEvent(NewSeatReleasedEvent(a))
}

// Covers reports whether this assignment occupies the given pair
func (a *Assignment) Covers(seatID, shiftID uuid.UUID) bool {
	return a.Active && a.SeatID == seatID && a.ShiftID == shiftID
}
