package membership

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// Event type names for the membership context
const (
	EventTypeStudentEnrolled    = "StudentEnrolled"
	EventTypeStudentDeactivated = "StudentDeactivated"
	EventTypeStudentActivated   = "StudentActivated"
	EventTypeMembershipRenewed  = "MembershipRenewed"
	EventTypeSeatAssigned       = "SeatAssigned"
	EventTypeSeatReleased       = "SeatReleased"
)

// StudentEnrolledEvent is raised when a new student is enrolled
type StudentEnrolledEvent struct {
	shared.BaseDomainEvent
	StudentID       uuid.UUID        `json:"student_id"`
	BranchID        uuid.UUID        `json:"branch_id"`
	Name            string           `json:"name"`
	MembershipStart valueobject.Date `json:"membership_start"`
	MembershipEnd   valueobject.Date `json:"membership_end"`
}

// EventType returns the event type name
func (e *StudentEnrolledEvent) EventType() string {
	return EventTypeStudentEnrolled
}

// NewStudentEnrolledEvent creates a new StudentEnrolledEvent
func NewStudentEnrolledEvent(student *Student) *StudentEnrolledEvent {
	return &StudentEnrolledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStudentEnrolled, "Student", student.ID, student.TenantID),
		StudentID:       student.ID,
		BranchID:        student.BranchID,
		Name:            student.Name,
		MembershipStart: student.MembershipStart,
		MembershipEnd:   student.MembershipEnd,
	}
}

// StudentDeactivatedEvent is raised when a student is manually deactivated.
// The assignment release handler listens for this event to free the seat.
type StudentDeactivatedEvent struct {
	shared.BaseDomainEvent
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
}

// EventType returns the event type name
func (e *StudentDeactivatedEvent) EventType() string {
	return EventTypeStudentDeactivated
}

// NewStudentDeactivatedEvent creates a new StudentDeactivatedEvent
func NewStudentDeactivatedEvent(student *Student) *StudentDeactivatedEvent {
	return &StudentDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStudentDeactivated, "Student", student.ID, student.TenantID),
		StudentID:       student.ID,
		Name:            student.Name,
	}
}

// StudentActivatedEvent is raised when a student is reactivated
type StudentActivatedEvent struct {
	shared.BaseDomainEvent
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
}

// EventType returns the event type name
func (e *StudentActivatedEvent) EventType() string {
	return EventTypeStudentActivated
}

// NewStudentActivatedEvent creates a new StudentActivatedEvent
func NewStudentActivatedEvent(student *Student) *StudentActivatedEvent {
	return &StudentActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStudentActivated, "Student", student.ID, student.TenantID),
		StudentID:       student.ID,
		Name:            student.Name,
	}
}

// MembershipRenewedEvent is raised when a membership period is reset
type MembershipRenewedEvent struct {
	shared.BaseDomainEvent
	StudentID       uuid.UUID        `json:"student_id"`
	MembershipStart valueobject.Date `json:"membership_start"`
	MembershipEnd   valueobject.Date `json:"membership_end"`
}

// EventType returns the event type name
func (e *MembershipRenewedEvent) EventType() string {
	return EventTypeMembershipRenewed
}

// NewMembershipRenewedEvent creates a new MembershipRenewedEvent
func NewMembershipRenewedEvent(student *Student) *MembershipRenewedEvent {
	return &MembershipRenewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMembershipRenewed, "Student", student.ID, student.TenantID),
		StudentID:       student.ID,
		MembershipStart: student.MembershipStart,
		MembershipEnd:   student.MembershipEnd,
	}
}

// SeatAssignedEvent is raised when a seat/shift pair is assigned
type SeatAssignedEvent struct {
	shared.BaseDomainEvent
	AssignmentID uuid.UUID `json:"assignment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	SeatID       uuid.UUID `json:"seat_id"`
	ShiftID      uuid.UUID `json:"shift_id"`
}

// EventType returns the event type name
func (e *SeatAssignedEvent) EventType() string {
	return EventTypeSeatAssigned
}

// NewSeatAssignedEvent creates a new SeatAssignedEvent
func NewSeatAssignedEvent(assignment *Assignment) *SeatAssignedEvent {
	return &SeatAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSeatAssigned, "Assignment", assignment.ID, assignment.TenantID),
		AssignmentID:    assignment.ID,
		StudentID:       assignment.StudentID,
		SeatID:          assignment.SeatID,
		ShiftID:         assignment.ShiftID,
	}
}

// SeatReleasedEvent is raised when a seat/shift pair is freed
type SeatReleasedEvent struct {
	shared.BaseDomainEvent
	AssignmentID uuid.UUID `json:"assignment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	SeatID       uuid.UUID `json:"seat_id"`
	ShiftID      uuid.UUID `json:"shift_id"`
}

// EventType returns the event type name
func (e *SeatReleasedEvent) EventType() string {
	return EventTypeSeatReleased
}

// NewSeatReleasedEvent creates a new SeatReleasedEvent
func NewSeatReleasedEvent(assignment *Assignment) *SeatReleasedEvent {
	return &SeatReleasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSeatReleased, "Assignment", assignment.ID, assignment.TenantID),
		AssignmentID:    assignment.ID,
		StudentID:       assignment.StudentID,
		SeatID:          assignment.SeatID,
		ShiftID:         assignment.ShiftID,
	}
}
