package membership

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// MembershipStatus is the date-derived membership state
type MembershipStatus string

const (
	MembershipStatusActive  MembershipStatus = "ACTIVE"
	MembershipStatusExpired MembershipStatus = "EXPIRED"
)

// String returns the string representation of MembershipStatus
func (s MembershipStatus) String() string {
	return string(s)
}

// DisplayStatus is the listing status shown for a student. Manual
// deactivation overrides the date-derived status.
type DisplayStatus string

const (
	DisplayStatusActive   DisplayStatus = "ACTIVE"
	DisplayStatusExpired  DisplayStatus = "EXPIRED"
	DisplayStatusInactive DisplayStatus = "INACTIVE"
)

// Student represents an enrolled member.
// Membership dates are calendar dates; a membership ending today is
// still active. The Active flag is an independent manual toggle.
type Student struct {
	shared.TenantAggregateRoot
	BranchID        uuid.UUID        `json:"branch_id"`
	Name            string           `json:"name"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	MembershipStart valueobject.Date `json:"membership_start"`
	MembershipEnd   valueobject.Date `json:"membership_end"`
	Active          bool             `json:"active"`
}

// NewStudent enrolls a new student
func NewStudent(
	tenantID, branchID uuid.UUID,
	name, phone, email string,
	membershipStart, membershipEnd valueobject.Date,
) (*Student, error) {
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRANCH", "Student must belong to a branch")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Student name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Student name cannot exceed 100 characters")
	}
	if membershipStart.IsZero() || membershipEnd.IsZero() {
		return nil, shared.NewDomainError("INVALID_MEMBERSHIP", "Membership start and end dates are required")
	}
	if membershipEnd.Before(membershipStart) {
		return nil, shared.NewDomainError("INVALID_MEMBERSHIP", "Membership end cannot precede membership start")
	}

	student := &Student{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BranchID:            branchID,
		Name:                name,
		Phone:               phone,
		Email:               email,
		MembershipStart:     membershipStart,
		MembershipEnd:       membershipEnd,
		Active:              true,
	}

	student.AddDomainEvent(NewStudentEnrolledEvent(student))

	return student, nil
}

// MembershipStatus derives the date-based status for the given day.
// Expired strictly after the end date: a membership ending today is active.
func (s *Student) MembershipStatus(today valueobject.Date) MembershipStatus {
	if s.MembershipEnd.Before(today) {
		return MembershipStatusExpired
	}
	return MembershipStatusActive
}

// DisplayStatus combines the manual flag with the date-derived status
func (s *Student) DisplayStatus(today valueobject.Date) DisplayStatus {
	if !s.Active {
		return DisplayStatusInactive
	}
	if s.MembershipStatus(today) == MembershipStatusExpired {
		return DisplayStatusExpired
	}
	return DisplayStatusActive
}

// UpdateProfile changes contact details and branch
func (s *Student) UpdateProfile(branchID uuid.UUID, name, phone, email string) error {
	if branchID == uuid.Nil {
		return shared.NewDomainError("INVALID_BRANCH", "Student must belong to a branch")
	}
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Student name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Student name cannot exceed 100 characters")
	}

	s.BranchID = branchID
	s.Name = name
	s.Phone = phone
	s.Email = email
	s.Touch()
	return nil
}

// Deactivate manually marks the student inactive. The seat assignment is
// released by the deactivation event handler, not here.
func (s *Student) Deactivate() error {
	if !s.Active {
		return shared.NewDomainError("INVALID_STATE", "Student is already inactive")
	}

	s.Active = false
	s.Touch()

	s.AddDomainEvent(NewStudentDeactivatedEvent(s))

	return nil
}

// Activate re-enables a manually deactivated student. A previously held
// seat is not restored.
func (s *Student) Activate() error {
	if s.Active {
		return shared.NewDomainError("INVALID_STATE", "Student is already active")
	}

	s.Active = true
	s.Touch()

	s.AddDomainEvent(NewStudentActivatedEvent(s))

	return nil
}

// Renew resets the membership period. Past collection records are never
// modified by a renewal; the caller creates a fresh record for the new
// period.
func (s *Student) Renew(membershipStart, membershipEnd valueobject.Date) error {
	if membershipStart.IsZero() || membershipEnd.IsZero() {
		return shared.NewDomainError("INVALID_MEMBERSHIP", "Membership start and end dates are required")
	}
	if membershipEnd.Before(membershipStart) {
		return shared.NewDomainError("INVALID_MEMBERSHIP", "Membership end cannot precede membership start")
	}

	s.MembershipStart = membershipStart
	s.MembershipEnd = membershipEnd
	s.Touch()

	s.AddDomainEvent(NewMembershipRenewedEvent(s))

	return nil
}
