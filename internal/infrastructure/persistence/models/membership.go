package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// BranchModel is the persistence model for the Branch aggregate root.
type BranchModel struct {
	TenantAggregateModel
	Name string `gorm:"type:varchar(100);not null"`
	Code string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (BranchModel) TableName() string {
	return "branches"
}

// ToDomain converts the persistence model to a domain Branch entity.
func (m *BranchModel) ToDomain() *membership.Branch {
	return &membership.Branch{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		Name: m.Name,
		Code: m.Code,
	}
}

// FromDomain populates the persistence model from a domain Branch entity.
func (m *BranchModel) FromDomain(b *membership.Branch) {
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	m.Name = b.Name
	m.Code = b.Code
}

// BranchModelFromDomain creates a new persistence model from a domain Branch.
func BranchModelFromDomain(b *membership.Branch) *BranchModel {
	m := &BranchModel{}
	m.FromDomain(b)
	return m
}

// ShiftModel is the persistence model for the Shift aggregate root.
type ShiftModel struct {
	TenantAggregateModel
	Title     string     `gorm:"type:varchar(100);not null"`
	TimeLabel string     `gorm:"type:varchar(50)"`
	EventDate *time.Time `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (ShiftModel) TableName() string {
	return "shifts"
}

// ToDomain converts the persistence model to a domain Shift entity.
func (m *ShiftModel) ToDomain() *membership.Shift {
	shift := &membership.Shift{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		Title:     m.Title,
		TimeLabel: m.TimeLabel,
	}
	if m.EventDate != nil {
		shift.EventDate = valueobject.DateFromTime(*m.EventDate)
	}
	return shift
}

// FromDomain populates the persistence model from a domain Shift entity.
func (m *ShiftModel) FromDomain(s *membership.Shift) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.Title = s.Title
	m.TimeLabel = s.TimeLabel
	m.EventDate = nil
	if !s.EventDate.IsZero() {
		t := s.EventDate.Time()
		m.EventDate = &t
	}
}

// ShiftModelFromDomain creates a new persistence model from a domain Shift.
func ShiftModelFromDomain(s *membership.Shift) *ShiftModel {
	m := &ShiftModel{}
	m.FromDomain(s)
	return m
}

// SeatModel is the persistence model for the Seat aggregate root.
type SeatModel struct {
	TenantAggregateModel
	BranchID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_seat_branch_number,priority:1"`
	SeatNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_seat_branch_number,priority:2"`
}

// TableName returns the table name for GORM
func (SeatModel) TableName() string {
	return "seats"
}

// ToDomain converts the persistence model to a domain Seat entity.
func (m *SeatModel) ToDomain() *membership.Seat {
	return &membership.Seat{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		BranchID:   m.BranchID,
		SeatNumber: m.SeatNumber,
	}
}

// FromDomain populates the persistence model from a domain Seat entity.
func (m *SeatModel) FromDomain(s *membership.Seat) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.BranchID = s.BranchID
	m.SeatNumber = s.SeatNumber
}

// SeatModelFromDomain creates a new persistence model from a domain Seat.
func SeatModelFromDomain(s *membership.Seat) *SeatModel {
	m := &SeatModel{}
	m.FromDomain(s)
	return m
}

// StudentModel is the persistence model for the Student aggregate root.
type StudentModel struct {
	TenantAggregateModel
	BranchID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Phone           string    `gorm:"type:varchar(20)"`
	Email           string    `gorm:"type:varchar(255)"`
	MembershipStart time.Time `gorm:"type:date;not null"`
	MembershipEnd   time.Time `gorm:"type:date;not null;index"`
	Active          bool      `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (StudentModel) TableName() string {
	return "students"
}

// ToDomain converts the persistence model to a domain Student entity.
func (m *StudentModel) ToDomain() *membership.Student {
	return &membership.Student{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		BranchID:        m.BranchID,
		Name:            m.Name,
		Phone:           m.Phone,
		Email:           m.Email,
		MembershipStart: valueobject.DateFromTime(m.MembershipStart),
		MembershipEnd:   valueobject.DateFromTime(m.MembershipEnd),
		Active:          m.Active,
	}
}

// FromDomain populates the persistence model from a domain Student entity.
func (m *StudentModel) FromDomain(s *membership.Student) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.BranchID = s.BranchID
	m.Name = s.Name
	m.Phone = s.Phone
	m.Email = s.Email
	m.MembershipStart = s.MembershipStart.Time()
	m.MembershipEnd = s.MembershipEnd.Time()
	m.Active = s.Active
}

// StudentModelFromDomain creates a new persistence model from a domain Student.
func StudentModelFromDomain(s *membership.Student) *StudentModel {
	m := &StudentModel{}
	m.FromDomain(s)
	return m
}

// AssignmentModel is the persistence model for the Assignment aggregate root.
// The (seat, shift) pair is indexed together with the active flag because
// availability resolution filters on all three.
type AssignmentModel struct {
	TenantAggregateModel
	StudentID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	SeatID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignment_pair,priority:1"`
	ShiftID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignment_pair,priority:2"`
	Active     bool       `gorm:"not null;default:true;index:idx_assignment_pair,priority:3"`
	ReleasedAt *time.Time
}

// TableName returns the table name for GORM
func (AssignmentModel) TableName() string {
	return "seat_assignments"
}

// ToDomain converts the persistence model to a domain Assignment entity.
func (m *AssignmentModel) ToDomain() *membership.Assignment {
	return &membership.Assignment{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		StudentID:  m.StudentID,
		SeatID:     m.SeatID,
		ShiftID:    m.ShiftID,
		Active:     m.Active,
		ReleasedAt: m.ReleasedAt,
	}
}

// FromDomain populates the persistence model from a domain Assignment entity.
func (m *AssignmentModel) FromDomain(a *membership.Assignment) {
	m.FromDomainTenantAggregateRoot(a.TenantAggregateRoot)
	m.StudentID = a.StudentID
	m.SeatID = a.SeatID
	m.ShiftID = a.ShiftID
	m.Active = a.Active
	m.ReleasedAt = a.ReleasedAt
}

// AssignmentModelFromDomain creates a new persistence model from a domain Assignment.
func AssignmentModelFromDomain(a *membership.Assignment) *AssignmentModel {
	m := &AssignmentModel{}
	m.FromDomain(a)
	return m
}
