package membership

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// Shift represents a recurring time slot a seat can be booked against,
// e.g. "Morning 06:00-12:00".
type Shift struct {
	shared.TenantAggregateRoot
	Title     string           `json:"title"`
	TimeLabel string           `json:"time_label"`
	EventDate valueobject.Date `json:"event_date"`
}

// NewShift creates a new shift
func NewShift(tenantID uuid.UUID, title, timeLabel string, eventDate valueobject.Date) (*Shift, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Shift title cannot be empty")
	}
	if len(title) > 100 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Shift title cannot exceed 100 characters")
	}
	if len(timeLabel) > 50 {
		return nil, shared.NewDomainError("INVALID_TIME", "Shift time label cannot exceed 50 characters")
	}

	return &Shift{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Title:               title,
		TimeLabel:           timeLabel,
		EventDate:           eventDate,
	}, nil
}

// Update changes the shift details
func (s *Shift) Update(title, timeLabel string, eventDate valueobject.Date) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Shift title cannot be empty")
	}
	if len(title) > 100 {
		return shared.NewDomainError("INVALID_TITLE", "Shift title cannot exceed 100 characters")
	}
	if len(timeLabel) > 50 {
		return shared.NewDomainError("INVALID_TIME", "Shift time label cannot exceed 50 characters")
	}

	s.Title = title
	s.TimeLabel = timeLabel
	s.EventDate = eventDate
	s.Touch()
	return nil
}
