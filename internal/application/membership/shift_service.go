package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// ShiftService provides application-level shift operations
type ShiftService struct {
	shiftRepo membership.ShiftRepository
}

// NewShiftService creates a new ShiftService
func NewShiftService(shiftRepo membership.ShiftRepository) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo}
}

// ShiftResponse represents a shift in API responses
type ShiftResponse struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	TimeLabel string           `json:"time_label,omitempty"`
	EventDate valueobject.Date `json:"event_date"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ShiftRequest represents a request to create or update a shift
type ShiftRequest struct {
	Title     string           `json:"title" binding:"required"`
	TimeLabel string           `json:"time_label"`
	EventDate valueobject.Date `json:"event_date"`
}

// Create creates a new shift
func (s *ShiftService) Create(ctx context.Context, tenantID uuid.UUID, req ShiftRequest) (*ShiftResponse, error) {
	shift, err := membership.NewShift(tenantID, req.Title, req.TimeLabel, req.EventDate)
	if err != nil {
		return nil, err
	}
	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, err
	}
	response := toShiftResponse(shift)
	return &response, nil
}

// List returns all shifts for a tenant
func (s *ShiftService) List(ctx context.Context, tenantID uuid.UUID) ([]ShiftResponse, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 0 // unpaginated
	filter.OrderBy = "created_at"
	filter.OrderDir = "asc"
	shifts, err := s.shiftRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, toShiftResponse(&shifts[i]))
	}
	return responses, nil
}

// Update changes a shift
func (s *ShiftService) Update(ctx context.Context, tenantID, shiftID uuid.UUID, req ShiftRequest) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.FindByIDForTenant(ctx, tenantID, shiftID)
	if err != nil {
		return nil, err
	}
	if err := shift.Update(req.Title, req.TimeLabel, req.EventDate); err != nil {
		return nil, err
	}
	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, err
	}
	response := toShiftResponse(shift)
	return &response, nil
}

// Delete removes a shift
func (s *ShiftService) Delete(ctx context.Context, tenantID, shiftID uuid.UUID) error {
	return s.shiftRepo.Delete(ctx, tenantID, shiftID)
}

func toShiftResponse(shift *membership.Shift) ShiftResponse {
	return ShiftResponse{
		ID:        shift.ID,
		Title:     shift.Title,
		TimeLabel: shift.TimeLabel,
		EventDate: shift.EventDate,
		CreatedAt: shift.CreatedAt,
		UpdatedAt: shift.UpdatedAt,
	}
}
