package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
)

// SeatService provides application-level seat operations
type SeatService struct {
	seatRepo       membership.SeatRepository
	assignmentRepo membership.AssignmentRepository
}

// NewSeatService creates a new SeatService
func NewSeatService(seatRepo membership.SeatRepository, assignmentRepo membership.AssignmentRepository) *SeatService {
	return &SeatService{seatRepo: seatRepo, assignmentRepo: assignmentRepo}
}

// SeatResponse represents a seat in API responses
type SeatResponse struct {
	ID         uuid.UUID `json:"id"`
	BranchID   uuid.UUID `json:"branch_id"`
	SeatNumber string    `json:"seat_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SeatRequest represents a request to create or update a seat
type SeatRequest struct {
	BranchID   uuid.UUID `json:"branch_id" binding:"required"`
	SeatNumber string    `json:"seat_number" binding:"required"`
}

// SeatListFilter defines filtering options for seat list queries
type SeatListFilter struct {
	BranchID *uuid.UUID `form:"branch_id"`
	Search   string     `form:"search"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

// Create creates a new seat
func (s *SeatService) Create(ctx context.Context, tenantID uuid.UUID, req SeatRequest) (*SeatResponse, error) {
	seat, err := membership.NewSeat(tenantID, req.BranchID, req.SeatNumber)
	if err != nil {
		return nil, err
	}
	if err := s.seatRepo.Save(ctx, seat); err != nil {
		return nil, err
	}
	response := toSeatResponse(seat)
	return &response, nil
}

// Get returns one seat
func (s *SeatService) Get(ctx context.Context, tenantID, seatID uuid.UUID) (*SeatResponse, error) {
	seat, err := s.seatRepo.FindByIDForTenant(ctx, tenantID, seatID)
	if err != nil {
		return nil, err
	}
	response := toSeatResponse(seat)
	return &response, nil
}

// List returns seats matching the filter
func (s *SeatService) List(ctx context.Context, tenantID uuid.UUID, filter SeatListFilter) (*shared.Paginated[SeatResponse], error) {
	domainFilter := membership.SeatFilter{Filter: shared.DefaultFilter(), BranchID: filter.BranchID}
	domainFilter.Search = filter.Search
	domainFilter.OrderBy = "seat_number"
	domainFilter.OrderDir = "asc"
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	seats, err := s.seatRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.seatRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SeatResponse, 0, len(seats))
	for i := range seats {
		responses = append(responses, toSeatResponse(&seats[i]))
	}
	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update changes a seat
func (s *SeatService) Update(ctx context.Context, tenantID, seatID uuid.UUID, req SeatRequest) (*SeatResponse, error) {
	seat, err := s.seatRepo.FindByIDForTenant(ctx, tenantID, seatID)
	if err != nil {
		return nil, err
	}
	if err := seat.Update(req.BranchID, req.SeatNumber); err != nil {
		return nil, err
	}
	if err := s.seatRepo.Save(ctx, seat); err != nil {
		return nil, err
	}
	response := toSeatResponse(seat)
	return &response, nil
}

// Delete removes a seat. A seat holding an active assignment cannot be
// deleted.
func (s *SeatService) Delete(ctx context.Context, tenantID, seatID uuid.UUID) error {
	holders, err := s.assignmentRepo.FindActiveBySeat(ctx, tenantID, seatID)
	if err != nil {
		return err
	}
	if len(holders) > 0 {
		return shared.NewDomainError("SEAT_OCCUPIED", "Seat cannot be deleted while assigned to a student")
	}
	return s.seatRepo.Delete(ctx, tenantID, seatID)
}

func toSeatResponse(seat *membership.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID,
		BranchID:   seat.BranchID,
		SeatNumber: seat.SeatNumber,
		CreatedAt:  seat.CreatedAt,
		UpdatedAt:  seat.UpdatedAt,
	}
}
