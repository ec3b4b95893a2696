package membership

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
)

// Seat represents a physical seat in a branch
type Seat struct {
	shared.TenantAggregateRoot
	BranchID   uuid.UUID `json:"branch_id"`
	SeatNumber string    `json:"seat_number"`
}

// NewSeat creates a new seat
func NewSeat(tenantID, branchID uuid.UUID, seatNumber string) (*Seat, error) {
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BRANCH", "Seat must belong to a branch")
	}
	if seatNumber == "" {
		return nil, shared.NewDomainError("INVALID_SEAT_NUMBER", "Seat number cannot be empty")
	}
	if len(seatNumber) > 20 {
		return nil, shared.NewDomainError("INVALID_SEAT_NUMBER", "Seat number cannot exceed 20 characters")
	}

	return &Seat{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BranchID:            branchID,
		SeatNumber:          seatNumber,
	}, nil
}

// Update changes the seat number or branch
func (s *Seat) Update(branchID uuid.UUID, seatNumber string) error {
	if branchID == uuid.Nil {
		return shared.NewDomainError("INVALID_BRANCH", "Seat must belong to a branch")
	}
	if seatNumber == "" {
		return shared.NewDomainError("INVALID_SEAT_NUMBER", "Seat number cannot be empty")
	}
	if len(seatNumber) > 20 {
		return shared.NewDomainError("INVALID_SEAT_NUMBER", "Seat number cannot exceed 20 characters")
	}

	s.BranchID = branchID
	s.SeatNumber = seatNumber
	s.Touch()
	return nil
}
