package membership

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// AvailabilityService answers seat/shift availability queries for the
// enrollment and edit forms
type AvailabilityService struct {
	seatRepo       membership.SeatRepository
	shiftRepo      membership.ShiftRepository
	studentRepo    membership.StudentRepository
	assignmentRepo membership.AssignmentRepository
}

// NewAvailabilityService creates a new AvailabilityService
func NewAvailabilityService(
	seatRepo membership.SeatRepository,
	shiftRepo membership.ShiftRepository,
	studentRepo membership.StudentRepository,
	assignmentRepo membership.AssignmentRepository,
) *AvailabilityService {
	return &AvailabilityService{
		seatRepo:       seatRepo,
		shiftRepo:      shiftRepo,
		studentRepo:    studentRepo,
		assignmentRepo: assignmentRepo,
	}
}

// SeatAvailabilityResponse is one seat's state for the requested shift
type SeatAvailabilityResponse struct {
	SeatID      uuid.UUID `json:"seat_id"`
	SeatNumber  string    `json:"seat_number"`
	BranchID    uuid.UUID `json:"branch_id"`
	Assigned    bool      `json:"assigned"`
	StudentID   uuid.UUID `json:"student_id,omitempty"`
	StudentName string    `json:"student_name,omitempty"`
}

// ShiftAvailabilityResponse is one shift's state for the requested seat
type ShiftAvailabilityResponse struct {
	ShiftID     uuid.UUID        `json:"shift_id"`
	Title       string           `json:"title"`
	TimeLabel   string           `json:"time_label"`
	EventDate   valueobject.Date `json:"event_date"`
	Assigned    bool             `json:"assigned"`
	StudentID   uuid.UUID        `json:"student_id,omitempty"`
	StudentName string           `json:"student_name,omitempty"`
}

// SeatsForShift returns every seat with its assignment state for the
// shift. excludeStudentID implements self-exclusion for edit forms.
// With freeOnly set, occupied seats are dropped from the response
// instead of being flagged.
func (s *AvailabilityService) SeatsForShift(ctx context.Context, tenantID, shiftID uuid.UUID, excludeStudentID uuid.UUID, branchID *uuid.UUID, freeOnly bool) ([]SeatAvailabilityResponse, error) {
	if _, err := s.shiftRepo.FindByIDForTenant(ctx, tenantID, shiftID); err != nil {
		return nil, err
	}

	seatFilter := membership.SeatFilter{Filter: shared.DefaultFilter(), BranchID: branchID}
	seatFilter.PageSize = 0 // unpaginated
	seats, err := s.seatRepo.FindAllForTenant(ctx, tenantID, seatFilter)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindActiveForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if freeOnly {
		free := membership.AvailableSeatsForShift(shiftID, seats, assignments, excludeStudentID)
		responses := make([]SeatAvailabilityResponse, 0, len(free))
		for _, seat := range free {
			responses = append(responses, SeatAvailabilityResponse{
				SeatID:     seat.ID,
				SeatNumber: seat.SeatNumber,
				BranchID:   seat.BranchID,
			})
		}
		return responses, nil
	}

	names, err := s.studentNames(ctx, tenantID, assignments)
	if err != nil {
		return nil, err
	}

	availability := membership.SeatAvailabilityForShift(shiftID, seats, assignments, excludeStudentID)
	responses := make([]SeatAvailabilityResponse, 0, len(availability))
	for _, entry := range availability {
		response := SeatAvailabilityResponse{
			SeatID:     entry.Seat.ID,
			SeatNumber: entry.Seat.SeatNumber,
			BranchID:   entry.Seat.BranchID,
			Assigned:   entry.Assigned,
		}
		if entry.Assigned {
			response.StudentID = entry.StudentID
			response.StudentName = names[entry.StudentID]
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// ShiftsForSeat returns every shift with its assignment state for the
// seat. A nil seat ID reports all shifts available.
func (s *AvailabilityService) ShiftsForSeat(ctx context.Context, tenantID, seatID uuid.UUID, excludeStudentID uuid.UUID) ([]ShiftAvailabilityResponse, error) {
	if seatID != uuid.Nil {
		if _, err := s.seatRepo.FindByIDForTenant(ctx, tenantID, seatID); err != nil {
			return nil, err
		}
	}

	filter := shared.DefaultFilter()
	filter.PageSize = 0 // unpaginated
	shifts, err := s.shiftRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindActiveForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	names, err := s.studentNames(ctx, tenantID, assignments)
	if err != nil {
		return nil, err
	}

	availability := membership.ShiftAvailabilityForSeat(seatID, shifts, assignments, excludeStudentID)
	responses := make([]ShiftAvailabilityResponse, 0, len(availability))
	for _, entry := range availability {
		response := ShiftAvailabilityResponse{
			ShiftID:   entry.Shift.ID,
			Title:     entry.Shift.Title,
			TimeLabel: entry.Shift.TimeLabel,
			EventDate: entry.Shift.EventDate,
			Assigned:  entry.Assigned,
		}
		if entry.Assigned {
			response.StudentID = entry.StudentID
			response.StudentName = names[entry.StudentID]
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (s *AvailabilityService) studentNames(ctx context.Context, tenantID uuid.UUID, assignments []membership.Assignment) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(assignments))
	for i := range assignments {
		if !assignments[i].Active {
			continue
		}
		id := assignments[i].StudentID
		if _, ok := names[id]; ok {
			continue
		}
		student, err := s.studentRepo.FindByIDForTenant(ctx, tenantID, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		names[id] = student.Name
	}
	return names, nil
}
