package membership

import (
	"github.com/google/uuid"
)

// SeatAvailability describes one seat's state for a given shift
type SeatAvailability struct {
	Seat      Seat
	Assigned  bool
	StudentID uuid.UUID
}

// ShiftAvailability describes one shift's state for a given seat.
// Assigned shifts are reported, not hidden, so callers can render them
// as disabled options.
type ShiftAvailability struct {
	Shift     Shift
	Assigned  bool
	StudentID uuid.UUID
}

// assignmentFor finds the active assignment covering a (seat, shift)
// pair, if any
func assignmentFor(assignments []Assignment, seatID, shiftID uuid.UUID) *Assignment {
	for i := range assignments {
		if assignments[i].Covers(seatID, shiftID) {
			return &assignments[i]
		}
	}
	return nil
}

// AvailableSeatsForShift returns the seats free for the given shift.
// A seat occupied by excludeStudentID is still reported available, so an
// edit form can keep the student's own seat selectable. A shift with no
// seats yields an empty slice. The computation is a pure function of its
// inputs.
func AvailableSeatsForShift(shiftID uuid.UUID, seats []Seat, assignments []Assignment, excludeStudentID uuid.UUID) []Seat {
	available := make([]Seat, 0, len(seats))
	for _, seat := range seats {
		a := assignmentFor(assignments, seat.ID, shiftID)
		if a == nil || a.StudentID == excludeStudentID {
			available = append(available, seat)
		}
	}
	return available
}

// SeatAvailabilityForShift returns the per-seat assignment state for a
// shift, including occupied seats
func SeatAvailabilityForShift(shiftID uuid.UUID, seats []Seat, assignments []Assignment, excludeStudentID uuid.UUID) []SeatAvailability {
	result := make([]SeatAvailability, 0, len(seats))
	for _, seat := range seats {
		entry := SeatAvailability{Seat: seat}
		if a := assignmentFor(assignments, seat.ID, shiftID); a != nil && a.StudentID != excludeStudentID {
			entry.Assigned = true
			entry.StudentID = a.StudentID
		}
		result = append(result, entry)
	}
	return result
}

// ShiftAvailabilityForSeat returns the per-shift assignment state for a
// seat. With a nil seat ID every shift is reported available, matching
// the "no seat selected" case of the enrollment form.
func ShiftAvailabilityForSeat(seatID uuid.UUID, shifts []Shift, assignments []Assignment, excludeStudentID uuid.UUID) []ShiftAvailability {
	result := make([]ShiftAvailability, 0, len(shifts))
	for _, shift := range shifts {
		entry := ShiftAvailability{Shift: shift}
		if seatID != uuid.Nil {
			if a := assignmentFor(assignments, seatID, shift.ID); a != nil && a.StudentID != excludeStudentID {
				entry.Assigned = true
				entry.StudentID = a.StudentID
			}
		}
		result = append(result, entry)
	}
	return result
}

// SeatHasActiveAssignment reports whether any active assignment holds the
// seat. Seats with active assignments cannot be deleted.
func SeatHasActiveAssignment(seatID uuid.UUID, assignments []Assignment) bool {
	for i := range assignments {
		if assignments[i].Active && assignments[i].SeatID == seatID {
			return true
		}
	}
	return false
}
