package membership

import (
	"context"
	"fmt"

	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StudentDeactivatedHandler releases a student's seat assignment when the
// student is manually deactivated. Reactivation does not restore the
// seat; the released pair is immediately available to other students.
type StudentDeactivatedHandler struct {
	assignmentRepo membership.AssignmentRepository
	logger         *zap.Logger
}

// NewStudentDeactivatedHandler creates a new handler for student deactivation events
func NewStudentDeactivatedHandler(
	assignmentRepo membership.AssignmentRepository,
	logger *zap.Logger,
) *StudentDeactivatedHandler {
	return &StudentDeactivatedHandler{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *StudentDeactivatedHandler) EventTypes() []string {
	return []string{membership.EventTypeStudentDeactivated}
}

// Handle releases the deactivated student's active assignment, if any
func (h *StudentDeactivatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	deactivated, ok := event.(*membership.StudentDeactivatedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", membership.EventTypeStudentDeactivated),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			membership.EventTypeStudentDeactivated, event.EventType())
	}

	assignment, err := h.assignmentRepo.FindActiveByStudent(ctx, event.TenantID(), deactivated.StudentID)
	if err != nil {
		h.logger.Error("failed to look up assignment for deactivated student",
			zap.String("student_id", deactivated.StudentID.String()),
			zap.Error(err),
		)
		return err
	}
	if assignment == nil {
		return nil
	}

	assignment.Release()
	if err := h.assignmentRepo.Save(ctx, assignment); err != nil {
		h.logger.Error("failed to release assignment",
			zap.String("assignment_id", assignment.ID.String()),
			zap.String("student_id", deactivated.StudentID.String()),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("released seat assignment for deactivated student",
		zap.String("student_id", deactivated.StudentID.String()),
		zap.String("seat_id", assignment.SeatID.String()),
		zap.String("shift_id", assignment.ShiftID.String()),
	)

	return nil
}
