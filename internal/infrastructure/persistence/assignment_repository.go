package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
// The FindActiveBy* lookups return nil without an error when no active
// assignment exists; absence is a normal answer for availability checks,
// not a failure.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// FindByID finds an assignment by its ID
func (r *GormAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Assignment, error) {
	var model models.AssignmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveForTenant returns all active assignments for a tenant
func (r *GormAssignmentRepository) FindActiveForTenant(ctx context.Context, tenantID uuid.UUID) ([]membership.Assignment, error) {
	var assignmentModels []models.AssignmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	assignments := make([]membership.Assignment, len(assignmentModels))
	for i, model := range assignmentModels {
		assignments[i] = *model.ToDomain()
	}
	return assignments, nil
}

// FindActiveByStudent returns the student's active assignment, if any
func (r *GormAssignmentRepository) FindActiveByStudent(ctx context.Context, tenantID, studentID uuid.UUID) (*membership.Assignment, error) {
	var model models.AssignmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND student_id = ? AND active = ?", tenantID, studentID, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByPair returns the active assignment for a (seat, shift) pair, if any
func (r *GormAssignmentRepository) FindActiveByPair(ctx context.Context, tenantID, seatID, shiftID uuid.UUID) (*membership.Assignment, error) {
	var model models.AssignmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND seat_id = ? AND shift_id = ? AND active = ?", tenantID, seatID, shiftID, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveBySeat returns all active assignments holding a seat
func (r *GormAssignmentRepository) FindActiveBySeat(ctx context.Context, tenantID, seatID uuid.UUID) ([]membership.Assignment, error) {
	var assignmentModels []models.AssignmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND seat_id = ? AND active = ?", tenantID, seatID, true).
		Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	assignments := make([]membership.Assignment, len(assignmentModels))
	for i, model := range assignmentModels {
		assignments[i] = *model.ToDomain()
	}
	return assignments, nil
}

// Save creates or updates an assignment
func (r *GormAssignmentRepository) Save(ctx context.Context, assignment *membership.Assignment) error {
	model := models.AssignmentModelFromDomain(assignment)
	return r.db.WithContext(ctx).Save(model).Error
}
