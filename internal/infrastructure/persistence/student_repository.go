package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStudentRepository implements StudentRepository using GORM
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository creates a new GormStudentRepository
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// FindByID finds a student by its ID
func (r *GormStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a student by ID for a specific tenant
func (r *GormStudentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*membership.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all students for a tenant with filtering
func (r *GormStudentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.StudentFilter) ([]membership.Student, error) {
	var studentModels []models.StudentModel
	query := r.db.WithContext(ctx).Model(&models.StudentModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&studentModels).Error; err != nil {
		return nil, err
	}
	students := make([]membership.Student, len(studentModels))
	for i, model := range studentModels {
		students[i] = *model.ToDomain()
	}
	return students, nil
}

// Save creates or updates a student
func (r *GormStudentRepository) Save(ctx context.Context, student *membership.Student) error {
	model := models.StudentModelFromDomain(student)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves the student with optimistic locking
func (r *GormStudentRepository) SaveWithLock(ctx context.Context, student *membership.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.StudentModel
		if err := tx.Select("version").Where("id = ?", student.GetID()).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// New record, just save
				model := models.StudentModelFromDomain(student)
				return tx.Create(model).Error
			}
			return err
		}

		// Check version matches (domain model already incremented version)
		expectedVersion := student.GetVersion() - 1
		if current.Version != expectedVersion {
			return shared.NewDomainError("VERSION_CONFLICT", "Student has been modified by another user")
		}

		model := models.StudentModelFromDomain(student)
		result := tx.Model(model).
			Where("id = ? AND version = ?", student.GetID(), expectedVersion).
			Save(model)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("VERSION_CONFLICT", "Student has been modified by another user")
		}
		return nil
	})
}

// Delete removes a student for a tenant
func (r *GormStudentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StudentModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts students for a tenant with filtering
func (r *GormStudentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.StudentFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.StudentModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter conditions to query
func (r *GormStudentRepository) applyFilter(query *gorm.DB, filter membership.StudentFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply sorting with whitelist validation to prevent SQL injection
	sortField := ValidateSortField(filter.OrderBy, StudentSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	// Apply pagination
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	return query
}

// applyFilterWithoutPagination applies filter conditions without pagination
func (r *GormStudentRepository) applyFilterWithoutPagination(query *gorm.DB, filter membership.StudentFilter) *gorm.DB {
	// Search in name, phone and email
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(name ILIKE ? OR phone ILIKE ? OR email ILIKE ?)", searchPattern, searchPattern, searchPattern)
	}

	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	return query
}
