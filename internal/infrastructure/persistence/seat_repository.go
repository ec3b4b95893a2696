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

// GormSeatRepository implements SeatRepository using GORM
type GormSeatRepository struct {
	db *gorm.DB
}

// NewGormSeatRepository creates a new GormSeatRepository
func NewGormSeatRepository(db *gorm.DB) *GormSeatRepository {
	return &GormSeatRepository{db: db}
}

// FindByID finds a seat by its ID
func (r *GormSeatRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Seat, error) {
	var model models.SeatModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a seat by ID for a specific tenant
func (r *GormSeatRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*membership.Seat, error) {
	var model models.SeatModel
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

// FindAllForTenant finds all seats for a tenant with filtering
func (r *GormSeatRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.SeatFilter) ([]membership.Seat, error) {
	var seatModels []models.SeatModel
	query := r.db.WithContext(ctx).Model(&models.SeatModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&seatModels).Error; err != nil {
		return nil, err
	}
	seats := make([]membership.Seat, len(seatModels))
	for i, model := range seatModels {
		seats[i] = *model.ToDomain()
	}
	return seats, nil
}

// Save creates or updates a seat
func (r *GormSeatRepository) Save(ctx context.Context, seat *membership.Seat) error {
	model := models.SeatModelFromDomain(seat)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a seat for a tenant
func (r *GormSeatRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SeatModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts seats for a tenant with filtering
func (r *GormSeatRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.SeatFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SeatModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter conditions to query
func (r *GormSeatRepository) applyFilter(query *gorm.DB, filter membership.SeatFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	sortField := ValidateSortField(filter.OrderBy, SeatSortFields, "seat_number")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

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
func (r *GormSeatRepository) applyFilterWithoutPagination(query *gorm.DB, filter membership.SeatFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("seat_number ILIKE ?", searchPattern)
	}

	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}

	return query
}
