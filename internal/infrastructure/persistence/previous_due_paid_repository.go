package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPreviousDuePaidRepository implements PreviousDuePaidRepository using GORM
type GormPreviousDuePaidRepository struct {
	db *gorm.DB
}

// NewGormPreviousDuePaidRepository creates a new GormPreviousDuePaidRepository
func NewGormPreviousDuePaidRepository(db *gorm.DB) *GormPreviousDuePaidRepository {
	return &GormPreviousDuePaidRepository{db: db}
}

// FindAllForTenant finds previous-due payments for a tenant with filtering
func (r *GormPreviousDuePaidRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.PreviousDueFilter) ([]finance.PreviousDuePaidItem, error) {
	var itemModels []models.PreviousDuePaidModel
	query := r.db.WithContext(ctx).Model(&models.PreviousDuePaidModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.PaidMonth != "" {
		query = query.Where("paid_month = ?", filter.PaidMonth)
	}
	if filter.OriginalMonth != "" {
		query = query.Where("original_month = ?", filter.OriginalMonth)
	}

	sortField := ValidateSortField(filter.OrderBy, PreviousDuePaidSortFields, "paid_on")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]finance.PreviousDuePaidItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindTouchingMonth finds payments that either arrived in or accrued in
// the given month. Reconciliation needs both directions: arrivals add to
// the month, accruals subtract from it.
func (r *GormPreviousDuePaidRepository) FindTouchingMonth(ctx context.Context, tenantID uuid.UUID, month string) ([]finance.PreviousDuePaidItem, error) {
	var itemModels []models.PreviousDuePaidModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND (paid_month = ? OR original_month = ?)", tenantID, month, month).
		Order("paid_on DESC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]finance.PreviousDuePaidItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Save creates a previous-due payment record
func (r *GormPreviousDuePaidRepository) Save(ctx context.Context, item *finance.PreviousDuePaidItem) error {
	model := models.PreviousDuePaidModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}
