package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAdvancePaymentRepository implements AdvancePaymentRepository using GORM
type GormAdvancePaymentRepository struct {
	db *gorm.DB
}

// NewGormAdvancePaymentRepository creates a new GormAdvancePaymentRepository
func NewGormAdvancePaymentRepository(db *gorm.DB) *GormAdvancePaymentRepository {
	return &GormAdvancePaymentRepository{db: db}
}

// FindByID finds an advance payment by its ID
func (r *GormAdvancePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AdvancePayment, error) {
	var model models.AdvancePaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds an advance payment by ID for a specific tenant
func (r *GormAdvancePaymentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.AdvancePayment, error) {
	var model models.AdvancePaymentModel
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

// FindAllForTenant finds all advance payments for a tenant with filtering
func (r *GormAdvancePaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.AdvancePayment, error) {
	var paymentModels []models.AdvancePaymentModel
	query := r.db.WithContext(ctx).Model(&models.AdvancePaymentModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("note ILIKE ?", searchPattern)
	}

	sortField := ValidateSortField(filter.OrderBy, AdvancePaymentSortFields, "paid_on")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]finance.AdvancePayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// FindByStudent finds all advance payments for a student
func (r *GormAdvancePaymentRepository) FindByStudent(ctx context.Context, tenantID, studentID uuid.UUID) ([]finance.AdvancePayment, error) {
	var paymentModels []models.AdvancePaymentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND student_id = ?", tenantID, studentID).
		Order("paid_on DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]finance.AdvancePayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save creates or updates an advance payment
func (r *GormAdvancePaymentRepository) Save(ctx context.Context, payment *finance.AdvancePayment) error {
	model := models.AdvancePaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an advance payment for a tenant
func (r *GormAdvancePaymentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AdvancePaymentModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
