package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCollectionRecordRepository implements CollectionRecordRepository using GORM
type GormCollectionRecordRepository struct {
	db *gorm.DB
}

// NewGormCollectionRecordRepository creates a new GormCollectionRecordRepository
func NewGormCollectionRecordRepository(db *gorm.DB) *GormCollectionRecordRepository {
	return &GormCollectionRecordRepository{db: db}
}

// FindByID finds a collection record by its ID
func (r *GormCollectionRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CollectionRecord, error) {
	var model models.CollectionRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a collection record by ID for a specific tenant
func (r *GormCollectionRecordRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.CollectionRecord, error) {
	var model models.CollectionRecordModel
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

// FindAllForTenant finds all collection records for a tenant with filtering
func (r *GormCollectionRecordRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.CollectionFilter) ([]finance.CollectionRecord, error) {
	var recordModels []models.CollectionRecordModel
	query := r.db.WithContext(ctx).Model(&models.CollectionRecordModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]finance.CollectionRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// FindByStudent finds all collection records for a student
func (r *GormCollectionRecordRepository) FindByStudent(ctx context.Context, tenantID, studentID uuid.UUID) ([]finance.CollectionRecord, error) {
	var recordModels []models.CollectionRecordModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND student_id = ?", tenantID, studentID).
		Order("payment_date DESC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]finance.CollectionRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Save creates or updates a collection record
func (r *GormCollectionRecordRepository) Save(ctx context.Context, record *finance.CollectionRecord) error {
	model := models.CollectionRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves the collection record with optimistic locking
func (r *GormCollectionRecordRepository) SaveWithLock(ctx context.Context, record *finance.CollectionRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveRecordWithLock(tx, record)
	})
}

// SaveWithLockAndDuePayment saves the record and its cross-month due
// payment in one transaction, so the previous-due trail can never be
// lost after the record write succeeds
func (r *GormCollectionRecordRepository) SaveWithLockAndDuePayment(ctx context.Context, record *finance.CollectionRecord, item *finance.PreviousDuePaidItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveRecordWithLock(tx, record); err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		return tx.Create(models.PreviousDuePaidModelFromDomain(item)).Error
	})
}

// saveRecordWithLock performs the version-checked save inside an open
// transaction
func saveRecordWithLock(tx *gorm.DB, record *finance.CollectionRecord) error {
	var current models.CollectionRecordModel
	if err := tx.Select("version").Where("id = ?", record.GetID()).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// New record, just save
			model := models.CollectionRecordModelFromDomain(record)
			return tx.Create(model).Error
		}
		return err
	}

	// Check version matches (domain model already incremented version)
	expectedVersion := record.GetVersion() - 1
	if current.Version != expectedVersion {
		return shared.NewDomainError("VERSION_CONFLICT", "Collection record has been modified by another user")
	}

	model := models.CollectionRecordModelFromDomain(record)
	result := tx.Model(model).
		Where("id = ? AND version = ?", record.GetID(), expectedVersion).
		Save(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("VERSION_CONFLICT", "Collection record has been modified by another user")
	}
	return nil
}

// Delete removes a collection record for a tenant
func (r *GormCollectionRecordRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CollectionRecordModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts collection records for a tenant with filtering
func (r *GormCollectionRecordRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.CollectionFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.CollectionRecordModel{}).
		Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateReceiptNumber generates a new receipt number for the tenant
func (r *GormCollectionRecordRepository) GenerateReceiptNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var count int64
	today := time.Now()
	yearMonth := today.Format("200601")

	// Count receipts this month
	if err := r.db.WithContext(ctx).Model(&models.CollectionRecordModel{}).
		Where("tenant_id = ? AND receipt_number LIKE ?", tenantID, fmt.Sprintf("RCP-%s-%%", yearMonth)).
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("RCP-%s-%05d", yearMonth, count+1), nil
}

// applyFilter applies filter conditions to query
func (r *GormCollectionRecordRepository) applyFilter(query *gorm.DB, filter finance.CollectionFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply sorting with whitelist validation to prevent SQL injection
	sortField := ValidateSortField(filter.OrderBy, CollectionRecordSortFields, "created_at")
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
func (r *GormCollectionRecordRepository) applyFilterWithoutPagination(query *gorm.DB, filter finance.CollectionFilter) *gorm.DB {
	// Search in receipt number and remark
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(receipt_number ILIKE ? OR remark ILIKE ?)", searchPattern, searchPattern)
	}

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}

	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}

	if filter.AccrualMonth != "" {
		query = query.Where("accrual_month = ?", filter.AccrualMonth)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	return query
}
