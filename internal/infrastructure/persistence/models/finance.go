package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// CollectionRecordModel is the persistence model for the CollectionRecord aggregate root.
// Money is stored as amount only; the currency is implied tenant-wide.
type CollectionRecordModel struct {
	TenantAggregateModel
	ReceiptNumber string            `gorm:"type:varchar(50);not null;uniqueIndex:idx_collection_tenant_receipt,priority:2"`
	StudentID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	BranchID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	TotalFee      decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	Cash          decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	Online        decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	AccrualMonth  string            `gorm:"type:varchar(7);not null;index"`
	PaymentDate   time.Time         `gorm:"type:date;not null"`
	Status        finance.FeeStatus `gorm:"type:varchar(20);not null;default:'UNPAID';index"`
	Remark        string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CollectionRecordModel) TableName() string {
	return "collection_records"
}

// ToDomain converts the persistence model to a domain CollectionRecord entity.
func (m *CollectionRecordModel) ToDomain() *finance.CollectionRecord {
	return &finance.CollectionRecord{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		ReceiptNumber: m.ReceiptNumber,
		StudentID:     m.StudentID,
		BranchID:      m.BranchID,
		TotalFee:      valueobject.NewMoneyINR(m.TotalFee),
		Cash:          valueobject.NewMoneyINR(m.Cash),
		Online:        valueobject.NewMoneyINR(m.Online),
		AccrualMonth:  m.AccrualMonth,
		PaymentDate:   valueobject.DateFromTime(m.PaymentDate),
		Status:        m.Status,
		Remark:        m.Remark,
	}
}

// FromDomain populates the persistence model from a domain CollectionRecord entity.
func (m *CollectionRecordModel) FromDomain(r *finance.CollectionRecord) {
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	m.ReceiptNumber = r.ReceiptNumber
	m.StudentID = r.StudentID
	m.BranchID = r.BranchID
	m.TotalFee = r.TotalFee.Amount()
	m.Cash = r.Cash.Amount()
	m.Online = r.Online.Amount()
	m.AccrualMonth = r.AccrualMonth
	m.PaymentDate = r.PaymentDate.Time()
	m.Status = r.Status
	m.Remark = r.Remark
}

// CollectionRecordModelFromDomain creates a new persistence model from a domain CollectionRecord.
func CollectionRecordModelFromDomain(r *finance.CollectionRecord) *CollectionRecordModel {
	m := &CollectionRecordModel{}
	m.FromDomain(r)
	return m
}

// PreviousDuePaidModel is the persistence model for the PreviousDuePaidItem aggregate root.
// PaidMonth is denormalized from PaidOn so monthly reconciliation can
// filter on an indexed column instead of date arithmetic.
type PreviousDuePaidModel struct {
	TenantAggregateModel
	RecordID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	StudentID     uuid.UUID             `gorm:"type:uuid;not null;index"`
	BranchID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Method        finance.PaymentMethod `gorm:"type:varchar(20);not null"`
	PaidOn        time.Time             `gorm:"type:date;not null"`
	PaidMonth     string                `gorm:"type:varchar(7);not null;index"`
	OriginalMonth string                `gorm:"type:varchar(7);not null;index"`
}

// TableName returns the table name for GORM
func (PreviousDuePaidModel) TableName() string {
	return "previous_due_payments"
}

// ToDomain converts the persistence model to a domain PreviousDuePaidItem entity.
func (m *PreviousDuePaidModel) ToDomain() *finance.PreviousDuePaidItem {
	return &finance.PreviousDuePaidItem{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		RecordID:      m.RecordID,
		StudentID:     m.StudentID,
		BranchID:      m.BranchID,
		Amount:        valueobject.NewMoneyINR(m.Amount),
		Method:        m.Method,
		PaidOn:        valueobject.DateFromTime(m.PaidOn),
		OriginalMonth: m.OriginalMonth,
	}
}

// FromDomain populates the persistence model from a domain PreviousDuePaidItem entity.
func (m *PreviousDuePaidModel) FromDomain(p *finance.PreviousDuePaidItem) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.RecordID = p.RecordID
	m.StudentID = p.StudentID
	m.BranchID = p.BranchID
	m.Amount = p.Amount.Amount()
	m.Method = p.Method
	m.PaidOn = p.PaidOn.Time()
	m.PaidMonth = p.PaidMonth()
	m.OriginalMonth = p.OriginalMonth
}

// PreviousDuePaidModelFromDomain creates a new persistence model from a domain PreviousDuePaidItem.
func PreviousDuePaidModelFromDomain(p *finance.PreviousDuePaidItem) *PreviousDuePaidModel {
	m := &PreviousDuePaidModel{}
	m.FromDomain(p)
	return m
}

// AdvancePaymentModel is the persistence model for the AdvancePayment aggregate root.
type AdvancePaymentModel struct {
	TenantAggregateModel
	StudentID uuid.UUID             `gorm:"type:uuid;not null;index"`
	BranchID  uuid.UUID             `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Method    finance.PaymentMethod `gorm:"type:varchar(20);not null"`
	PaidOn    time.Time             `gorm:"type:date;not null;index"`
	Note      string                `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (AdvancePaymentModel) TableName() string {
	return "advance_payments"
}

// ToDomain converts the persistence model to a domain AdvancePayment entity.
func (m *AdvancePaymentModel) ToDomain() *finance.AdvancePayment {
	return &finance.AdvancePayment{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		StudentID: m.StudentID,
		BranchID:  m.BranchID,
		Amount:    valueobject.NewMoneyINR(m.Amount),
		Method:    m.Method,
		PaidOn:    valueobject.DateFromTime(m.PaidOn),
		Note:      m.Note,
	}
}

// FromDomain populates the persistence model from a domain AdvancePayment entity.
func (m *AdvancePaymentModel) FromDomain(p *finance.AdvancePayment) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.StudentID = p.StudentID
	m.BranchID = p.BranchID
	m.Amount = p.Amount.Amount()
	m.Method = p.Method
	m.PaidOn = p.PaidOn.Time()
	m.Note = p.Note
}

// AdvancePaymentModelFromDomain creates a new persistence model from a domain AdvancePayment.
func AdvancePaymentModelFromDomain(p *finance.AdvancePayment) *AdvancePaymentModel {
	m := &AdvancePaymentModel{}
	m.FromDomain(p)
	return m
}

// ExpenseModel is the persistence model for the Expense aggregate root.
// IncurredMonth is denormalized from IncurredOn for monthly report queries.
type ExpenseModel struct {
	TenantAggregateModel
	ExpenseNumber string                  `gorm:"type:varchar(50);not null;uniqueIndex:idx_expense_tenant_number,priority:2"`
	Title         string                  `gorm:"type:varchar(200);not null"`
	Category      finance.ExpenseCategory `gorm:"type:varchar(30);not null;index"`
	Cash          decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Online        decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	IncurredOn    time.Time               `gorm:"type:date;not null;index"`
	IncurredMonth string                  `gorm:"type:varchar(7);not null;index"`
	BranchID      *uuid.UUID              `gorm:"type:uuid;index"`
	Remark        string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID: m.TenantID,
		},
		ExpenseNumber: m.ExpenseNumber,
		Title:         m.Title,
		Category:      m.Category,
		Cash:          valueobject.NewMoneyINR(m.Cash),
		Online:        valueobject.NewMoneyINR(m.Online),
		IncurredOn:    valueobject.DateFromTime(m.IncurredOn),
		BranchID:      m.BranchID,
		Remark:        m.Remark,
	}
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.FromDomainTenantAggregateRoot(e.TenantAggregateRoot)
	m.ExpenseNumber = e.ExpenseNumber
	m.Title = e.Title
	m.Category = e.Category
	m.Cash = e.Cash.Amount()
	m.Online = e.Online.Amount()
	m.IncurredOn = e.IncurredOn.Time()
	m.IncurredMonth = e.IncurredOn.Month()
	m.BranchID = e.BranchID
	m.Remark = e.Remark
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}
