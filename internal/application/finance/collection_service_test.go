package finance

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// MockCollectionRecordRepository is a mock implementation of finance.CollectionRecordRepository
type MockCollectionRecordRepository struct {
	mock.Mock
}

func (m *MockCollectionRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CollectionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CollectionRecord), args.Error(1)
}

func (m *MockCollectionRecordRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.CollectionRecord, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CollectionRecord), args.Error(1)
}

func (m *MockCollectionRecordRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.CollectionFilter) ([]finance.CollectionRecord, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]finance.CollectionRecord), args.Error(1)
}

func (m *MockCollectionRecordRepository) FindByStudent(ctx context.Context, tenantID, studentID uuid.UUID) ([]finance.CollectionRecord, error) {
	args := m.Called(ctx, tenantID, studentID)
	return args.Get(0).([]finance.CollectionRecord), args.Error(1)
}

func (m *MockCollectionRecordRepository) Save(ctx context.Context, record *finance.CollectionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCollectionRecordRepository) SaveWithLock(ctx context.Context, record *finance.CollectionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCollectionRecordRepository) SaveWithLockAndDuePayment(ctx context.Context, record *finance.CollectionRecord, item *finance.PreviousDuePaidItem) error {
	args := m.Called(ctx, record, item)
	return args.Error(0)
}

func (m *MockCollectionRecordRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCollectionRecordRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.CollectionFilter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectionRecordRepository) GenerateReceiptNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

// MockPreviousDuePaidRepository is a mock implementation of finance.PreviousDuePaidRepository
type MockPreviousDuePaidRepository struct {
	mock.Mock
}

func (m *MockPreviousDuePaidRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.PreviousDueFilter) ([]finance.PreviousDuePaidItem, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]finance.PreviousDuePaidItem), args.Error(1)
}

func (m *MockPreviousDuePaidRepository) FindTouchingMonth(ctx context.Context, tenantID uuid.UUID, month string) ([]finance.PreviousDuePaidItem, error) {
	args := m.Called(ctx, tenantID, month)
	return args.Get(0).([]finance.PreviousDuePaidItem), args.Error(1)
}

func (m *MockPreviousDuePaidRepository) Save(ctx context.Context, item *finance.PreviousDuePaidItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func serviceMoney(t *testing.T, amount string) valueobject.Money {
	t.Helper()
	money, err := valueobject.NewMoneyINRFromString(amount)
	require.NoError(t, err)
	return money
}

func newServiceTestRecord(t *testing.T, tenantID uuid.UUID) *finance.CollectionRecord {
	t.Helper()
	record, err := finance.NewCollectionRecord(
		tenantID, "RCP-202603-00001", uuid.New(), uuid.New(),
		serviceMoney(t, "1000"), serviceMoney(t, "400"), serviceMoney(t, "200"),
		"2026-03", valueobject.NewDate(2026, 3, 5),
	)
	require.NoError(t, err)
	record.ClearDomainEvents()
	return record
}

func TestCollectionService_PayDue_SameMonth(t *testing.T) {
	collectionRepo := new(MockCollectionRecordRepository)
	svc := NewCollectionService(collectionRepo)

	tenantID := uuid.New()
	record := newServiceTestRecord(t, tenantID)

	collectionRepo.On("FindByIDForTenant", mock.Anything, tenantID, record.ID).Return(record, nil)
	collectionRepo.On("SaveWithLock", mock.Anything, record).Return(nil)

	result, err := svc.PayDue(context.Background(), tenantID, record.ID, PayDueRequest{
		Amount: "150",
		Method: "CASH",
		PaidOn: valueobject.NewDate(2026, 3, 20),
	})

	require.NoError(t, err)
	assert.Equal(t, "250", result.DueAmount.Amount().String())
	assert.Equal(t, "750", result.AmountPaid.Amount().String())

	// A same-month payment leaves no cross-month trail
	collectionRepo.AssertNotCalled(t, "SaveWithLockAndDuePayment", mock.Anything, mock.Anything, mock.Anything)
	collectionRepo.AssertExpectations(t)
}

func TestCollectionService_PayDue_CrossMonth(t *testing.T) {
	collectionRepo := new(MockCollectionRecordRepository)
	svc := NewCollectionService(collectionRepo)

	tenantID := uuid.New()
	record := newServiceTestRecord(t, tenantID)

	collectionRepo.On("FindByIDForTenant", mock.Anything, tenantID, record.ID).Return(record, nil)
	collectionRepo.On("SaveWithLockAndDuePayment", mock.Anything, record, mock.MatchedBy(func(item *finance.PreviousDuePaidItem) bool {
		return item.RecordID == record.ID &&
			item.OriginalMonth == "2026-03" &&
			item.PaidMonth() == "2026-04" &&
			item.Amount.Amount().String() == "400"
	})).Return(nil)

	result, err := svc.PayDue(context.Background(), tenantID, record.ID, PayDueRequest{
		Amount: "400",
		Method: "ONLINE",
		PaidOn: valueobject.NewDate(2026, 4, 10),
	})

	require.NoError(t, err)
	assert.Equal(t, finance.FeeStatusPaid.String(), result.Status)
	assert.True(t, result.DueAmount.IsZero())
	// The record and the trail go through the single transactional save
	collectionRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	collectionRepo.AssertExpectations(t)
}

func TestCollectionService_PayDue_CrossMonthSaveFails(t *testing.T) {
	collectionRepo := new(MockCollectionRecordRepository)
	svc := NewCollectionService(collectionRepo)

	tenantID := uuid.New()
	record := newServiceTestRecord(t, tenantID)

	collectionRepo.On("FindByIDForTenant", mock.Anything, tenantID, record.ID).Return(record, nil)
	collectionRepo.On("SaveWithLockAndDuePayment", mock.Anything, record, mock.Anything).
		Return(shared.NewDomainError("VERSION_CONFLICT", "Collection record has been modified by another user"))

	_, err := svc.PayDue(context.Background(), tenantID, record.ID, PayDueRequest{
		Amount: "400",
		Method: "ONLINE",
		PaidOn: valueobject.NewDate(2026, 4, 10),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VERSION_CONFLICT", domainErr.Code)
	collectionRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestCollectionService_PayDue_ExceedsDue(t *testing.T) {
	collectionRepo := new(MockCollectionRecordRepository)
	svc := NewCollectionService(collectionRepo)

	tenantID := uuid.New()
	record := newServiceTestRecord(t, tenantID)

	collectionRepo.On("FindByIDForTenant", mock.Anything, tenantID, record.ID).Return(record, nil)

	_, err := svc.PayDue(context.Background(), tenantID, record.ID, PayDueRequest{
		Amount: "500",
		Method: "CASH",
		PaidOn: valueobject.NewDate(2026, 3, 20),
	})

	require.ErrorIs(t, err, shared.ErrDueExceeded)
	collectionRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	collectionRepo.AssertNotCalled(t, "SaveWithLockAndDuePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollectionService_PayDue_InvalidAmount(t *testing.T) {
	collectionRepo := new(MockCollectionRecordRepository)
	svc := NewCollectionService(collectionRepo)

	tenantID := uuid.New()
	record := newServiceTestRecord(t, tenantID)

	collectionRepo.On("FindByIDForTenant", mock.Anything, tenantID, record.ID).Return(record, nil)

	_, err := svc.PayDue(context.Background(), tenantID, record.ID, PayDueRequest{
		Amount: "abc",
		Method: "CASH",
		PaidOn: valueobject.NewDate(2026, 3, 20),
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
}

func TestCollectionService_List_RejectsBadMonth(t *testing.T) {
	collectionRepo := new(MockCollectionRecordRepository)
	svc := NewCollectionService(collectionRepo)

	_, err := svc.List(context.Background(), uuid.New(), CollectionListFilter{Month: "March 2026"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_MONTH", domainErr.Code)
}
