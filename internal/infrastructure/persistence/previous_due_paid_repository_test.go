package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
	"github.com/studyhall/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPreviousDueTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PreviousDuePaidModel{})
	require.NoError(t, err)

	return db
}

func newTestDueItem(t *testing.T, tenantID uuid.UUID, paidOn valueobject.Date, originalMonth string) *finance.PreviousDuePaidItem {
	t.Helper()
	amount, err := valueobject.NewMoneyINRFromString("250")
	require.NoError(t, err)

	item, err := finance.NewPreviousDuePaidItem(
		tenantID, uuid.New(), uuid.New(), uuid.New(),
		amount, finance.PaymentMethodCash, paidOn, originalMonth,
	)
	require.NoError(t, err)
	return item
}

func TestGormPreviousDuePaidRepository_FindTouchingMonth(t *testing.T) {
	db := setupPreviousDueTestDB(t)
	repo := NewGormPreviousDuePaidRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()

	// Arrived in April for a March due
	arrived := newTestDueItem(t, tenantID, valueobject.NewDate(2026, 4, 10), "2026-03")
	// Arrived in May for an April due
	accrued := newTestDueItem(t, tenantID, valueobject.NewDate(2026, 5, 2), "2026-04")
	// Unrelated to April entirely
	unrelated := newTestDueItem(t, tenantID, valueobject.NewDate(2026, 7, 1), "2026-06")

	require.NoError(t, repo.Save(ctx, arrived))
	require.NoError(t, repo.Save(ctx, accrued))
	require.NoError(t, repo.Save(ctx, unrelated))

	touching, err := repo.FindTouchingMonth(ctx, tenantID, "2026-04")
	require.NoError(t, err)
	require.Len(t, touching, 2)

	ids := []uuid.UUID{touching[0].ID, touching[1].ID}
	assert.Contains(t, ids, arrived.ID)
	assert.Contains(t, ids, accrued.ID)
}

func TestGormPreviousDuePaidRepository_FindAllForTenant_Filters(t *testing.T) {
	db := setupPreviousDueTestDB(t)
	repo := NewGormPreviousDuePaidRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	april := newTestDueItem(t, tenantID, valueobject.NewDate(2026, 4, 10), "2026-03")
	may := newTestDueItem(t, tenantID, valueobject.NewDate(2026, 5, 2), "2026-03")

	require.NoError(t, repo.Save(ctx, april))
	require.NoError(t, repo.Save(ctx, may))

	t.Run("filters by paid month", func(t *testing.T) {
		items, err := repo.FindAllForTenant(ctx, tenantID, finance.PreviousDueFilter{PaidMonth: "2026-04"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, april.ID, items[0].ID)
	})

	t.Run("filters by original month", func(t *testing.T) {
		items, err := repo.FindAllForTenant(ctx, tenantID, finance.PreviousDueFilter{OriginalMonth: "2026-03"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("other tenants see nothing", func(t *testing.T) {
		items, err := repo.FindAllForTenant(ctx, uuid.New(), finance.PreviousDueFilter{})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestGormPreviousDuePaidRepository_RoundTrip(t *testing.T) {
	db := setupPreviousDueTestDB(t)
	repo := NewGormPreviousDuePaidRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	item := newTestDueItem(t, tenantID, valueobject.NewDate(2026, 4, 10), "2026-03")
	require.NoError(t, repo.Save(ctx, item))

	items, err := repo.FindAllForTenant(ctx, tenantID, finance.PreviousDueFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, item.RecordID, got.RecordID)
	assert.Equal(t, "2026-03", got.OriginalMonth)
	assert.Equal(t, "2026-04", got.PaidMonth())
	assert.Equal(t, "2026-04-10", got.PaidOn.String())
	assert.True(t, got.Amount.Equals(item.Amount))
	assert.Equal(t, finance.PaymentMethodCash, got.Method)
}
