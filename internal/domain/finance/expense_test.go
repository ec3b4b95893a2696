package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

func TestNewExpense(t *testing.T) {
	t.Run("valid expense", func(t *testing.T) {
		branchID := uuid.New()
		expense, err := NewExpense(
			uuid.New(), "EXP-202603-00001", "Generator fuel", ExpenseCategoryMaintenance,
			inr(200), inr(50), valueobject.NewDate(2026, 3, 8), &branchID, "monthly top-up",
		)
		require.NoError(t, err)
		assert.True(t, expense.Amount().Equals(inr(250)))
		assert.False(t, expense.IsGlobal())

		events := expense.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeExpenseRecorded, events[0].EventType())
	})

	t.Run("nil branch means global", func(t *testing.T) {
		expense, err := NewExpense(
			uuid.New(), "EXP-202603-00002", "Accounting software", ExpenseCategoryOther,
			inr(0), inr(999), valueobject.NewDate(2026, 3, 1), nil, "",
		)
		require.NoError(t, err)
		assert.True(t, expense.IsGlobal())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewExpense(
			uuid.New(), "EXP-202603-00003", "Nothing", ExpenseCategoryOther,
			inr(0), inr(0), valueobject.NewDate(2026, 3, 1), nil, "",
		)
		assert.Error(t, err)
	})

	t.Run("rejects invalid category", func(t *testing.T) {
		_, err := NewExpense(
			uuid.New(), "EXP-202603-00004", "Rent", "HOUSING",
			inr(100), inr(0), valueobject.NewDate(2026, 3, 1), nil, "",
		)
		assert.Error(t, err)
	})
}

func TestExpenseUpdate(t *testing.T) {
	expense, err := NewExpense(
		uuid.New(), "EXP-202603-00005", "Rent", ExpenseCategoryRent,
		inr(5000), inr(0), valueobject.NewDate(2026, 3, 1), nil, "",
	)
	require.NoError(t, err)

	branchID := uuid.New()
	require.NoError(t, expense.Update(
		"Rent March", ExpenseCategoryRent,
		inr(4500), inr(500), valueobject.NewDate(2026, 3, 2), &branchID, "revised",
	))
	assert.Equal(t, "Rent March", expense.Title)
	assert.True(t, expense.Amount().Equals(inr(5000)))
	assert.False(t, expense.IsGlobal())

	t.Run("rejects empty title", func(t *testing.T) {
		assert.Error(t, expense.Update("", ExpenseCategoryRent, inr(1), inr(0), valueobject.NewDate(2026, 3, 2), nil, ""))
	})
}
