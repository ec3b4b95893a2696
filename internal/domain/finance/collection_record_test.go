package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

func inr(amount float64) valueobject.Money {
	return valueobject.NewMoneyINRFromFloat(amount)
}

func newTestRecord(t *testing.T, totalFee, cash, online float64, month string) *CollectionRecord {
	t.Helper()
	record, err := NewCollectionRecord(
		uuid.New(), "RCP-202603-00001", uuid.New(), uuid.New(),
		inr(totalFee), inr(cash), inr(online),
		month, valueobject.NewDate(2026, 3, 1),
	)
	require.NoError(t, err)
	return record
}

func TestNewCollectionRecord(t *testing.T) {
	t.Run("derives paid and due", func(t *testing.T) {
		record := newTestRecord(t, 1000, 400, 200, "2026-03")
		assert.True(t, record.AmountPaid().Equals(inr(600)))
		assert.True(t, record.Due().Equals(inr(400)))
		assert.Equal(t, FeeStatusPartiallyPaid, record.Status)
	})

	t.Run("fully paid record", func(t *testing.T) {
		record := newTestRecord(t, 1000, 1000, 0, "2026-03")
		assert.True(t, record.Due().IsZero())
		assert.Equal(t, FeeStatusPaid, record.Status)
	})

	t.Run("unpaid record", func(t *testing.T) {
		record := newTestRecord(t, 1000, 0, 0, "2026-03")
		assert.Equal(t, FeeStatusUnpaid, record.Status)
	})

	t.Run("rejects paid exceeding total", func(t *testing.T) {
		_, err := NewCollectionRecord(
			uuid.New(), "RCP-202603-00002", uuid.New(), uuid.New(),
			inr(500), inr(400), inr(200),
			"2026-03", valueobject.NewDate(2026, 3, 1),
		)
		assert.Error(t, err)
	})

	t.Run("rejects bad accrual month", func(t *testing.T) {
		_, err := NewCollectionRecord(
			uuid.New(), "RCP-202603-00003", uuid.New(), uuid.New(),
			inr(500), inr(0), inr(0),
			"March 2026", valueobject.NewDate(2026, 3, 1),
		)
		assert.Error(t, err)
	})
}

func TestPayDue(t *testing.T) {
	t.Run("partial payment reduces due", func(t *testing.T) {
		record := newTestRecord(t, 1000, 400, 200, "2026-03")
		record.ClearDomainEvents()

		err := record.PayDue(inr(150), PaymentMethodCash, valueobject.NewDate(2026, 3, 20))
		require.NoError(t, err)

		assert.True(t, record.Due().Equals(inr(250)))
		assert.True(t, record.Cash.Equals(inr(550)))
		assert.Equal(t, FeeStatusPartiallyPaid, record.Status)

		events := record.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeDuePaid, events[0].EventType())
	})

	t.Run("overpayment is rejected", func(t *testing.T) {
		record := newTestRecord(t, 1000, 400, 200, "2026-03")
		err := record.PayDue(inr(500), PaymentMethodCash, valueobject.NewDate(2026, 3, 20))
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrDueExceeded)
		assert.True(t, record.Due().Equals(inr(400)))
	})

	t.Run("exact payment settles the record", func(t *testing.T) {
		record := newTestRecord(t, 1000, 400, 200, "2026-03")
		err := record.PayDue(inr(400), PaymentMethodOnline, valueobject.NewDate(2026, 4, 2))
		require.NoError(t, err)
		assert.True(t, record.Due().IsZero())
		assert.Equal(t, FeeStatusPaid, record.Status)
		assert.True(t, record.Online.Equals(inr(600)))
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		record := newTestRecord(t, 1000, 0, 0, "2026-03")
		assert.Error(t, record.PayDue(inr(0), PaymentMethodCash, valueobject.NewDate(2026, 3, 20)))
		assert.Error(t, record.PayDue(inr(-10), PaymentMethodCash, valueobject.NewDate(2026, 3, 20)))
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		record := newTestRecord(t, 1000, 0, 0, "2026-03")
		assert.Error(t, record.PayDue(inr(100), "CHEQUE", valueobject.NewDate(2026, 3, 20)))
	})

	t.Run("paying a settled record is rejected", func(t *testing.T) {
		record := newTestRecord(t, 1000, 1000, 0, "2026-03")
		err := record.PayDue(inr(1), PaymentMethodCash, valueobject.NewDate(2026, 3, 20))
		assert.ErrorIs(t, err, shared.ErrDueExceeded)
	})
}

func TestFeeStatusLifecycle(t *testing.T) {
	record := newTestRecord(t, 1000, 0, 0, "2026-03")
	assert.Equal(t, FeeStatusUnpaid, record.Status)

	require.NoError(t, record.PayDue(inr(300), PaymentMethodCash, valueobject.NewDate(2026, 3, 10)))
	assert.Equal(t, FeeStatusPartiallyPaid, record.Status)

	require.NoError(t, record.PayDue(inr(700), PaymentMethodOnline, valueobject.NewDate(2026, 3, 25)))
	assert.Equal(t, FeeStatusPaid, record.Status)
}
