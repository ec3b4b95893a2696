package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), INR)
		require.NoError(t, err)
		assert.Equal(t, INR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", INR)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", INR)
		assert.Error(t, err)
	})
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds matching currencies", func(t *testing.T) {
		a := NewMoneyINRFromFloat(400)
		b := NewMoneyINRFromFloat(200)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(600)))
	})

	t.Run("rejects mismatched currencies", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b, _ := NewMoney(decimal.NewFromInt(100), USD)
		_, err := a.Add(b)
		assert.Error(t, err)
	})
}

func TestMoneySubtract(t *testing.T) {
	a := NewMoneyINRFromFloat(1000)
	b := NewMoneyINRFromFloat(600)
	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(400)))
}

func TestMoneyClampZero(t *testing.T) {
	t.Run("negative clamps to zero", func(t *testing.T) {
		m := NewMoneyINRFromFloat(100).MustSubtract(NewMoneyINRFromFloat(250))
		assert.True(t, m.IsNegative())
		assert.True(t, m.ClampZero().IsZero())
	})

	t.Run("positive is unchanged", func(t *testing.T) {
		m := NewMoneyINRFromFloat(42)
		assert.True(t, m.ClampZero().Equals(m))
	})

	t.Run("zero is unchanged", func(t *testing.T) {
		assert.True(t, ZeroINR().ClampZero().IsZero())
	})
}

func TestMoneyComparisons(t *testing.T) {
	small := NewMoneyINRFromFloat(150)
	big := NewMoneyINRFromFloat(400)

	less, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := small.GreaterThan(big)
	require.NoError(t, err)
	assert.False(t, greater)
}

func TestMoneyJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		m := NewMoneyINRFromFloat(99.5)
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"99.5","currency":"INR"}`, string(data))
	})

	t.Run("unmarshal defaults currency", func(t *testing.T) {
		var m Money
		err := json.Unmarshal([]byte(`{"amount":"10"}`), &m)
		require.NoError(t, err)
		assert.Equal(t, DefaultCurrency, m.Currency())
	})
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string amount", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("250.00"))
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(250)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("nil scans to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})
}
