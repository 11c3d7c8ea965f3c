package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain", "25.00", "25.00 USD", false},
		{"whitespace trimmed", "  30.5 ", "30.50 USD", false},
		{"negative", "-5", "-5.00 USD", false},
		{"empty", "", "", true},
		{"non-numeric", "ten", "", true},
		{"double dot", "1.2.3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMoney(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
			assert.Equal(t, DefaultCurrency, m.Currency())
		})
	}
}

func TestNewMoneyRequiresCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(10), "")
	assert.Error(t, err)

	m, err := NewMoney(decimal.NewFromInt(10), EUR)
	require.NoError(t, err)
	assert.Equal(t, EUR, m.Currency())
}

func TestMoneyPredicates(t *testing.T) {
	assert.True(t, ZeroUSD().IsZero())
	assert.False(t, ZeroUSD().IsPositive())

	m := NewMoneyUSD(decimal.NewFromInt(5))
	assert.True(t, m.IsPositive())
	assert.False(t, m.IsNegative())

	neg := NewMoneyUSD(decimal.NewFromInt(-5))
	assert.True(t, neg.IsNegative())
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyUSD(decimal.RequireFromString("20.50"))
	b := NewMoneyUSD(decimal.RequireFromString("9.50"))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(30)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(11)))
}

func TestMoneyRefusesMixedCurrencies(t *testing.T) {
	usd := NewMoneyUSD(decimal.NewFromInt(10))
	eur, err := NewMoney(decimal.NewFromInt(10), EUR)
	require.NoError(t, err)

	_, err = usd.Add(eur)
	assert.Error(t, err)
	_, err = usd.Sub(eur)
	assert.Error(t, err)
	_, err = usd.GreaterThan(eur)
	assert.Error(t, err)

	assert.False(t, usd.Equal(eur))
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyUSD(decimal.RequireFromString("30.01"))
	b := NewMoneyUSD(decimal.RequireFromString("30.00"))

	over, err := a.GreaterThan(b)
	require.NoError(t, err)
	assert.True(t, over)

	over, err = b.GreaterThan(b)
	require.NoError(t, err)
	assert.False(t, over)

	assert.True(t, b.Equal(NewMoneyUSD(decimal.NewFromInt(30))))
}
