package catalog

import (
	"errors"
	"testing"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("MF-001", "Ceramic Mug", decimal.NewFromInt(10), decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.Equal(t, "MF-001", p.ProductNumber)
	assert.Equal(t, "Ceramic Mug", p.Name)
	assert.NotEqual(t, "", p.ID.String())
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name          string
		productNumber string
		productName   string
		cost          decimal.Decimal
		price         decimal.Decimal
		wantCode      string
	}{
		{"empty number", "", "Mug", decimal.NewFromInt(10), decimal.NewFromInt(25), "INVALID_PRODUCT_NUMBER"},
		{"empty name", "MF-001", "", decimal.NewFromInt(10), decimal.NewFromInt(25), "INVALID_PRODUCT_NAME"},
		{"negative cost", "MF-001", "Mug", decimal.NewFromInt(-1), decimal.NewFromInt(25), "INVALID_COST"},
		{"negative price", "MF-001", "Mug", decimal.NewFromInt(10), decimal.NewFromInt(-5), "INVALID_PRICE"},
		{"price equals cost", "MF-001", "Mug", decimal.NewFromInt(25), decimal.NewFromInt(25), "PRICE_BELOW_COST"},
		{"price below cost", "MF-001", "Mug", decimal.NewFromInt(30), decimal.NewFromInt(25), "PRICE_BELOW_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.productNumber, tt.productName, tt.cost, tt.price)
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestProduct_Margin(t *testing.T) {
	p, err := NewProduct("MF-001", "Ceramic Mug", decimal.NewFromInt(10), decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.True(t, p.Margin().Equal(decimal.NewFromInt(15)))
}

func TestProduct_IsLowStock(t *testing.T) {
	p, err := NewProduct("MF-001", "Ceramic Mug", decimal.NewFromInt(10), decimal.NewFromInt(25))
	require.NoError(t, err)

	p.QuantityOnHand = 5
	p.LowStockThreshold = 5
	assert.True(t, p.IsLowStock())

	p.QuantityOnHand = 6
	assert.False(t, p.IsLowStock())
}
