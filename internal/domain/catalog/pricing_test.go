package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWithProducts(t *testing.T) *Snapshot {
	t.Helper()

	mug, err := NewProduct("MF-001", "Ceramic Mug", decimal.NewFromInt(10), decimal.NewFromInt(25))
	require.NoError(t, err)
	vase, err := NewProduct("MF-002", "Glazed Vase", decimal.NewFromFloat(17.50), decimal.NewFromInt(40))
	require.NoError(t, err)

	return NewSnapshot([]Product{*mug, *vase})
}

func TestPriceField_IsValid(t *testing.T) {
	assert.True(t, PriceFieldSelling.IsValid())
	assert.True(t, PriceFieldManufacturingCost.IsValid())
	assert.False(t, PriceField("RETAIL").IsValid())
	assert.False(t, PriceField("").IsValid())
}

func TestSnapshot_Resolve(t *testing.T) {
	snap := snapshotWithProducts(t)

	tests := []struct {
		name          string
		productNumber string
		field         PriceField
		want          string
	}{
		{"selling price", "MF-001", PriceFieldSelling, "25"},
		{"manufacturing cost", "MF-001", PriceFieldManufacturingCost, "10"},
		{"fractional cost", "MF-002", PriceFieldManufacturingCost, "17.5"},
		{"missing product resolves to zero", "MF-999", PriceFieldSelling, "0"},
		{"invalid field resolves to zero", "MF-001", PriceField("RETAIL"), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snap.Resolve(tt.productNumber, tt.field)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s want %s", got, want)
		})
	}
}

func TestSnapshot_Lookup(t *testing.T) {
	snap := snapshotWithProducts(t)

	p, ok := snap.Lookup("MF-001")
	require.True(t, ok)
	assert.Equal(t, "Ceramic Mug", p.Name)

	_, ok = snap.Lookup("MF-404")
	assert.False(t, ok)

	assert.Equal(t, 2, snap.Len())
}

func TestSnapshot_NeverMutatedByResolve(t *testing.T) {
	snap := snapshotWithProducts(t)

	before := snap.Resolve("MF-001", PriceFieldSelling)
	_ = snap.Resolve("MF-404", PriceFieldSelling)
	after := snap.Resolve("MF-001", PriceFieldSelling)

	assert.True(t, before.Equal(after))
}
