package catalog

import (
	"github.com/shopspring/decimal"
)

// PriceField selects which price a lookup resolves
type PriceField string

const (
	PriceFieldSelling           PriceField = "SELLING_PRICE"
	PriceFieldManufacturingCost PriceField = "MANUFACTURING_COST"
)

// IsValid checks if the price field is valid
func (f PriceField) IsValid() bool {
	return f == PriceFieldSelling || f == PriceFieldManufacturingCost
}

// Snapshot is an immutable point-in-time view of the catalog used for
// price resolution. Lookups never mutate it, so a single snapshot can
// serve a whole dashboard refresh.
type Snapshot struct {
	byNumber map[string]Product
}

// NewSnapshot builds a snapshot from a product list
func NewSnapshot(products []Product) *Snapshot {
	byNumber := make(map[string]Product, len(products))
	for _, p := range products {
		byNumber[p.ProductNumber] = p
	}
	return &Snapshot{byNumber: byNumber}
}

// Lookup returns the product for a product number
func (s *Snapshot) Lookup(productNumber string) (Product, bool) {
	p, ok := s.byNumber[productNumber]
	return p, ok
}

// Len returns the number of products in the snapshot
func (s *Snapshot) Len() int {
	return len(s.byNumber)
}

// Resolve returns the requested price for a product number.
//
// Missing products resolve to zero rather than an error: an order line
// that references a product no longer in the catalog contributes
// nothing to the order total instead of failing the whole calculation.
// This fail-open behavior is intentional and covered by tests.
func (s *Snapshot) Resolve(productNumber string, field PriceField) decimal.Decimal {
	p, ok := s.byNumber[productNumber]
	if !ok {
		return decimal.Zero
	}
	switch field {
	case PriceFieldManufacturingCost:
		return p.ManufacturingCost
	case PriceFieldSelling:
		return p.SellingPrice
	default:
		return decimal.Zero
	}
}
