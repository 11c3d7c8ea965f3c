package billing

import (
	"github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// PricePolicy selects where line-item prices come from
type PricePolicy string

const (
	// PriceFromCatalog resolves unit prices from the current catalog on
	// every read. Historical order totals drift when catalog prices
	// change; kept for compatibility with the original recompute model.
	PriceFromCatalog PricePolicy = "catalog"

	// PriceFromSnapshot uses the unit price and cost captured on the
	// line item at order intake. Totals are stable over catalog edits.
	PriceFromSnapshot PricePolicy = "snapshot"
)

// IsValid checks if the policy is a valid PricePolicy
func (p PricePolicy) IsValid() bool {
	return p == PriceFromCatalog || p == PriceFromSnapshot
}

// OrderTotal derives the order's sale value: sum of quantity times unit
// selling price across line items. Pure; never mutates its inputs.
//
// Non-positive quantities and unknown products contribute zero — the
// same fail-open stance as catalog.Snapshot.Resolve.
func OrderTotal(order *Order, snap *catalog.Snapshot, policy PricePolicy) decimal.Decimal {
	return sumLines(order, snap, policy, catalog.PriceFieldSelling)
}

// OrderExpense derives the order's cost value: sum of quantity times
// unit manufacturing cost across line items.
func OrderExpense(order *Order, snap *catalog.Snapshot, policy PricePolicy) decimal.Decimal {
	return sumLines(order, snap, policy, catalog.PriceFieldManufacturingCost)
}

func sumLines(order *Order, snap *catalog.Snapshot, policy PricePolicy, field catalog.PriceField) decimal.Decimal {
	total := decimal.Zero
	for _, line := range order.Lines {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			continue
		}

		var unit decimal.Decimal
		switch policy {
		case PriceFromSnapshot:
			if field == catalog.PriceFieldManufacturingCost {
				unit = line.UnitCost
			} else {
				unit = line.UnitPrice
			}
		default:
			unit = snap.Resolve(line.ProductNumber, field)
		}

		if unit.IsNegative() {
			continue
		}
		total = total.Add(line.Quantity.Mul(unit))
	}
	return total
}
