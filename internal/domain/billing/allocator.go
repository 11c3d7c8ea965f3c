package billing

import (
	"github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// SettleEpsilon is the balance below which an order counts as fully
// settled. Amounts arrive from JSON as floats, so exact zero cannot be
// relied on.
var SettleEpsilon = decimal.NewFromFloat(0.005)

// Settled returns true when a remaining balance is within SettleEpsilon
func Settled(remaining decimal.Decimal) bool {
	return remaining.LessThanOrEqual(SettleEpsilon)
}

// PaidAmount sums all payments recorded against the order number.
// Deterministic for identical inputs; order of the slice is irrelevant.
func PaidAmount(orderNumber string, payments []Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		if p.OrderNumber == orderNumber {
			paid = paid.Add(p.Amount)
		}
	}
	return paid
}

// RemainingBalance derives order total minus paid amount, floored at
// zero. An order with zero total and zero payments is fully settled,
// not an error. Overpaid states are rejected at intake, but the read
// side must never report a negative balance.
func RemainingBalance(order *Order, snap *catalog.Snapshot, payments []Payment, policy PricePolicy) decimal.Decimal {
	total := OrderTotal(order, snap, policy)
	paid := PaidAmount(order.OrderNumber, payments)

	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
