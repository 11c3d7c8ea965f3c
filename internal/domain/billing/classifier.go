package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// EffectiveStatus is the payment classification shown to callers:
// the stored payment status plus the derived Overdue overlay.
type EffectiveStatus string

const (
	EffectiveNew     EffectiveStatus = "NEW"
	EffectivePending EffectiveStatus = "PENDING"
	EffectivePaid    EffectiveStatus = "PAID"
	EffectiveOverdue EffectiveStatus = "OVERDUE"
)

// String returns the string representation of EffectiveStatus
func (s EffectiveStatus) String() string {
	return string(s)
}

// IsOverdue reports the Overdue overlay for an order at the given time:
// payment status Pending, an overdue date set, and that date on or
// before now. Computed on every read, never cached past the triggering
// instant.
func IsOverdue(order *Order, now time.Time) bool {
	if order.PaymentStatus != PaymentStatusPending {
		return false
	}
	if order.OverdueDate == nil {
		return false
	}
	return !order.OverdueDate.After(now)
}

// Classify returns the effective payment classification for an order
func Classify(order *Order, now time.Time) EffectiveStatus {
	if IsOverdue(order, now) {
		return EffectiveOverdue
	}
	switch order.PaymentStatus {
	case PaymentStatusPaid:
		return EffectivePaid
	case PaymentStatusPending:
		return EffectivePending
	default:
		return EffectiveNew
	}
}

// DeriveStatus computes what the stored payment status should be from
// the order's remaining balance and cumulative paid amount. Used by the
// intake workflow after a successful write and by payment-mutation
// reconciliation; read paths never apply it.
func DeriveStatus(remaining, paid decimal.Decimal) PaymentStatus {
	if Settled(remaining) {
		return PaymentStatusPaid
	}
	if paid.GreaterThan(decimal.Zero) {
		return PaymentStatusPending
	}
	return PaymentStatusNew
}
