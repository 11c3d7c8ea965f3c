package billing

import (
	"testing"
	"time"

	"github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// testSnapshot builds a small catalog: MF-001 sells at 25.00 with a
// 10.00 cost, MF-002 sells at 100.00 with a 60.00 cost.
func testSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	p1, err := catalog.NewProduct("MF-001", "Widget", dec("10.00"), dec("25.00"))
	require.NoError(t, err)
	p2, err := catalog.NewProduct("MF-002", "Gadget", dec("60.00"), dec("100.00"))
	require.NoError(t, err)

	return catalog.NewSnapshot([]catalog.Product{*p1, *p2})
}

func testOrder(t *testing.T, orderNumber, company, orderedAt string, status PaymentStatus, lines ...OrderLine) Order {
	t.Helper()

	o, err := NewOrder(orderNumber, company, day(orderedAt))
	require.NoError(t, err)
	o.PaymentStatus = status
	o.Lines = append(o.Lines, lines...)
	return *o
}

func line(productNumber, qty, price, cost string) OrderLine {
	return OrderLine{
		ProductNumber: productNumber,
		Quantity:      dec(qty),
		UnitPrice:     dec(price),
		UnitCost:      dec(cost),
	}
}

func testPayment(t *testing.T, paymentNumber, orderNumber, amount string, method PaymentMethod, paidAt string) Payment {
	t.Helper()

	p, err := NewPayment(paymentNumber, orderNumber, dec(amount), method, "", day(paidAt))
	require.NoError(t, err)
	return *p
}
