package billing

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/catalog"
)

// Table is a rendered export: one header row plus data rows, already
// projected to the active tab's column set. Serializer-agnostic; the
// CSV and HTML writers both consume it as-is.
type Table struct {
	Header []string
	Rows   [][]string
}

const exportDateLayout = "2006-01-02"

// BuildTable projects the visible view into the export table for the
// given tab. Row order follows the view's order; every row carries
// exactly len(Header) cells. Paid amounts sum each order's full
// payment history, not just the payments the date window kept.
func BuildTable(view View, allPayments []Payment, tab Tab, snap *catalog.Snapshot, policy PricePolicy, now time.Time) Table {
	switch tab {
	case TabAllPayments:
		return paymentTable(view.Payments)
	case TabPending:
		return pendingTable(view, allPayments, snap, policy, false)
	case TabOverdue:
		return pendingTable(view, allPayments, snap, policy, true)
	default:
		return orderTable(view.Orders, snap, policy, now)
	}
}

// orderTable serves the all, new and paid tabs. The payment status
// column shows the effective classification, overdue overlay included.
func orderTable(orders []Order, snap *catalog.Snapshot, policy PricePolicy, now time.Time) Table {
	t := Table{
		Header: []string{"Order ID", "Company", "Order Status", "Payment Status", "Total Amount"},
		Rows:   make([][]string, 0, len(orders)),
	}
	for i := range orders {
		o := &orders[i]
		t.Rows = append(t.Rows, []string{
			o.OrderNumber,
			o.CompanyName,
			o.FulfillmentStatus.String(),
			Classify(o, now).String(),
			OrderTotal(o, snap, policy).StringFixed(2),
		})
	}
	return t
}

// pendingTable serves the pending and overdue tabs, which swap the
// status column for the paid amount; the overdue tab adds the date the
// order went overdue.
func pendingTable(view View, allPayments []Payment, snap *catalog.Snapshot, policy PricePolicy, withOverdueDate bool) Table {
	header := []string{"Order ID", "Company", "Order Status", "Total Amount", "Paid Amount"}
	if withOverdueDate {
		header = append(header, "Overdue Date")
	}

	t := Table{Header: header, Rows: make([][]string, 0, len(view.Orders))}
	for i := range view.Orders {
		o := &view.Orders[i]
		row := []string{
			o.OrderNumber,
			o.CompanyName,
			o.FulfillmentStatus.String(),
			OrderTotal(o, snap, policy).StringFixed(2),
			PaidAmount(o.OrderNumber, allPayments).StringFixed(2),
		}
		if withOverdueDate {
			due := ""
			if o.OverdueDate != nil {
				due = o.OverdueDate.Format(exportDateLayout)
			}
			row = append(row, due)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func paymentTable(payments []Payment) Table {
	t := Table{
		Header: []string{"Payment ID", "Order ID", "Method", "Date", "Amount"},
		Rows:   make([][]string, 0, len(payments)),
	}
	for _, p := range payments {
		t.Rows = append(t.Rows, []string{
			p.PaymentNumber,
			p.OrderNumber,
			p.Method.String(),
			p.PaidAt.Format(exportDateLayout),
			p.Amount.StringFixed(2),
		})
	}
	return t
}
