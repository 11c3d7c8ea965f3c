package billing

import (
	"strings"
	"time"
)

// Tab identifies a dashboard view tab
type Tab string

const (
	TabAll         Tab = "all"
	TabAllPayments Tab = "allPayments"
	TabNew         Tab = "new"
	TabPaid        Tab = "paid"
	TabPending     Tab = "pending"
	TabOverdue     Tab = "overdue"
)

// IsValid checks if the tab is a valid Tab
func (t Tab) IsValid() bool {
	switch t {
	case TabAll, TabAllPayments, TabNew, TabPaid, TabPending, TabOverdue:
		return true
	}
	return false
}

// FilterState is an immutable description of the active filters. A nil
// date bound means unbounded on that side; malformed bounds are dropped
// to nil by the caller before reaching the pipeline (fail open).
type FilterState struct {
	From  *time.Time
	To    *time.Time
	Tab   Tab
	Query string
}

// View pairs an order set with a payment set
type View struct {
	Orders   []Order
	Payments []Payment
}

// Result is the output of the filter pipeline.
// DateFiltered is the reference set for aggregate metrics; Visible is
// the tab- and search-narrowed set used for row display and export.
// Tab and search never influence DateFiltered.
type Result struct {
	DateFiltered View
	Visible      View
}

// Apply runs the three filter stages (date, tab, search) over the base
// collections. All stages are pure; the base slices are never mutated.
func Apply(orders []Order, payments []Payment, fs FilterState, now time.Time) Result {
	dateFiltered := View{
		Orders:   filterOrdersByDate(orders, fs.From, fs.To),
		Payments: filterPaymentsByDate(payments, fs.From, fs.To),
	}

	visible := View{
		Orders:   filterOrdersByTab(dateFiltered.Orders, fs.Tab, now),
		Payments: dateFiltered.Payments,
	}

	if query := strings.TrimSpace(fs.Query); query != "" {
		visible = applySearch(visible, query)
	}

	return Result{
		DateFiltered: dateFiltered,
		Visible:      visible,
	}
}

// inRange checks [from, to] inclusive with nil meaning unbounded
func inRange(ts time.Time, from, to *time.Time) bool {
	if from != nil && ts.Before(*from) {
		return false
	}
	if to != nil && ts.After(*to) {
		return false
	}
	return true
}

func filterOrdersByDate(orders []Order, from, to *time.Time) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if inRange(o.OrderedAt, from, to) {
			out = append(out, o)
		}
	}
	return out
}

func filterPaymentsByDate(payments []Payment, from, to *time.Time) []Payment {
	out := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if inRange(p.PaidAt, from, to) {
			out = append(out, p)
		}
	}
	return out
}

func filterOrdersByTab(orders []Order, tab Tab, now time.Time) []Order {
	var keep func(o *Order) bool
	switch tab {
	case TabNew:
		keep = func(o *Order) bool { return o.PaymentStatus == PaymentStatusNew }
	case TabPaid:
		keep = func(o *Order) bool { return o.PaymentStatus == PaymentStatusPaid }
	case TabPending:
		keep = func(o *Order) bool { return o.PaymentStatus == PaymentStatusPending }
	case TabOverdue:
		keep = func(o *Order) bool { return IsOverdue(o, now) }
	default:
		// all and allPayments keep every order
		keep = func(o *Order) bool { return true }
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if keep(&o) {
			out = append(out, o)
		}
	}
	return out
}

// applySearch narrows orders by case-insensitive substring match on the
// company name, and narrows payments to those belonging to the matched
// orders.
func applySearch(view View, query string) View {
	needle := strings.ToLower(query)

	matched := make(map[string]struct{})
	orders := make([]Order, 0, len(view.Orders))
	for _, o := range view.Orders {
		if strings.Contains(strings.ToLower(o.CompanyName), needle) {
			orders = append(orders, o)
			matched[o.OrderNumber] = struct{}{}
		}
	}

	payments := make([]Payment, 0, len(view.Payments))
	for _, p := range view.Payments {
		if _, ok := matched[p.OrderNumber]; ok {
			payments = append(payments, p)
		}
	}

	return View{Orders: orders, Payments: payments}
}
