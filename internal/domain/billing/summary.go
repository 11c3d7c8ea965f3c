package billing

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Summary holds the dashboard aggregate metrics. All six are computed
// from the date-filtered set; tab and search selections never change
// them.
type Summary struct {
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Profit       decimal.Decimal `json:"profit"`
	AmountDue    decimal.Decimal `json:"amountDue"`
	OverdueCount int             `json:"overdueCount"`
}

// Summarize computes the aggregate metrics over a date-filtered view.
//
// TotalSales and TotalExpense sum order totals and costs over the
// view's orders; TotalIncome sums the view's payments regardless of
// whether the paying order made the date cut. Profit is income minus
// expense and AmountDue is sales minus income, so both can go negative
// when payments land in a window whose orders do not.
func Summarize(view View, snap *catalog.Snapshot, policy PricePolicy, now time.Time) Summary {
	sales := decimal.Zero
	expense := decimal.Zero
	for i := range view.Orders {
		o := &view.Orders[i]
		sales = sales.Add(OrderTotal(o, snap, policy))
		expense = expense.Add(OrderExpense(o, snap, policy))
	}

	income := decimal.Zero
	for _, p := range view.Payments {
		income = income.Add(p.Amount)
	}

	return Summary{
		TotalSales:   sales,
		TotalIncome:  income,
		TotalExpense: expense,
		Profit:       income.Sub(expense),
		AmountDue:    sales.Sub(income),
		OverdueCount: CountOverdue(view, now),
	}
}

// CountOverdue counts the view's orders whose overdue overlay is active
// at the given instant. Unlike the money metrics the count moves with
// the clock, so readers must derive it at their own "now" rather than
// reuse one computed earlier.
func CountOverdue(view View, now time.Time) int {
	overdue := 0
	for i := range view.Orders {
		if IsOverdue(&view.Orders[i], now) {
			overdue++
		}
	}
	return overdue
}
