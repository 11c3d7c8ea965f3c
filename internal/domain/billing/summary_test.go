package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	snap := testSnapshot(t)
	orders, payments := pipelineFixture(t)
	now := day("2026-02-15")

	result := Apply(orders, payments, FilterState{Tab: TabAll}, now)
	got := Summarize(result.DateFiltered, snap, PriceFromSnapshot, now)

	// OD001: 2x25 = 50, OD002: 1x100 = 100, OD003: 4x25 = 100
	assert.True(t, got.TotalSales.Equal(dec("250")), "sales = %s", got.TotalSales)
	assert.True(t, got.TotalIncome.Equal(dec("140")), "income = %s", got.TotalIncome)
	// costs: 2x10 + 1x60 + 4x10 = 120
	assert.True(t, got.TotalExpense.Equal(dec("120")), "expense = %s", got.TotalExpense)
	assert.True(t, got.Profit.Equal(dec("20")), "profit = %s", got.Profit)
	assert.True(t, got.AmountDue.Equal(dec("110")), "due = %s", got.AmountDue)
	assert.Equal(t, 1, got.OverdueCount)
}

func TestSummarizeRespectsDateWindow(t *testing.T) {
	snap := testSnapshot(t)
	orders, payments := pipelineFixture(t)
	now := day("2026-02-15")

	fs := FilterState{From: dayPtr("2026-01-01"), To: dayPtr("2026-01-31"), Tab: TabAll}
	result := Apply(orders, payments, fs, now)
	got := Summarize(result.DateFiltered, snap, PriceFromSnapshot, now)

	// only OD001 and OD002 ordered in january, only PM001 paid then
	assert.True(t, got.TotalSales.Equal(dec("150")), "sales = %s", got.TotalSales)
	assert.True(t, got.TotalIncome.Equal(dec("40")), "income = %s", got.TotalIncome)
	assert.True(t, got.TotalExpense.Equal(dec("80")), "expense = %s", got.TotalExpense)
	assert.True(t, got.Profit.Equal(dec("-40")), "profit = %s", got.Profit)
	assert.True(t, got.AmountDue.Equal(dec("110")), "due = %s", got.AmountDue)
	assert.Equal(t, 1, got.OverdueCount)
}

// Tab and search selections must never move the aggregate numbers.
func TestSummarizeIsTabAndSearchInvariant(t *testing.T) {
	snap := testSnapshot(t)
	orders, payments := pipelineFixture(t)
	now := day("2026-02-15")

	baseline := Summarize(Apply(orders, payments, FilterState{Tab: TabAll}, now).DateFiltered, snap, PriceFromSnapshot, now)

	states := []FilterState{
		{Tab: TabNew},
		{Tab: TabPaid},
		{Tab: TabPending},
		{Tab: TabOverdue},
		{Tab: TabAllPayments},
		{Tab: TabAll, Query: "acme"},
		{Tab: TabPending, Query: "zzz"},
	}
	for _, fs := range states {
		got := Summarize(Apply(orders, payments, fs, now).DateFiltered, snap, PriceFromSnapshot, now)
		require.Equal(t, baseline, got, "tab=%s query=%q", fs.Tab, fs.Query)
	}
}

func TestSummarizeEmptyView(t *testing.T) {
	snap := testSnapshot(t)
	now := day("2026-02-15")

	got := Summarize(View{}, snap, PriceFromSnapshot, now)

	assert.True(t, got.TotalSales.IsZero())
	assert.True(t, got.TotalIncome.IsZero())
	assert.True(t, got.TotalExpense.IsZero())
	assert.True(t, got.Profit.IsZero())
	assert.True(t, got.AmountDue.IsZero())
	assert.Equal(t, 0, got.OverdueCount)
}
