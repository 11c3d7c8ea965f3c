package billing

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest carries the intake workflow inputs. Amount stays
// a raw string so that empty and non-numeric input is rejected by the
// workflow itself rather than by JSON unmarshalling upstream.
type RecordPaymentRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Method      string `json:"method" binding:"required"`
	Remark      string `json:"remark"`
}

// PaymentResponse describes a recorded payment and the order state it
// left behind
type PaymentResponse struct {
	PaymentNumber string          `json:"payment_number"`
	OrderNumber   string          `json:"order_number"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Remark        string          `json:"remark,omitempty"`
	PaidAt        time.Time       `json:"paid_at"`
	OrderStatus   string          `json:"order_status"`
	Remaining     decimal.Decimal `json:"remaining"`
}

// DashboardRequest carries the raw filter inputs. Dates use the
// 2006-01-02 layout; malformed values fall back to unbounded and an
// unknown tab falls back to the all tab.
type DashboardRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Tab   string `form:"tab"`
	Query string `form:"query"`
}

// OrderRow is a dashboard order row with its derived amounts
type OrderRow struct {
	OrderNumber   string          `json:"order_number"`
	CompanyName   string          `json:"company_name"`
	OrderedAt     time.Time       `json:"ordered_at"`
	OrderStatus   string          `json:"order_status"`
	PaymentStatus string          `json:"payment_status"`
	Total         decimal.Decimal `json:"total"`
	Paid          decimal.Decimal `json:"paid"`
	Remaining     decimal.Decimal `json:"remaining"`
	OverdueDate   *time.Time      `json:"overdue_date,omitempty"`
}

// PaymentRow is a dashboard payment row
type PaymentRow struct {
	PaymentNumber string          `json:"payment_number"`
	OrderNumber   string          `json:"order_number"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Remark        string          `json:"remark,omitempty"`
	PaidAt        time.Time       `json:"paid_at"`
}

// DashboardResponse bundles the aggregate metrics with the visible rows
// for the active tab. Orders is empty on the allPayments tab and
// Payments is empty on every other tab.
type DashboardResponse struct {
	Summary  billing.Summary `json:"summary"`
	Tab      string          `json:"tab"`
	Orders   []OrderRow      `json:"orders"`
	Payments []PaymentRow    `json:"payments"`
}
