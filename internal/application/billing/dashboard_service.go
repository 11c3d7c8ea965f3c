package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/orderdesk/backend/internal/domain/billing"
	"github.com/orderdesk/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

const filterDateLayout = "2006-01-02"

// DashboardService assembles the reconciliation dashboard: aggregate
// metrics over the date-filtered set and visible rows for the active
// tab. Read-only; it never writes order or payment state.
type DashboardService struct {
	orderRepo   billing.OrderRepository
	paymentRepo billing.PaymentRepository
	productRepo catalog.ProductRepository
	cache       SummaryCache
	logger      *zap.Logger
	policy      billing.PricePolicy
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	orderRepo billing.OrderRepository,
	paymentRepo billing.PaymentRepository,
	productRepo catalog.ProductRepository,
	cache SummaryCache,
	logger *zap.Logger,
	policy billing.PricePolicy,
) *DashboardService {
	if !policy.IsValid() {
		policy = billing.PriceFromSnapshot
	}
	return &DashboardService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		cache:       cache,
		logger:      logger,
		policy:      policy,
		now:         time.Now,
	}
}

// SetClock overrides the time source
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
}

// ParseFilterState normalizes raw filter inputs. Malformed dates fall
// back to unbounded and an unknown tab falls back to the all tab, so a
// bad query string degrades the view instead of failing the request.
func ParseFilterState(req DashboardRequest) billing.FilterState {
	fs := billing.FilterState{Tab: billing.Tab(req.Tab), Query: req.Query}
	if !fs.Tab.IsValid() {
		fs.Tab = billing.TabAll
	}
	if from, err := time.Parse(filterDateLayout, req.From); err == nil {
		fs.From = &from
	}
	if to, err := time.Parse(filterDateLayout, req.To); err == nil {
		// make the upper bound cover the whole day
		end := to.Add(24*time.Hour - time.Nanosecond)
		fs.To = &end
	}
	return fs
}

// Dashboard computes the summary and visible rows for a filter state
func (s *DashboardService) Dashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error) {
	fs := ParseFilterState(req)
	now := s.now()

	result, allPayments, snap, err := s.pipeline(ctx, fs, now)
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{
		Summary:  s.summarize(ctx, fs, result.DateFiltered, snap, now),
		Tab:      string(fs.Tab),
		Orders:   []OrderRow{},
		Payments: []PaymentRow{},
	}

	if fs.Tab == billing.TabAllPayments {
		for _, p := range result.Visible.Payments {
			resp.Payments = append(resp.Payments, PaymentRow{
				PaymentNumber: p.PaymentNumber,
				OrderNumber:   p.OrderNumber,
				Amount:        p.Amount,
				Method:        p.Method.String(),
				Remark:        p.Remark,
				PaidAt:        p.PaidAt,
			})
		}
		return resp, nil
	}

	// row amounts come from the order's full payment history, not the
	// window-narrowed set: a January payment still counts toward a
	// February order's paid amount
	for i := range result.Visible.Orders {
		o := &result.Visible.Orders[i]
		total := billing.OrderTotal(o, snap, s.policy)
		paid := billing.PaidAmount(o.OrderNumber, allPayments)
		resp.Orders = append(resp.Orders, OrderRow{
			OrderNumber:   o.OrderNumber,
			CompanyName:   o.CompanyName,
			OrderedAt:     o.OrderedAt,
			OrderStatus:   o.FulfillmentStatus.String(),
			PaymentStatus: billing.Classify(o, now).String(),
			Total:         total,
			Paid:          paid,
			Remaining:     billing.RemainingBalance(o, snap, allPayments, s.policy),
			OverdueDate:   o.OverdueDate,
		})
	}
	return resp, nil
}

// ExportTable renders the visible set as a tab-shaped table for the
// CSV and HTML serializers
func (s *DashboardService) ExportTable(ctx context.Context, req DashboardRequest) (*billing.Table, error) {
	fs := ParseFilterState(req)
	now := s.now()

	result, allPayments, snap, err := s.pipeline(ctx, fs, now)
	if err != nil {
		return nil, err
	}

	table := billing.BuildTable(result.Visible, allPayments, fs.Tab, snap, s.policy, now)
	return &table, nil
}

func (s *DashboardService) pipeline(ctx context.Context, fs billing.FilterState, now time.Time) (billing.Result, []billing.Payment, *catalog.Snapshot, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return billing.Result{}, nil, nil, fmt.Errorf("failed to load orders: %w", err)
	}
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return billing.Result{}, nil, nil, fmt.Errorf("failed to load payments: %w", err)
	}

	var snap *catalog.Snapshot
	if s.policy == billing.PriceFromSnapshot {
		snap = catalog.NewSnapshot(nil)
	} else {
		products, err := s.productRepo.FindAll(ctx)
		if err != nil {
			return billing.Result{}, nil, nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		snap = catalog.NewSnapshot(products)
	}

	return billing.Apply(orders, payments, fs, now), payments, snap, nil
}

// summarize consults the cache keyed by date window only; tab and
// search never change the numbers, so they never appear in the key.
// Only the money metrics are served from the cache: the overdue count
// moves with the clock and is re-derived on every read, even on a hit.
func (s *DashboardService) summarize(ctx context.Context, fs billing.FilterState, view billing.View, snap *catalog.Snapshot, now time.Time) billing.Summary {
	key := summaryCacheKey(fs)
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("summary cache read failed", zap.Error(err))
		} else if ok {
			summary := *cached
			summary.OverdueCount = billing.CountOverdue(view, now)
			return summary
		}
	}

	summary := billing.Summarize(view, snap, s.policy, now)

	if s.cache != nil {
		// the stored count is never read back; zero it so a stale value
		// cannot leak through another consumer
		stored := summary
		stored.OverdueCount = 0
		if err := s.cache.Set(ctx, key, stored); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return summary
}

func summaryCacheKey(fs billing.FilterState) string {
	from, to := "", ""
	if fs.From != nil {
		from = fs.From.Format(filterDateLayout)
	}
	if fs.To != nil {
		to = fs.To.Format(filterDateLayout)
	}
	return from + "|" + to
}
