package billing

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/orderdesk/backend/internal/domain/billing"
	"github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

type fakeOrderRepo struct {
	mu       sync.Mutex
	orders   map[string]*billing.Order
	failSave error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*billing.Order)}
}

func (r *fakeOrderRepo) FindByNumber(_ context.Context, orderNumber string) (*billing.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNumber]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]billing.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]billing.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, order *billing.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave != nil {
		return r.failSave
	}
	copied := *order
	r.orders[order.OrderNumber] = &copied
	return nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*billing.Payment
	seq      int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*billing.Payment)}
}

func (r *fakePaymentRepo) FindByNumber(_ context.Context, paymentNumber string) (*billing.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[paymentNumber]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) FindByOrderNumber(_ context.Context, orderNumber string) ([]billing.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]billing.Payment, 0)
	for _, p := range r.payments {
		if p.OrderNumber == orderNumber {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindAll(_ context.Context) ([]billing.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]billing.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentNumber < out[j].PaymentNumber })
	return out, nil
}

func (r *fakePaymentRepo) Save(_ context.Context, payment *billing.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *payment
	r.payments[payment.PaymentNumber] = &copied
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, paymentNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.payments, paymentNumber)
	return nil
}

func (r *fakePaymentRepo) NextPaymentNumber(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("PM%03d", r.seq), nil
}

type fakeProductRepo struct {
	products []catalog.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, _ uuid.UUID) (*catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindByNumber(_ context.Context, productNumber string) (*catalog.Product, error) {
	for i := range r.products {
		if r.products[i].ProductNumber == productNumber {
			return &r.products[i], nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]catalog.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) Save(_ context.Context, _ *catalog.Product) error {
	return nil
}

type fakeSummaryCache struct {
	mu          sync.Mutex
	entries     map[string]billing.Summary
	invalidates int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[string]billing.Summary)}
}

func (c *fakeSummaryCache) Get(_ context.Context, key string) (*billing.Summary, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (c *fakeSummaryCache) Set(_ context.Context, key string, summary billing.Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = summary
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]billing.Summary)
	c.invalidates++
	return nil
}

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
