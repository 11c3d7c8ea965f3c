package billing

import (
	"context"
)

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, order *Order) error
}

// PaymentRepository defines the persistence interface for payments
type PaymentRepository interface {
	FindByNumber(ctx context.Context, paymentNumber string) (*Payment, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) ([]Payment, error)
	FindAll(ctx context.Context) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, paymentNumber string) error
	NextPaymentNumber(ctx context.Context) (string, error)
}
