package billing

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/billing"
	"github.com/orderdesk/backend/internal/domain/catalog"
)

// TransactionScope provides transactional access to the billing
// repositories. When a function is executed within a scope, all
// repository operations are part of the same database transaction and
// commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within
// a transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	Orders() billing.OrderRepository
	Payments() billing.PaymentRepository
	Products() catalog.ProductRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Useful in tests and with repository fakes.
type NoOpTransactionScope struct {
	orderRepo   billing.OrderRepository
	paymentRepo billing.PaymentRepository
	productRepo catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	orderRepo billing.OrderRepository,
	paymentRepo billing.PaymentRepository,
	productRepo catalog.ProductRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		productRepo: productRepo,
	}
}

// Execute runs the function without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() billing.OrderRepository {
	return s.orderRepo
}

// Payments returns the payment repository
func (s *NoOpTransactionScope) Payments() billing.PaymentRepository {
	return s.paymentRepo
}

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.productRepo
}
