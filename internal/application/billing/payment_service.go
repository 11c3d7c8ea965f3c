package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/orderdesk/backend/internal/domain/billing"
	"github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/orderdesk/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SummaryCache caches computed dashboard summaries keyed by date
// window. Payment mutations invalidate the whole cache; a stale
// summary is worse than a recomputed one.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*billing.Summary, bool, error)
	Set(ctx context.Context, key string, summary billing.Summary) error
	Invalidate(ctx context.Context) error
}

// PaymentIntakeService records and deletes payments against orders.
//
// Every mutation runs under a per-order lock plus a database
// transaction, and revalidates against the balance read inside the
// transaction. A payment that passed the workflow against a stale
// balance is still rejected here.
type PaymentIntakeService struct {
	scope  TransactionScope
	locks  *orderLocks
	cache  SummaryCache
	logger *zap.Logger
	policy billing.PricePolicy
	now    func() time.Time
}

// NewPaymentIntakeService creates a new PaymentIntakeService
func NewPaymentIntakeService(scope TransactionScope, cache SummaryCache, logger *zap.Logger, policy billing.PricePolicy) *PaymentIntakeService {
	if !policy.IsValid() {
		policy = billing.PriceFromSnapshot
	}
	return &PaymentIntakeService{
		scope:  scope,
		locks:  newOrderLocks(),
		cache:  cache,
		logger: logger,
		policy: policy,
		now:    time.Now,
	}
}

// SetClock overrides the time source
func (s *PaymentIntakeService) SetClock(now func() time.Time) {
	s.now = now
}

// RecordPayment walks the intake workflow against the order's current
// balance and persists the resulting payment. The order's payment
// status is re-derived from the post-payment balance in the same
// transaction.
func (s *PaymentIntakeService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	if req.OrderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}

	s.locks.Lock(req.OrderNumber)
	defer s.locks.Unlock(req.OrderNumber)

	var resp *PaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.Orders().FindByNumber(ctx, req.OrderNumber)
		if err != nil {
			return fmt.Errorf("failed to load order: %w", err)
		}
		if order == nil {
			return shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}

		payments, err := repos.Payments().FindByOrderNumber(ctx, order.OrderNumber)
		if err != nil {
			return fmt.Errorf("failed to load payments: %w", err)
		}
		snap, err := s.loadSnapshot(ctx, repos)
		if err != nil {
			return err
		}

		remaining := billing.RemainingBalance(order, snap, payments, s.policy)

		session, err := billing.NewIntakeSession(order.OrderNumber, remaining)
		if err != nil {
			return err
		}
		if err := session.EnterAmount(req.Amount); err != nil {
			return err
		}
		if err := session.SelectMethod(billing.PaymentMethod(req.Method), req.Remark); err != nil {
			return err
		}
		draft, err := session.Draft(s.now())
		if err != nil {
			return err
		}

		paymentNumber, err := repos.Payments().NextPaymentNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate payment number: %w", err)
		}
		amount := draft.Amount.Amount()
		payment, err := billing.NewPayment(paymentNumber, draft.OrderNumber, amount, draft.Method, draft.Remark, draft.PaidAt)
		if err != nil {
			return err
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return fmt.Errorf("failed to save payment: %w", err)
		}

		newRemaining := remaining.Sub(amount)
		paid := billing.PaidAmount(order.OrderNumber, payments).Add(amount)
		if err := s.reconcileStatus(order, billing.DeriveStatus(newRemaining, paid), false); err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			// the payment insert rolls back with the transaction; the
			// caller gets a code instead of a half-recorded payment
			s.logger.Error("order status save failed after payment insert",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
			return shared.NewDomainError("PAYMENT_NOT_RECORDED", "Payment was not recorded")
		}

		resp = &PaymentResponse{
			PaymentNumber: payment.PaymentNumber,
			OrderNumber:   payment.OrderNumber,
			Amount:        payment.Amount,
			Method:        payment.Method.String(),
			Remark:        payment.Remark,
			PaidAt:        payment.PaidAt,
			OrderStatus:   order.PaymentStatus.String(),
			Remaining:     billing.RemainingBalance(order, snap, append(payments, *payment), s.policy),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx)
	s.logger.Info("payment recorded",
		zap.String("payment_number", resp.PaymentNumber),
		zap.String("order_number", resp.OrderNumber),
		zap.String("amount", resp.Amount.String()),
		zap.String("order_status", resp.OrderStatus))

	return resp, nil
}

// DeletePayment removes a recorded payment and re-derives the order's
// payment status from what remains. Deleting a payment can reopen a
// Paid order to Pending, or return it to New when it was the last one.
func (s *PaymentIntakeService) DeletePayment(ctx context.Context, paymentNumber string) error {
	if paymentNumber == "" {
		return shared.NewDomainError("INVALID_PAYMENT_NUMBER", "Payment number cannot be empty")
	}

	// resolve the order number first so the mutation runs under the
	// same lock as intake for that order
	var orderNumber string
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.Payments().FindByNumber(ctx, paymentNumber)
		if err != nil {
			return fmt.Errorf("failed to load payment: %w", err)
		}
		if payment == nil {
			return shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")
		}
		orderNumber = payment.OrderNumber
		return nil
	})
	if err != nil {
		return err
	}

	s.locks.Lock(orderNumber)
	defer s.locks.Unlock(orderNumber)

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.Payments().FindByNumber(ctx, paymentNumber)
		if err != nil {
			return fmt.Errorf("failed to load payment: %w", err)
		}
		if payment == nil {
			// deleted concurrently between the lookup and the lock
			return shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")
		}

		order, err := repos.Orders().FindByNumber(ctx, payment.OrderNumber)
		if err != nil {
			return fmt.Errorf("failed to load order: %w", err)
		}
		if order == nil {
			return shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}

		if err := repos.Payments().Delete(ctx, paymentNumber); err != nil {
			return fmt.Errorf("failed to delete payment: %w", err)
		}

		payments, err := repos.Payments().FindByOrderNumber(ctx, order.OrderNumber)
		if err != nil {
			return fmt.Errorf("failed to load payments: %w", err)
		}
		snap, err := s.loadSnapshot(ctx, repos)
		if err != nil {
			return err
		}

		remaining := billing.RemainingBalance(order, snap, payments, s.policy)
		paid := billing.PaidAmount(order.OrderNumber, payments)
		if err := s.reconcileStatus(order, billing.DeriveStatus(remaining, paid), len(payments) == 0); err != nil {
			return err
		}
		return repos.Orders().Save(ctx, order)
	})
	if err != nil {
		return err
	}

	s.invalidateSummaries(ctx)
	s.logger.Info("payment deleted",
		zap.String("payment_number", paymentNumber),
		zap.String("order_number", orderNumber))

	return nil
}

// reconcileStatus moves the order's stored status to the derived one.
// Deleting the last payment resets the order to its entry state, which
// the transition table does not otherwise allow.
func (s *PaymentIntakeService) reconcileStatus(order *billing.Order, derived billing.PaymentStatus, noPaymentsLeft bool) error {
	if order.PaymentStatus == derived {
		return nil
	}
	if derived == billing.PaymentStatusNew && noPaymentsLeft {
		order.PaymentStatus = billing.PaymentStatusNew
		return nil
	}
	if !order.PaymentStatus.CanTransitionTo(derived) {
		return shared.ErrReconcileRequired
	}
	return order.TransitionPaymentStatus(derived)
}

func (s *PaymentIntakeService) loadSnapshot(ctx context.Context, repos TransactionalRepositories) (*catalog.Snapshot, error) {
	if s.policy == billing.PriceFromSnapshot {
		// line items carry their own prices; no catalog read needed
		return catalog.NewSnapshot(nil), nil
	}
	products, err := repos.Products().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog.NewSnapshot(products), nil
}

func (s *PaymentIntakeService) invalidateSummaries(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}
