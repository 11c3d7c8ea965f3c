package billing

import (
	"time"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents the method a payment was made with
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCheque       PaymentMethod = "CHEQUE"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodBankTransfer, MethodCheque:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment represents a payment recorded against an order.
// The order relation is by order number; there is no database-enforced
// foreign key, matching the flat record collections the engine reads.
type Payment struct {
	shared.BaseEntity
	PaymentNumber string          `gorm:"uniqueIndex;size:50;not null"`
	OrderNumber   string          `gorm:"index;size:50;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method        PaymentMethod   `gorm:"size:20;not null"`
	Remark        string          `gorm:"size:500"`
	PaidAt        time.Time       `gorm:"index;not null"`
}

// NewPayment creates a new payment record
func NewPayment(paymentNumber, orderNumber string, amount decimal.Decimal, method PaymentMethod, remark string, paidAt time.Time) (*Payment, error) {
	if paymentNumber == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_NUMBER", "Payment number cannot be empty")
	}
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Payment method is not valid")
	}

	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		PaymentNumber: paymentNumber,
		OrderNumber:   orderNumber,
		Amount:        amount,
		Method:        method,
		Remark:        remark,
		PaidAt:        paidAt,
	}, nil
}
