package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// FulfillmentStatus represents the fulfillment state of an order
type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "PENDING"
	FulfillmentCompleted FulfillmentStatus = "COMPLETED"
	FulfillmentCancelled FulfillmentStatus = "CANCELLED"
)

// IsValid checks if the status is a valid FulfillmentStatus
func (s FulfillmentStatus) IsValid() bool {
	switch s {
	case FulfillmentPending, FulfillmentCompleted, FulfillmentCancelled:
		return true
	}
	return false
}

// String returns the string representation of FulfillmentStatus
func (s FulfillmentStatus) String() string {
	return string(s)
}

// PaymentStatus represents the payment state of an order.
// The stored machine is New -> Pending -> Paid; the Overdue overlay is
// derived at read time and never stored (see classifier.go).
type PaymentStatus string

const (
	PaymentStatusNew     PaymentStatus = "NEW"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusNew, PaymentStatusPending, PaymentStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the payment status can transition to the target
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentStatusNew:
		return target == PaymentStatusPending || target == PaymentStatusPaid
	case PaymentStatusPending:
		return target == PaymentStatusPaid
	case PaymentStatusPaid:
		// Paid reopens only through payment mutation reconciliation
		return target == PaymentStatusPending
	}
	return false
}

// OrderLine represents a line item in an order.
// UnitPrice and UnitCost are the values captured at order intake; the
// calculator consults them only under the snapshot price policy.
type OrderLine struct {
	shared.BaseEntity
	OrderID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductNumber string          `gorm:"size:50;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}

// Order represents a customer order.
// Totals are never stored on the order; they are always derived by the
// calculator so that a price-policy change cannot leave stale amounts
// behind.
type Order struct {
	shared.BaseEntity
	OrderNumber       string            `gorm:"uniqueIndex;size:50;not null"`
	CompanyName       string            `gorm:"size:255;not null"`
	OrderedAt         time.Time         `gorm:"index;not null"`
	FulfillmentStatus FulfillmentStatus `gorm:"size:20;not null;default:'PENDING'"`
	PaymentStatus     PaymentStatus     `gorm:"size:20;not null;default:'NEW'"`
	OverdueDate       *time.Time
	Lines             []OrderLine `gorm:"foreignKey:OrderID"`
}

// NewOrder creates a new order in the initial payment state
func NewOrder(orderNumber, companyName string, orderedAt time.Time) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if companyName == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}

	return &Order{
		BaseEntity:        shared.NewBaseEntity(),
		OrderNumber:       orderNumber,
		CompanyName:       companyName,
		OrderedAt:         orderedAt,
		FulfillmentStatus: FulfillmentPending,
		PaymentStatus:     PaymentStatusNew,
		Lines:             make([]OrderLine, 0),
	}, nil
}

// AddLine appends a line item with its captured unit price and cost
func (o *Order) AddLine(productNumber string, quantity, unitPrice, unitCost decimal.Decimal) error {
	if productNumber == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NUMBER", "Product number cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() || unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price and cost cannot be negative")
	}

	line := OrderLine{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       o.ID,
		ProductNumber: productNumber,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		UnitCost:      unitCost,
	}
	o.Lines = append(o.Lines, line)
	o.UpdatedAt = time.Now()

	return nil
}

// TransitionPaymentStatus moves the order's payment status to target
func (o *Order) TransitionPaymentStatus(target PaymentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Target payment status is not valid")
	}
	if o.PaymentStatus == target {
		return nil
	}
	if !o.PaymentStatus.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition payment status from %s to %s", o.PaymentStatus, target))
	}

	o.PaymentStatus = target
	o.UpdatedAt = time.Now()

	return nil
}

// SetOverdueDate sets or clears the overdue date
func (o *Order) SetOverdueDate(overdueDate *time.Time) {
	o.OverdueDate = overdueDate
	o.UpdatedAt = time.Now()
}

// IsCancelled returns true if fulfillment was cancelled
func (o *Order) IsCancelled() bool {
	return o.FulfillmentStatus == FulfillmentCancelled
}
