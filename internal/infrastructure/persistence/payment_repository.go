package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/orderdesk/backend/internal/domain/billing"
	"gorm.io/gorm"
)

// PaymentSequence is a single-row counter backing payment number
// allocation. Incremented in place so concurrent transactions
// serialize on the row and numbers never repeat.
type PaymentSequence struct {
	ID      int   `gorm:"primaryKey"`
	Counter int64 `gorm:"not null;default:0"`
}

// TableName overrides the table name
func (PaymentSequence) TableName() string {
	return "payment_sequences"
}

// GormPaymentRepository implements billing.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByNumber finds a payment by its payment number, returns nil if not found
func (r *GormPaymentRepository) FindByNumber(ctx context.Context, paymentNumber string) (*billing.Payment, error) {
	var payment billing.Payment
	err := r.db.WithContext(ctx).First(&payment, "payment_number = ?", paymentNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// FindByOrderNumber returns all payments recorded against an order
func (r *GormPaymentRepository) FindByOrderNumber(ctx context.Context, orderNumber string) ([]billing.Payment, error) {
	var payments []billing.Payment
	err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("paid_at ASC, payment_number ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAll returns all payments, oldest first
func (r *GormPaymentRepository) FindAll(ctx context.Context) ([]billing.Payment, error) {
	var payments []billing.Payment
	err := r.db.WithContext(ctx).
		Order("paid_at ASC, payment_number ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete removes a payment by its payment number
func (r *GormPaymentRepository) Delete(ctx context.Context, paymentNumber string) error {
	return r.db.WithContext(ctx).
		Where("payment_number = ?", paymentNumber).
		Delete(&billing.Payment{}).Error
}

// NextPaymentNumber allocates the next number from the sequence row.
// The in-place increment serializes concurrent allocators on the row
// when called inside a transaction.
func (r *GormPaymentRepository) NextPaymentNumber(ctx context.Context) (string, error) {
	db := r.db.WithContext(ctx)

	res := db.Model(&PaymentSequence{}).
		Where("id = ?", 1).
		UpdateColumn("counter", gorm.Expr("counter + 1"))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		if err := db.Create(&PaymentSequence{ID: 1, Counter: 1}).Error; err != nil {
			return "", err
		}
	}

	var seq PaymentSequence
	if err := db.First(&seq, "id = ?", 1).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("PM%06d", seq.Counter), nil
}
