package persistence

import (
	"context"
	"errors"

	"github.com/orderdesk/backend/internal/domain/billing"
	"gorm.io/gorm"
)

// GormOrderRepository implements billing.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByNumber finds an order by its order number, returns nil if not found
func (r *GormOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*billing.Order, error) {
	var order billing.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// FindAll returns all orders with their line items, oldest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]billing.Order, error) {
	var orders []billing.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("ordered_at ASC, order_number ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order and its line items
func (r *GormOrderRepository) Save(ctx context.Context, order *billing.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}
