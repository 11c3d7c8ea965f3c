package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID finds a product by ID, returns nil if not found
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByNumber finds a product by its product number, returns nil if not found
	FindByNumber(ctx context.Context, productNumber string) (*Product, error)

	// FindAll returns all products
	FindAll(ctx context.Context) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}
