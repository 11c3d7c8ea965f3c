package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Attributes holds free-form product attributes (size, theme, material, ...)
// Stored as JSONB
type Attributes map[string]string

// Value implements driver.Valuer for JSONB storage
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB retrieval
func (a *Attributes) Scan(value interface{}) error {
	if value == nil {
		*a = Attributes{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan Attributes: unsupported type")
	}

	if len(bytes) == 0 {
		*a = Attributes{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Product represents a catalog product.
// The reconciliation engine reads products for pricing only; catalog
// management owns the full lifecycle.
type Product struct {
	shared.BaseEntity
	ProductNumber     string          `gorm:"uniqueIndex;size:50;not null"`
	Name              string          `gorm:"size:255;not null"`
	ManufacturingCost decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	SellingPrice      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	QuantityOnHand    int             `gorm:"not null;default:0"`
	LowStockThreshold int             `gorm:"not null;default:0"`
	Attributes        Attributes      `gorm:"type:jsonb"`
}

// NewProduct creates a new catalog product
func NewProduct(productNumber, name string, manufacturingCost, sellingPrice decimal.Decimal) (*Product, error) {
	if productNumber == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NUMBER", "Product number cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if manufacturingCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Manufacturing cost cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if sellingPrice.LessThanOrEqual(manufacturingCost) {
		return nil, shared.NewDomainError("PRICE_BELOW_COST", "Selling price must exceed manufacturing cost")
	}

	return &Product{
		BaseEntity:        shared.NewBaseEntity(),
		ProductNumber:     productNumber,
		Name:              name,
		ManufacturingCost: manufacturingCost,
		SellingPrice:      sellingPrice,
		Attributes:        Attributes{},
	}, nil
}

// IsLowStock returns true if quantity on hand is at or below the threshold
func (p *Product) IsLowStock() bool {
	return p.QuantityOnHand <= p.LowStockThreshold
}

// Margin returns selling price minus manufacturing cost
func (p *Product) Margin() decimal.Decimal {
	return p.SellingPrice.Sub(p.ManufacturingCost)
}
