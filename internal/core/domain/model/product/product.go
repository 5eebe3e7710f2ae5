package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// InsufficientStockError indicates that a requested quantity exceeds the
// product's current stock. It carries the product identification so callers
// can report which line of a cart failed.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Product represents a catalog item offered by a vendor.
//
// Product maintains these invariants:
//   - Price is never negative
//   - Stock is never negative
//   - Name and category are always present
//   - Stock is only decremented through DecrementStock
type Product struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	category    string
	imageURL    string
	price       decimal.Decimal
	stock       int

	isConstructed bool
}

// NewProduct creates a validated Product listed by the given vendor.
func NewProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	category string,
	imageURL string,
	price decimal.Decimal,
	stock int,
) (*Product, error) {
	product := &Product{
		description:   description,
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setVendorID(vendorID),
		product.setName(name),
		product.setCategory(category),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence. The same invariants
// as NewProduct apply; corrupt rows fail instead of producing invalid aggregates.
func RestoreProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	category string,
	imageURL string,
	price decimal.Decimal,
	stock int,
) (*Product, error) {
	return NewProduct(id, vendorID, name, description, category, imageURL, price, stock)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// VendorID returns the identifier of the vendor offering the product.
func (p *Product) VendorID() kernel.UUID {
	return p.vendorID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description. May be empty.
func (p *Product) Description() string {
	return p.description
}

// Category returns the product category.
func (p *Product) Category() string {
	return p.category
}

// ImageURL returns the product image URL. May be empty.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// Price returns the current catalog price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the number of units currently available.
func (p *Product) Stock() int {
	return p.stock
}

// CheckStock reports whether the requested quantity can be satisfied.
// Returns an InsufficientStockError identifying the product when it cannot.
func (p *Product) CheckStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if quantity > p.stock {
		return InsufficientStockError{
			ProductID: p.id,
			Requested: quantity,
			Available: p.stock,
		}
	}

	return nil
}

// DecrementStock reduces stock by the given quantity.
// The stock never goes negative; over-decrement fails with InsufficientStockError.
func (p *Product) DecrementStock(quantity int) error {
	if err := p.CheckStock(quantity); err != nil {
		return err
	}

	p.stock -= quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	p.vendorID = vendorID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
