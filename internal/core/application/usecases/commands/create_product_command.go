package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a vendor's request to list a new product
// in the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	vendorID    kernel.UUID
	name        string
	description string
	category    string
	imageURL    string
	price       decimal.Decimal
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to list a new product.
// Validates that the vendor id, name and category are present, the price is
// not negative and the stock is not negative. Description and image URL are
// optional.
func NewCreateProductCommand(
	vendorID kernel.UUID,
	name string,
	description string,
	category string,
	imageURL string,
	price decimal.Decimal,
	stock int,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setVendorID(vendorID),
		productCommand.setName(name),
		productCommand.setCategory(category),
		productCommand.setPrice(price),
		productCommand.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor listing the product.
func (c CreateProductCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description. May be empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Category returns the product category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// ImageURL returns the product image URL. May be empty.
func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

// Price returns the listed price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	c.stock = stock
	return nil
}
