package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles listing a new product in the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command and returns the created product.
// A single row is written, so no transaction is opened.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newProduct, err := product.NewProduct(
		kernel.NewUUID(),
		cmd.VendorID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Category(),
		cmd.ImageURL(),
		cmd.Price(),
		cmd.Stock(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	return newProduct, nil
}
