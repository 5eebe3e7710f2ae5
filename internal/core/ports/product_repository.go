package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs fetches the products for exactly the requested id set in one
	// read. Missing ids are simply absent from the result; the caller
	// decides whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// DecrementStock atomically reduces stock by quantity, guarded so the
	// stock never goes negative (stock = stock - quantity WHERE stock >=
	// quantity). A guard miss is reported as an error; the caller decides
	// whether it is fatal.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
