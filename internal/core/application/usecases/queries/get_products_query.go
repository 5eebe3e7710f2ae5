package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves the product catalog, optionally narrowed to a
// single category. The catalog is public; no actor is required.
type GetProductsQuery struct {
	category string
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list catalog products.
// An empty category means no category filtering. A non-positive limit falls
// back to the default page size.
func NewGetProductsQuery(category string, limit, offset int) (GetProductsQuery, error) {
	if offset < 0 {
		return GetProductsQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetProductsQuery{
		category: category,
		limit:    clampLimit(limit),
		offset:   offset,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Category returns the optional category filter. Empty means all categories.
func (q GetProductsQuery) Category() string {
	return q.category
}

// Limit returns the page size.
func (q GetProductsQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetProductsQuery) Offset() int {
	return q.offset
}

// GetProductsQueryResponse is the product read model returned by the listing.
type GetProductsQueryResponse struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       decimal.Decimal
	Stock       int
}
