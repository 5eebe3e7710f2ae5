package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves catalog listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query and returns catalog products sorted by name.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			vendor_id,
			name,
			description,
			category,
			image_url,
			price,
			stock
		FROM products`
	args := make([]any, 0, 3)
	if query.Category() != "" {
		sql += "\n\t\tWHERE category = ?"
		args = append(args, query.Category())
	}
	sql += "\n\t\tORDER BY name\n\t\tLIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)

	for rows.Next() {
		var productResp GetProductsQueryResponse
		var id, vendorID uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&vendorID,
			&productResp.Name,
			&productResp.Description,
			&productResp.Category,
			&productResp.ImageURL,
			&price,
			&productResp.Stock,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID

		sellerID, idErr := kernel.UUIDFromBytes(vendorID[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.VendorID = sellerID

		productResp.Price = price
		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
