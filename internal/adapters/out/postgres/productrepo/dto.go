// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID       `gorm:"type:uuid;index"`
	Name        string          `gorm:"type:text;not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(64);index"`
	ImageURL    string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Stock       int             `gorm:"not null;check:stock >= 0"`
}

// TableName specifies the database table name for product rows.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		VendorID:    aggregate.VendorID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Category:    aggregate.Category(),
		ImageURL:    aggregate.ImageURL(),
		Price:       aggregate.Price(),
		Stock:       aggregate.Stock(),
	}
}

// toDomain reconstructs a product aggregate from its database row.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		vendorID,
		dto.Name,
		dto.Description,
		dto.Category,
		dto.ImageURL,
		dto.Price,
		dto.Stock,
	)
}
