package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// CartLine is one requested line of a cart before pricing: which product and
// how many units.
type CartLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CartPricer validates a requested cart against the current catalog and
// produces priced order items.
//
// For each line it fails with an ObjectNotFoundError if the product is not
// among the fetched set, or with an InsufficientStockError if the quantity
// exceeds current stock. On success every item carries the catalog price
// snapshotted at this moment; the caller becomes responsible for committing
// the matching stock decrements. The pricer itself mutates nothing.
type CartPricer struct{}

// NewCartPricer creates a CartPricer domain service.
func NewCartPricer() CartPricer {
	return CartPricer{}
}

// Price checks every requested line against the given products and returns
// the priced order items. The products slice is expected to be the catalog
// rows fetched for exactly the requested product ids; missing ids fail the
// whole cart.
func (CartPricer) Price(products []*product.Product, lines []CartLine) ([]order.Item, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	catalog := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		catalog[p.ID()] = p
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, ok := catalog[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID.String())
		}

		if err := p.CheckStock(line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewItem(p.ID(), line.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
