package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Add and AddItems are split on purpose: the order creation workflow persists
// the order row first, then its item rows, and compensates with Delete if the
// item write fails. An order must never be observable with a partial or
// missing item set.
type OrderRepository interface {
	// Add persists the order row only. Item rows are written by AddItems.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddItems persists all item rows of the order as one set.
	AddItems(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order row. Used as the compensating action when
	// AddItems fails after Add succeeded.
	Delete(ctx context.Context, id kernel.UUID) error

	// Update persists the mutable fields of an existing order: status and
	// delivery person. Both are written in one statement so a claim is
	// never partially visible.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingOlderThan retrieves pending orders created before the
	// cutoff. Used by the timeout sweep.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
