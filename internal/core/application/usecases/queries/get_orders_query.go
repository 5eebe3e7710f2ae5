package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the orders visible to the acting identity.
//
// Visibility depends on the actor's role:
//   - admins see every order
//   - customers see only their own orders
//   - delivery personnel see orders assigned to them plus unassigned
//     orders in processing status (the claimable pool)
//   - vendors see orders containing at least one of their products
//
// An optional status filter narrows the result further.
type GetOrdersQuery struct {
	actor  user.Identity
	status *order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders for the given actor.
// A nil status means no status filtering. A non-positive limit falls back
// to the default page size.
func NewGetOrdersQuery(actor user.Identity, status *order.Status, limit, offset int) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if offset < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetOrdersQuery{
		actor:  actor,
		status: status,
		limit:  clampLimit(limit),
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the identity the listing is scoped to.
func (q GetOrdersQuery) Actor() user.Identity {
	return q.actor
}

// Status returns the optional status filter. Nil means all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetOrdersQuery) Offset() int {
	return q.offset
}

// GetOrdersQueryResponse is the order read model returned by the listing.
type GetOrdersQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	DeliveryPersonID *kernel.UUID
	DeliveryAddress  string
	TotalAmount      decimal.Decimal
	Status           string
	CreatedAt        time.Time
	Items            []OrderItemResponse
}

// OrderItemResponse is one order line in the read model. The product name
// is joined in for display; the price is the snapshot taken at order time.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}
