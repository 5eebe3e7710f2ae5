package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created with an
	// empty item set.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrOrderAlreadyClaimed is returned when a claim is attempted on an
	// order that already has a delivery person assigned.
	ErrOrderAlreadyClaimed = errors.New("order is already assigned to a delivery person")
)

// Order represents a customer's purchase. It is the aggregate root over its
// item lines and the subject of the status-transition engine.
//
// Order maintains these invariants:
//   - The item set is non-empty and immutable after creation
//   - TotalAmount equals the sum of item subtotals, fixed at creation time
//   - DeliveryPerson is only set by Claim, as part of the processing->shipped move
//   - Status and DeliveryPerson are the only fields mutable after creation
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	deliveryPersonID *kernel.UUID
	deliveryAddress  string
	totalAmount      decimal.Decimal
	status           Status
	items            []Item
	createdAt        time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The total amount is
// computed from the item price snapshots and fixed for the order's lifetime.
func NewOrder(id kernel.UUID, customerID kernel.UUID, deliveryAddress string, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.totalAmount = sumItems(order.items)
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// stored total, assignment, and creation time. The stored total is trusted;
// it was fixed at creation and catalog prices may have changed since.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryAddress string,
	totalAmount decimal.Decimal,
	status Status,
	deliveryPersonID *kernel.UUID,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *deliveryPersonID
		order.deliveryPersonID = &idCopy
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TotalAmount returns the total fixed at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPerson returns the assigned delivery person's ID.
// Returns nil if the order has not been claimed.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// Items returns the order's item lines. The returned slice is a copy;
// the item set is immutable after creation.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order along the status graph.
// The transition must follow an allowed edge (see Status.CanTransitionTo);
// anything else fails with a ValueIsInvalidError.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot transition from %s to %s", o.status, next))
	}

	o.status = next
	return nil
}

// ForceStatus sets any valid status regardless of the status graph.
// This is the administrative override path; the graph-checked path is
// ChangeStatus.
func (o *Order) ForceStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	o.status = next
	return nil
}

// Claim assigns the order to a delivery person and ships it in one step.
//
// Claiming is only possible on a Processing order that has no delivery
// person yet. The status write (Processing -> Shipped) and the assignment
// happen together; callers persist both in a single update so no partial
// state is observable.
func (o *Order) Claim(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	if o.deliveryPersonID != nil {
		return ErrOrderAlreadyClaimed
	}

	if o.status != Processing {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot be claimed, only processing orders can", o.status))
	}

	o.status = Shipped
	o.deliveryPersonID = &deliveryPersonID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func sumItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
