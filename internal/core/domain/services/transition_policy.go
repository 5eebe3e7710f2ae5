package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// TransitionAction is the concrete mutation a permitted actor may apply to
// an order. The policy names the action; the caller applies it to the
// aggregate and persists the result in one write.
type TransitionAction int

const (
	// ActionDenied means the actor may not touch the order.
	ActionDenied TransitionAction = iota

	// ActionChangeStatus is a graph-checked status move on an order the
	// actor is responsible for.
	ActionChangeStatus

	// ActionAdminOverride is an unconditional status set; admins may move
	// any order to any of the five statuses.
	ActionAdminOverride

	// ActionClaimAndShip is the delivery claim: taking ownership of an
	// unassigned processing order by shipping it, which also assigns
	// the delivery person.
	ActionClaimAndShip
)

// TransitionPolicy decides, per actor role and current assignment, whether
// and how an order may be moved to a new status.
//
// The rules:
//   - admin may set any status on any order, unconditionally
//   - delivery may move an order assigned to them along the status graph
//   - delivery may claim an unassigned processing order by moving it to
//     shipped, which assigns them as the delivery person
//   - customer and vendor have no transition rights
type TransitionPolicy struct{}

// NewTransitionPolicy creates a TransitionPolicy domain service.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Decide returns the action the actor is permitted to take, or a
// ForbiddenError. It inspects only the actor, the order's current state, and
// the requested status; it mutates nothing.
func (TransitionPolicy) Decide(actor user.Identity, o *order.Order, next order.Status) (TransitionAction, error) {
	if err := actor.Validate(); err != nil {
		return ActionDenied, err
	}
	if err := next.Validate(); err != nil {
		return ActionDenied, err
	}

	switch actor.Role() {
	case user.RoleAdmin:
		return ActionAdminOverride, nil

	case user.RoleDelivery:
		if assignee := o.DeliveryPerson(); assignee != nil {
			if assignee.IsEqual(actor.ID()) {
				return ActionChangeStatus, nil
			}
			return ActionDenied, errs.NewForbiddenError("you can only update orders assigned to you")
		}

		// The claim rule: an unassigned processing order may be shipped by
		// any delivery person, which assigns it to them.
		if o.Status() == order.Processing && next == order.Shipped {
			return ActionClaimAndShip, nil
		}

		return ActionDenied, errs.NewForbiddenError("you can only update orders assigned to you")

	default:
		return ActionDenied, errs.NewForbiddenError(
			fmt.Sprintf("role %s cannot change order status", actor.Role()))
	}
}
