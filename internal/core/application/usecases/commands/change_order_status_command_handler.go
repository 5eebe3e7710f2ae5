package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler runs the status-transition engine: it
// fetches the order, asks the transition policy what the actor may do, and
// applies the permitted mutation.
//
// The whole operation runs inside one transaction, so the claim path writes
// status and delivery person together and no partial update is observable.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the transition command and returns the updated order.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	action, err := h.policy.Decide(cmd.Actor(), o, cmd.Next())
	if err != nil {
		return nil, err
	}

	switch action {
	case services.ActionAdminOverride:
		err = o.ForceStatus(cmd.Next())
	case services.ActionClaimAndShip:
		err = o.Claim(cmd.Actor().ID())
	case services.ActionChangeStatus:
		err = o.ChangeStatus(cmd.Next())
	default:
		err = errs.NewForbiddenError("transition is not permitted")
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
