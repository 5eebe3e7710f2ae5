package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// picked up for processing. The sweep runs in one transaction so a partial
// sweep is never committed.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending order created before the command's cutoff and
// returns the number of orders cancelled.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	staleOrders, err := orderRepo.GetAllPendingOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		if err = staleOrder.ChangeStatus(order.Cancelled); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
