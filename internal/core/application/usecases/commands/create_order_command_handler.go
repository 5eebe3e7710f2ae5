package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the order creation workflow: it checks
// the cart against live inventory, snapshots prices, persists the order and
// its items, and adjusts stock.
//
// The workflow is deliberately not a single transaction. It is the sequence
//
//	check+price -> insert order -> insert items -> decrement stock
//
// with one compensating action: if the item insert fails after the order row
// was written, the order row is deleted so an order is never visible without
// its items. Stock decrements after that point are best effort; a failed
// decrement is logged and the already committed order stands.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricer     services.CartPricer
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewCartPricer(),
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order creation command and returns the created order
// with its items attached.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	ids := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		ids = append(ids, line.ProductID)
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items, err := h.pricer.Price(products, cmd.Lines())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.DeliveryAddress(), items)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = orderRepo.AddItems(ctx, newOrder); err != nil {
		// Compensate: an order must never exist without its items.
		if delErr := orderRepo.Delete(ctx, newOrder.ID()); delErr != nil {
			h.logger.ErrorContext(ctx, "compensating order delete failed",
				"order_id", newOrder.ID().String(), "error", delErr)
		}
		return nil, err
	}

	// The order is authoritative from here on; stock bookkeeping is
	// secondary and may lag behind committed orders under failure.
	for _, item := range items {
		if decErr := productRepo.DecrementStock(ctx, item.ProductID(), item.Quantity()); decErr != nil {
			h.logger.ErrorContext(ctx, "stock decrement failed",
				"order_id", newOrder.ID().String(),
				"product_id", item.ProductID().String(),
				"quantity", item.Quantity(),
				"error", decErr)
		}
	}

	return newOrder, nil
}
