package queries

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves role-scoped order listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// The visibility rules live entirely in the WHERE clause built per role, so
// a response never contains a row the actor is not allowed to see.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the orders visible to the actor,
// newest first, with their items attached.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conds := make([]string, 0, 2)
	args := make([]any, 0, 4)

	actor := query.Actor()
	switch actor.Role() {
	case user.RoleAdmin:
		// Admins see everything.
	case user.RoleCustomer:
		conds = append(conds, "customer_id = ?")
		args = append(args, actor.ID().String())
	case user.RoleDelivery:
		conds = append(conds, "(delivery_person_id = ? OR (status = ? AND delivery_person_id IS NULL))")
		args = append(args, actor.ID().String(), order.Processing.String())
	case user.RoleVendor:
		conds = append(conds, `id IN (
			SELECT oi.order_id
			FROM order_items oi
			JOIN products p ON p.id = oi.product_id
			WHERE p.vendor_id = ?
		)`)
		args = append(args, actor.ID().String())
	default:
		return nil, errs.NewForbiddenError("unknown role " + actor.Role().String())
	}

	if query.Status() != nil {
		conds = append(conds, "status = ?")
		args = append(args, query.Status().String())
	}

	sql := `
		SELECT
			id,
			customer_id,
			delivery_person_id,
			delivery_address,
			total_amount,
			status,
			created_at
		FROM orders`
	if len(conds) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	sql += "\n\t\tORDER BY created_at DESC\n\t\tLIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id, customerID uuid.UUID
		var deliveryPersonID uuid.NullUUID
		var totalAmount decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&deliveryPersonID,
			&orderResp.DeliveryAddress,
			&totalAmount,
			&orderResp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = ownerID

		if deliveryPersonID.Valid {
			courierID, idErr := kernel.UUIDFromBytes(deliveryPersonID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			orderResp.DeliveryPersonID = &courierID
		}

		orderResp.TotalAmount = totalAmount
		orderResp.CreatedAt = createdAt
		orderResp.Items = make([]OrderItemResponse, 0)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	return h.attachItems(ctx, orders)
}

// attachItems loads the item rows for the given orders in one query and
// distributes them to their parent read models.
func (h GetOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
) ([]GetOrdersQueryResponse, error) {
	ids := make([]string, 0, len(orders))
	index := make(map[kernel.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.String())
		index[o.ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.product_id,
			p.name,
			oi.quantity,
			oi.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN ?
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var orderID, productID uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&orderID,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&price,
		)
		if err != nil {
			return nil, err
		}

		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = lineProductID
		item.Price = price

		i, ok := index[parentID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
