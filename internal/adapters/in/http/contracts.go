package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
)

// Error is the wire shape of every failure response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Items           []CartLineRequest `json:"items"`
	DeliveryAddress string            `json:"delivery_address"`
}

// CartLineRequest is one requested cart line.
type CartLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
}

// AssignRoleRequest is the body of PATCH /api/v1/users/:id/role.
type AssignRoleRequest struct {
	Role string `json:"role"`
}

// OrderResponse is the wire shape of an order. Money travels as decimal
// strings, never floats.
type OrderResponse struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customer_id"`
	DeliveryPersonID *string             `json:"delivery_person_id,omitempty"`
	DeliveryAddress  string              `json:"delivery_address"`
	TotalAmount      string              `json:"total_amount"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	Items            []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one order line. The price is the snapshot taken at
// order time. The product name is only present on listing responses, where
// it is joined in for display.
type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

// ProductResponse is the wire shape of a catalog product.
type ProductResponse struct {
	ID          string `json:"id"`
	VendorID    string `json:"vendor_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
}

// UserResponse is the wire shape of a profile in the admin user listing.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func orderFromDomain(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			Price:     item.Price().String(),
		}
	}

	response := OrderResponse{
		ID:              aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		TotalAmount:     aggregate.TotalAmount().String(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
	}

	if deliveryPerson := aggregate.DeliveryPerson(); deliveryPerson != nil {
		id := deliveryPerson.String()
		response.DeliveryPersonID = &id
	}

	return response
}

func orderFromReadModel(readModel queries.GetOrdersQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(readModel.Items))
	for i, item := range readModel.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.String(),
		}
	}

	response := OrderResponse{
		ID:              readModel.ID.String(),
		CustomerID:      readModel.CustomerID.String(),
		DeliveryAddress: readModel.DeliveryAddress,
		TotalAmount:     readModel.TotalAmount.String(),
		Status:          readModel.Status,
		CreatedAt:       readModel.CreatedAt,
		Items:           items,
	}

	if readModel.DeliveryPersonID != nil {
		id := readModel.DeliveryPersonID.String()
		response.DeliveryPersonID = &id
	}

	return response
}

func productFromDomain(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:          aggregate.ID().String(),
		VendorID:    aggregate.VendorID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Category:    aggregate.Category(),
		ImageURL:    aggregate.ImageURL(),
		Price:       aggregate.Price().String(),
		Stock:       aggregate.Stock(),
	}
}

func productFromReadModel(readModel queries.GetProductsQueryResponse) ProductResponse {
	return ProductResponse{
		ID:          readModel.ID.String(),
		VendorID:    readModel.VendorID.String(),
		Name:        readModel.Name,
		Description: readModel.Description,
		Category:    readModel.Category,
		ImageURL:    readModel.ImageURL,
		Price:       readModel.Price.String(),
		Stock:       readModel.Stock,
	}
}

func userFromReadModel(readModel queries.GetUsersQueryResponse) UserResponse {
	return UserResponse{
		ID:        readModel.ID.String(),
		Email:     readModel.Email,
		FullName:  readModel.FullName,
		Role:      readModel.Role,
		CreatedAt: readModel.CreatedAt,
	}
}
