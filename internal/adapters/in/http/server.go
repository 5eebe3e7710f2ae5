package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server handles the HTTP surface of the marketplace.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	assignRoleHandler        commands.AssignRoleCommandHandler

	// Query handlers
	getOrdersHandler   queries.GetOrdersQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
	getUsersHandler    queries.GetUsersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	assignRoleHandler commands.AssignRoleCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createProductHandler:     createProductHandler,
		assignRoleHandler:        assignRoleHandler,
		getOrdersHandler:         getOrdersHandler,
		getProductsHandler:       getProductsHandler,
		getUsersHandler:          getUsersHandler,
	}
}

// RegisterRoutes attaches all routes to the echo instance. The catalog
// listing and the health check are public; everything else sits behind the
// authentication middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, authenticate echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/products", s.GetProducts)

	authed := api.Group("", authenticate)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	authed.POST("/products", s.CreateProduct)
	authed.GET("/users", s.GetUsers)
	authed.PATCH("/users/:id/role", s.AssignRole)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// authenticated customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity := identityFromContext(ctx)
	if err := services.Authorize(identity, user.RoleCustomer); err != nil {
		return writeError(ctx, err)
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]services.CartLine, 0, len(request.Items))
	for _, item := range request.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid product id: "+item.ProductID)
		}
		lines = append(lines, services.CartLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(identity.ID(), lines, request.DeliveryAddress)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(createdOrder))
}

// GetOrders handles GET /api/v1/orders - lists the orders visible to the
// authenticated actor. Admins see everything, customers their own orders,
// delivery personnel their assignments plus the claimable pool, vendors the
// orders containing their products.
func (s *Server) GetOrders(ctx echo.Context) error {
	identity := identityFromContext(ctx)
	if err := services.Authorize(identity); err != nil {
		return writeError(ctx, err)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+raw)
		}
		statusFilter = &status
	}

	limit, offset, err := pagingParams(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid paging parameters")
	}

	query, err := queries.NewGetOrdersQuery(*identity, statusFilter, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, readModel := range orders {
		response[i] = orderFromReadModel(readModel)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// to a new status on behalf of the authenticated actor. The transition
// policy decides per role and assignment; an unassigned processing order
// moved to shipped by a delivery actor is claimed in the same write.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	identity := identityFromContext(ctx)
	if err := services.Authorize(identity, user.RoleDelivery, user.RoleAdmin); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+ctx.Param("id"))
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+request.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next, *identity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	updatedOrder, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updatedOrder))
}

// GetProducts handles GET /api/v1/products - public catalog listing with an
// optional category filter.
func (s *Server) GetProducts(ctx echo.Context) error {
	limit, offset, err := pagingParams(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid paging parameters")
	}

	query, err := queries.NewGetProductsQuery(ctx.QueryParam("category"), limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, readModel := range products {
		response[i] = productFromReadModel(readModel)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - lists a new product owned by
// the authenticated vendor.
func (s *Server) CreateProduct(ctx echo.Context) error {
	identity := identityFromContext(ctx)
	if err := services.Authorize(identity, user.RoleVendor, user.RoleAdmin); err != nil {
		return writeError(ctx, err)
	}

	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	price, err := decimal.NewFromString(request.Price)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid price: "+request.Price)
	}

	cmd, err := commands.NewCreateProductCommand(
		identity.ID(),
		request.Name,
		request.Description,
		request.Category,
		request.ImageURL,
		price,
		request.Stock,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid product data: "+err.Error())
	}

	createdProduct, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(createdProduct))
}

// GetUsers handles GET /api/v1/users - admin-only profile listing with an
// optional role filter.
func (s *Server) GetUsers(ctx echo.Context) error {
	identity := identityFromContext(ctx)
	if err := services.Authorize(identity, user.RoleAdmin); err != nil {
		return writeError(ctx, err)
	}

	var roleFilter *user.Role
	if raw := ctx.QueryParam("role"); raw != "" {
		role, err := user.RoleFromString(raw)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid role: "+raw)
		}
		roleFilter = &role
	}

	limit, offset, err := pagingParams(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid paging parameters")
	}

	query, err := queries.NewGetUsersQuery(roleFilter, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	users, err := s.getUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserResponse, len(users))
	for i, readModel := range users {
		response[i] = userFromReadModel(readModel)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignRole handles PATCH /api/v1/users/:id/role - admin assigns a role to
// a user.
func (s *Server) AssignRole(ctx echo.Context) error {
	identity := identityFromContext(ctx)
	if err := services.Authorize(identity, user.RoleAdmin); err != nil {
		return writeError(ctx, err)
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user id: "+ctx.Param("id"))
	}

	var request AssignRoleRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	role, err := user.RoleFromString(request.Role)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid role: "+request.Role)
	}

	cmd, err := commands.NewAssignRoleCommand(userID, role)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid role data: "+err.Error())
	}

	if err := s.assignRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pagingParams(ctx echo.Context) (limit, offset int, err error) {
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}

	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}

	return limit, offset, nil
}
