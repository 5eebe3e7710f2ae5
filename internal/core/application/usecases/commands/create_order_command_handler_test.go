package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) AddItems(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllPendingOlderThan(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockProductRepository) Get(_ context.Context, _ kernel.UUID) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCheckoutUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func catalogProduct(t *testing.T, id kernel.UUID, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, kernel.NewUUID(), "Widget", "", "gadgets", "",
		decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	return p
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	p1ID, p2ID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(customerID, []services.CartLine{
		{ProductID: p1ID, Quantity: 2},
		{ProductID: p2ID, Quantity: 1},
	}, "12 Main St")
	require.NoError(t, err)

	products := []*product.Product{
		catalogProduct(t, p1ID, "5.00", 10),
		catalogProduct(t, p2ID, "3.00", 4),
	}

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", mock.Anything, mock.Anything).Return(products, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderRepo.On("AddItems", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		productRepo.On("DecrementStock", mock.Anything, p1ID, 2).Return(nil).Once(),
		productRepo.On("DecrementStock", mock.Anything, p2ID, 1).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, discardLogger())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Pending, created.Status())
	assert.True(t, decimal.RequireFromString("13.00").Equal(created.TotalAmount()))
	assert.Len(t, created.Items(), 2)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	pID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []services.CartLine{
		{ProductID: pID, Quantity: 3},
	}, "12 Main St")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", mock.Anything, mock.Anything).
			Return([]*product.Product{catalogProduct(t, pID, "5.00", 0)}, nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var stockErr product.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, pID, stockErr.ProductID)

	// The order row is never written when the stock check fails.
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	productRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddItemsFailureCompensates(t *testing.T) {
	ctx := t.Context()
	pID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []services.CartLine{
		{ProductID: pID, Quantity: 1},
	}, "12 Main St")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", mock.Anything, mock.Anything).
			Return([]*product.Product{catalogProduct(t, pID, "5.00", 10)}, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderRepo.On("AddItems", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("items insert failed")).Once(),
		orderRepo.On("Delete", mock.Anything, mock.AnythingOfType("kernel.UUID")).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	// No stock is touched once the order could not be fully persisted.
	productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DecrementFailureDoesNotFailOrder(t *testing.T) {
	ctx := t.Context()
	pID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []services.CartLine{
		{ProductID: pID, Quantity: 2},
	}, "12 Main St")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", mock.Anything, mock.Anything).
			Return([]*product.Product{catalogProduct(t, pID, "5.00", 10)}, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderRepo.On("AddItems", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		productRepo.On("DecrementStock", mock.Anything, pID, 2).
			Return(errors.New("decrement failed")).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, discardLogger())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}
