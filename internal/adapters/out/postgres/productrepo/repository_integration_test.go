package productrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite verifies product persistence behavior
// against a real PostgreSQL container, in particular the guarded stock
// decrement that must never drive stock negative.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testProduct := suite.newProduct("Coffee Beans", "12.50", 40)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrieved.ID())
	suite.Equal("Coffee Beans", retrieved.Name())
	suite.Equal("groceries", retrieved.Category())
	suite.True(decimal.RequireFromString("12.50").Equal(retrieved.Price()))
	suite.Equal(40, retrieved.Stock())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_MissingIDsAreAbsent() {
	ctx := context.Background()

	first := suite.newProduct("Coffee Beans", "12.50", 40)
	second := suite.newProduct("Green Tea", "8.00", 15)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	products, err := suite.repository.GetByIDs(ctx,
		[]kernel.UUID{first.ID(), second.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Len(products, 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_EmptyInput_ReturnsEmptySlice() {
	products, err := suite.repository.GetByIDs(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Empty(products)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_ReducesStock() {
	ctx := context.Background()

	testProduct := suite.newProduct("Coffee Beans", "12.50", 10)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	suite.Require().NoError(suite.repository.DecrementStock(ctx, testProduct.ID(), 4))

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_GuardRejectsOverDecrement() {
	ctx := context.Background()

	testProduct := suite.newProduct("Coffee Beans", "12.50", 3)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	err := suite.repository.DecrementStock(ctx, testProduct.ID(), 5)
	suite.Require().Error(err)

	var notFoundErr errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Stock is untouched after the rejected decrement.
	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(3, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDecrementStock_NonPositiveQuantity_ReturnsError() {
	err := suite.repository.DecrementStock(context.Background(), kernel.NewUUID(), 0)
	suite.Require().Error(err)

	var invalidErr errs.ValueIsInvalidError
	suite.Require().ErrorAs(err, &invalidErr)
}

// newProduct creates a product in the groceries category with the given price and stock.
func (suite *ProductRepositoryIntegrationTestSuite) newProduct(name, price string, stock int) *product.Product {
	testProduct, err := product.NewProduct(
		kernel.NewUUID(),
		kernel.NewUUID(),
		name,
		"",
		"groceries",
		"",
		decimal.RequireFromString(price),
		stock,
	)
	suite.Require().NoError(err)
	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
