package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for query test seeding.
type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	memberRepo *memberrepo.GormMemberRepository
	itemRepo   *itemrepo.GormItemRepository
	orderRepo  *orderrepo.GormOrderRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.LineItemDTO{},
	)
	suite.Require().NoError(err)

	tracker := &mockAggregateTracker{}
	suite.memberRepo = memberrepo.NewGormMemberRepository(db, tracker)
	suite.itemRepo = itemrepo.NewGormItemRepository(db, tracker)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, tracker)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, members, items, deliveries, line_items").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// seedMember persists a member with the default test address.
func (suite *QueriesIntegrationTestSuite) seedMember(name string) *member.Member {
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04000")
	suite.Require().NoError(err)
	m, err := member.NewMember(kernel.NewUUID(), name, address)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.memberRepo.Add(context.Background(), m))
	return m
}

// seedBook persists a book item.
func (suite *QueriesIntegrationTestSuite) seedBook(name string, price, stock int) *item.Item {
	it, err := item.NewBook(kernel.NewUUID(), name, price, stock, "kim", "10929")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.itemRepo.Add(context.Background(), it))
	return it
}

// seedOrder places an order for the given member and item.
func (suite *QueriesIntegrationTestSuite) seedOrder(buyer *member.Member, it *item.Item, quantity int) *order.Order {
	ctx := context.Background()

	delivery, err := order.NewDelivery(kernel.NewUUID(), buyer.Address())
	suite.Require().NoError(err)
	lineItem, err := order.NewLineItem(kernel.NewUUID(), it, it.Price(), quantity)
	suite.Require().NoError(err)
	placed, err := order.NewOrder(kernel.NewUUID(), buyer, delivery, lineItem)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(ctx, placed))
	suite.Require().NoError(suite.itemRepo.Update(ctx, it))
	return placed
}

func (suite *QueriesIntegrationTestSuite) TestGetAllMembers() {
	suite.seedMember("kim")
	suite.seedMember("lee")

	handler := queries.NewGetAllMembersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllMembersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("kim", result[0].Name)
	suite.Equal("lee", result[1].Name)
	suite.Equal("Seoul", result[0].City)
}

func (suite *QueriesIntegrationTestSuite) TestGetAllMembers_Empty() {
	handler := queries.NewGetAllMembersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllMembersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesIntegrationTestSuite) TestGetAllItems() {
	suite.seedBook("JPA Book", 20000, 100)

	handler := queries.NewGetAllItemsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllItemsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("JPA Book", result[0].Name)
	suite.Equal(20000, result[0].Price)
	suite.Equal(100, result[0].Stock)
	suite.Equal("Book", result[0].Kind)
}

func (suite *QueriesIntegrationTestSuite) TestFindOrders_NoFilters() {
	kim := suite.seedMember("kim")
	book := suite.seedBook("JPA Book", 10000, 10)
	suite.seedOrder(kim, book, 2)

	handler := queries.NewFindOrdersQueryHandler(suite.db)
	query, err := queries.NewFindOrdersQuery("", order.Unknown)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("kim", result[0].MemberName)
	suite.Equal("Placed", result[0].Status)
	suite.Equal(20000, result[0].TotalPrice)
}

func (suite *QueriesIntegrationTestSuite) TestFindOrders_FiltersByMemberAndStatus() {
	kim := suite.seedMember("kim")
	lee := suite.seedMember("lee")
	book := suite.seedBook("JPA Book", 10000, 10)

	kimOrder := suite.seedOrder(kim, book, 1)
	suite.seedOrder(lee, book, 1)

	// Cancel kim's order
	ctx := context.Background()
	retrieved, err := suite.orderRepo.Get(ctx, kimOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(retrieved.Cancel())
	suite.Require().NoError(suite.orderRepo.Update(ctx, retrieved))

	handler := queries.NewFindOrdersQueryHandler(suite.db)

	query, err := queries.NewFindOrdersQuery("kim", order.Cancelled)
	suite.Require().NoError(err)
	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(kimOrder.ID(), result[0].ID)
	suite.Equal("Cancelled", result[0].Status)

	query, err = queries.NewFindOrdersQuery("kim", order.Placed)
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(result)

	query, err = queries.NewFindOrdersQuery("lee", order.Unknown)
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("lee", result[0].MemberName)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsFullDetails() {
	kim := suite.seedMember("kim")
	book := suite.seedBook("JPA Book", 10000, 10)
	placed := suite.seedOrder(kim, book, 2)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(placed.ID(), result.ID)
	suite.Equal("kim", result.MemberName)
	suite.Equal("Placed", result.Status)
	suite.Equal("Ready", result.DeliveryStatus)
	suite.Equal(20000, result.TotalPrice)
	suite.Require().Len(result.LineItems, 1)
	suite.Equal(book.ID(), result.LineItems[0].ItemID)
	suite.Equal("JPA Book", result.LineItems[0].ItemName)
	suite.Equal(10000, result.LineItems[0].UnitPrice)
	suite.Equal(2, result.LineItems[0].Quantity)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	handler := queries.NewFindOrdersQueryHandler(suite.db)

	_, err := handler.Handle(context.Background(), queries.FindOrdersQuery{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewFindOrdersQuery constructor")
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
