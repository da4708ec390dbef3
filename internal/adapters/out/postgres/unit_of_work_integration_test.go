package postgres_test

import (
	"context"
	"testing"
	"time"

	"dinein/internal/adapters/out/postgres"
	"dinein/internal/adapters/out/postgres/orderrepo"
	"dinein/internal/adapters/out/postgres/tablerepo"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/domain/model/table"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the
// GORM unit of work across table and order repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&tablerepo.TableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tables, orders, order_line_items").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin is idempotent within one unit of work
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	tbl, err := table.NewTable(kernel.NewUUID(), "Window 2")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TableRepository().Add(ctx, tbl))

	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&tablerepo.TableDTO{}).Count(&count).Error)
	suite.Zero(count)
}

// Completing the last order and clearing its table must be atomic: either
// both rows change or neither does.
func (suite *UnitOfWorkIntegrationTestSuite) TestCompletionWorkflowCommitsAtomically() {
	ctx := context.Background()

	tbl, err := table.NewTable(kernel.NewUUID(), "Window 2")
	suite.Require().NoError(err)
	suite.Require().NoError(tbl.Occupy(2))

	o := suite.createServedOrder(tbl.ID())

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.TableRepository().Add(ctx, tbl))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(o.Complete())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	locked, err := uow.TableRepository().GetForUpdate(ctx, tbl.ID())
	suite.Require().NoError(err)

	siblings, err := uow.OrderRepository().GetAllByTableID(ctx, tbl.ID())
	suite.Require().NoError(err)
	suite.Require().Len(siblings, 1)
	suite.Equal(order.Completed, siblings[0].Status())

	locked.Clear()
	suite.Require().NoError(uow.TableRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	persistedTable, err := check.TableRepository().Get(ctx, tbl.ID())
	suite.Require().NoError(err)
	suite.False(persistedTable.Occupied())

	persistedOrder, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, persistedOrder.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransactionUsesMainConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	tbl, err := table.NewTable(kernel.NewUUID(), "Patio 1")
	suite.Require().NoError(err)

	// No Begin: repository operations execute immediately
	suite.Require().NoError(uow.TableRepository().Add(ctx, tbl))

	retrieved, err := uow.TableRepository().Get(ctx, tbl.ID())
	suite.Require().NoError(err)
	suite.Equal(tbl.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createServedOrder(tableID kernel.UUID) *order.Order {
	price, err := kernel.PriceFromString("16000")
	suite.Require().NoError(err)

	lineItem, err := order.NewLineItem(kernel.NewUUID(), 1, price)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), tableID, []order.LineItem{lineItem}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(o.Accept())
	suite.Require().NoError(o.Serve())
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
