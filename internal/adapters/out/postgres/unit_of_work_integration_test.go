package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "globaledge/internal/adapters/out/postgres"
	"globaledge/internal/adapters/out/postgres/shipmentrepo"
	"globaledge/internal/adapters/out/postgres/userrepo"
	"globaledge/internal/core/domain/model/account"
	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/core/ports"
	"globaledge/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, users").Error)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment() *shipment.Shipment {
	from, err := kernel.NewPlace("London")
	suite.Require().NoError(err)
	to, err := kernel.NewPlace("Paris")
	suite.Require().NoError(err)
	shipper, err := shipment.NewContact("Ada Shipper", "ada@example.com", "")
	suite.Require().NoError(err)
	recipient, err := shipment.NewContact("Bob Recipient", "bob@example.com", "")
	suite.Require().NoError(err)
	parcel, err := shipment.NewParcel(5, 30, 20, 10, 0, "books", shipment.LevelStandard)
	suite.Require().NoError(err)
	quote, err := shipment.NewQuote("EUR", 30, "2–5 business days", 5)
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewTrackingNumber(), nil,
		shipment.ServiceTypeParcel, from, to, shipper, recipient,
		"10 Rue de Rivoli, 75001 Paris", &parcel, nil, quote, time.Now(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) newProspect(rawEmail string) *account.User {
	email, err := kernel.NewEmail(rawEmail)
	suite.Require().NoError(err)

	user, err := account.NewProspect(kernel.NewUUID(), "", email, kernel.Phone{}, time.Now())
	suite.Require().NoError(err)
	return user
}

func (suite *UnitOfWorkIntegrationTestSuite) shipmentCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) userCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_FreshInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin is idempotent; no nested transaction is created.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit without an active transaction fails.
	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	user := suite.newProspect("ada@example.com")
	suite.Require().NoError(uow.UserRepository().Add(ctx, user))

	aggregate := suite.newShipment()
	suite.Require().NoError(aggregate.AttachOwner(user.ID()))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.shipmentCount())
	suite.Equal(int64(1), suite.userCount())

	restored, err := suite.factory.Create().ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restored.UserID())
	suite.True(restored.UserID().IsEqual(user.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, suite.newProspect("ada@example.com")))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, suite.newShipment()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.shipmentCount())
	suite.Equal(int64(0), suite.userCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_WritesImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Repositories obtained before Begin use the main connection.
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, suite.newShipment()))
	suite.Equal(int64(1), suite.shipmentCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateFlow_ReadModifyWrite() {
	ctx := context.Background()

	setup := suite.factory.Create()
	aggregate := suite.newShipment()
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, aggregate))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.ShipmentRepository()
	loaded, err := repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.ChangeStatus(shipment.StatusPickedUp))
	suite.Require().NoError(loaded.RecordUpdate("Updated", time.Now()))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusPickedUp, restored.Status())
	suite.Len(restored.Timeline(), 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateUserEmail_SurfacesAlreadyExists() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.UserRepository().Add(ctx, suite.newProspect("ada@example.com")))

	err := uow.UserRepository().Add(ctx, suite.newProspect("ada@example.com"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
