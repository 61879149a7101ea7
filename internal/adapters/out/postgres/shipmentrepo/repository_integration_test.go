package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"globaledge/internal/adapters/out/postgres/shipmentrepo"
	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for ShipmentRepository
// using PostgreSQL containers to verify database persistence behavior.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createParcelShipment() *shipment.Shipment {
	from, err := kernel.NewPlace("London")
	suite.Require().NoError(err)
	to, err := kernel.NewPlace("Paris")
	suite.Require().NoError(err)
	shipper, err := shipment.NewContact("Ada Shipper", "ada@example.com", "07911 123456")
	suite.Require().NoError(err)
	recipient, err := shipment.NewContact("Bob Recipient", "bob@example.com", "")
	suite.Require().NoError(err)
	parcel, err := shipment.NewParcel(5, 30, 20, 10, 120, "books", shipment.LevelExpress)
	suite.Require().NoError(err)
	quote, err := shipment.NewQuote("EUR", 48, "24–72 hours", 5)
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewTrackingNumber(), nil,
		shipment.ServiceTypeParcel, from, to, shipper, recipient,
		"10 Rue de Rivoli, 75001 Paris", &parcel, nil, quote, time.Now(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createFreightShipment() *shipment.Shipment {
	from, err := kernel.NewPlace("Hamburg")
	suite.Require().NoError(err)
	to, err := kernel.NewPlace("Shanghai")
	suite.Require().NoError(err)
	shipper, err := shipment.NewContact("Cargo GmbH", "ops@cargo.example", "")
	suite.Require().NoError(err)
	recipient, err := shipment.NewContact("Han Imports", "han@imports.example", "")
	suite.Require().NoError(err)
	mode, err := shipment.ParseFreightMode("sea")
	suite.Require().NoError(err)
	freight, err := shipment.NewFreight(mode, 4, 120, 80, 100, 250, "", "fragile machinery")
	suite.Require().NoError(err)
	quote, err := shipment.NewQuote("EUR", 1090, "12–35 days port-to-door", 1000)
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewTrackingNumber(), nil,
		shipment.ServiceTypeFreight, from, to, shipper, recipient,
		"", nil, &freight, quote, time.Now(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ParcelShipment_RoundTrips() {
	ctx := context.Background()
	aggregate := suite.createParcelShipment()

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(aggregate.ID()))
	suite.Equal(aggregate.TrackingNumber().String(), restored.TrackingNumber().String())
	suite.Equal(shipment.ServiceTypeParcel, restored.ServiceType())
	suite.Equal("London", restored.From().String())
	suite.Equal("Paris", restored.To().String())
	suite.Equal("bob@example.com", restored.RecipientEmail().String())
	suite.Require().NotNil(restored.Parcel())
	suite.Nil(restored.Freight())
	suite.InDelta(5.0, restored.Parcel().Weight(), 0.0001)
	suite.InDelta(120.0, restored.Parcel().Value(), 0.0001)
	suite.Equal("books", restored.Parcel().Contents())
	suite.Equal(shipment.LevelExpress, restored.Parcel().Level())
	suite.Equal(48, restored.Quote().Price())
	suite.Equal(shipment.StatusCreated, restored.Status())
	suite.Require().Len(restored.Timeline(), 1)
	suite.Equal("Booking created", restored.Timeline()[0].Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_FreightShipment_RoundTrips() {
	ctx := context.Background()
	aggregate := suite.createFreightShipment()

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NotNil(restored.Freight())
	suite.Nil(restored.Parcel())
	suite.Equal(4, restored.Freight().Pallets())
	suite.Equal("DAP", restored.Freight().Incoterm())
	suite.Equal("fragile machinery", restored.Freight().Notes())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_AlreadyExists() {
	ctx := context.Background()
	first := suite.createParcelShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createParcelShipment()
	suite.Require().NoError(suite.db.Exec(
		"UPDATE shipments SET tracking_number = ? WHERE id = ?",
		second.TrackingNumber().String(), first.ID().Bytes(),
	).Error)

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsTimelineGrowth() {
	ctx := context.Background()
	aggregate := suite.createParcelShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(shipment.StatusInTransit))
	aggregate.SetLastLocation("Calais")
	suite.Require().NoError(aggregate.RecordUpdate("Location: Calais", time.Now()))

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusInTransit, restored.Status())
	suite.Equal("Calais", restored.LastLocation())
	suite.Require().Len(restored.Timeline(), 2)
	suite.Equal("Location: Calais", restored.Timeline()[1].Note())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_MissingShipment_RecordNotFound() {
	ctx := context.Background()
	aggregate := suite.createParcelShipment()

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_MissingShipment_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()
	aggregate := suite.createParcelShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.GetByTrackingNumber(ctx, aggregate.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(aggregate.ID()))

	_, err = suite.repository.GetByTrackingNumber(ctx, kernel.NewTrackingNumber())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestExistsWithTrackingNumber() {
	ctx := context.Background()
	aggregate := suite.createParcelShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	exists, err := suite.repository.ExistsWithTrackingNumber(ctx, aggregate.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsWithTrackingNumber(ctx, kernel.NewTrackingNumber())
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
