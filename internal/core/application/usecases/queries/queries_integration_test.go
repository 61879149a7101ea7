package queries_test

import (
	"context"
	"testing"
	"time"

	"globaledge/internal/adapters/out/postgres/shipmentrepo"
	"globaledge/internal/core/application/usecases/queries"
	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// ShipmentQueriesIntegrationTestSuite exercises every query handler against a
// real PostgreSQL schema, seeded through the write-side repository so the read
// side sees exactly what production rows look like.
type ShipmentQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentQueriesIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
	suite.repo = shipmentrepo.NewGormShipmentRepository(db, noopTracker{})
}

func (suite *ShipmentQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

type seedOptions struct {
	owner        *kernel.UUID
	to           string
	recipient    string
	status       shipment.Status
	etaAt        *time.Time
	lastLocation string
	bookedAt     time.Time
}

func (suite *ShipmentQueriesIntegrationTestSuite) seedShipment(opts seedOptions) *shipment.Shipment {
	if opts.to == "" {
		opts.to = "Paris"
	}
	if opts.recipient == "" {
		opts.recipient = "bob@example.com"
	}
	if opts.bookedAt.IsZero() {
		opts.bookedAt = time.Now()
	}

	from, err := kernel.NewPlace("London")
	suite.Require().NoError(err)
	to, err := kernel.NewPlace(opts.to)
	suite.Require().NoError(err)
	shipper, err := shipment.NewContact("Ada Shipper", "ada@example.com", "")
	suite.Require().NoError(err)
	recipient, err := shipment.NewContact("Bob Recipient", opts.recipient, "")
	suite.Require().NoError(err)
	parcel, err := shipment.NewParcel(5, 30, 20, 10, 0, "books", shipment.LevelStandard)
	suite.Require().NoError(err)
	quote, err := shipment.NewQuote("EUR", 30, "2–5 business days", 5)
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewTrackingNumber(), opts.owner,
		shipment.ServiceTypeParcel, from, to, shipper, recipient,
		"10 Rue de Rivoli, 75001 Paris", &parcel, nil, quote, opts.bookedAt,
	)
	suite.Require().NoError(err)

	if opts.status != "" && opts.status != shipment.StatusCreated {
		suite.Require().NoError(aggregate.ChangeStatus(opts.status))
		suite.Require().NoError(aggregate.RecordUpdate("Updated", opts.bookedAt.Add(time.Minute)))
	}
	if opts.etaAt != nil {
		aggregate.SetETAAt(*opts.etaAt)
	}
	if opts.lastLocation != "" {
		aggregate.SetLastLocation(opts.lastLocation)
	}

	suite.Require().NoError(suite.repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetShipment_ReturnsFullView() {
	ctx := context.Background()
	owner := kernel.NewUUID()
	aggregate := suite.seedShipment(seedOptions{owner: &owner})

	query, err := queries.NewGetShipmentQuery(aggregate.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetShipmentQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(view.ID.IsEqual(aggregate.ID()))
	suite.Equal(aggregate.TrackingNumber().String(), view.TrackingNumber)
	suite.Require().NotNil(view.UserID)
	suite.True(view.UserID.IsEqual(owner))
	suite.Equal("parcel", view.ServiceType)
	suite.Equal("London", view.From)
	suite.Equal("bob@example.com", view.Recipient.Email)
	suite.Require().NotNil(view.Parcel)
	suite.Nil(view.Freight)
	suite.Equal(30, view.Quote.Price)
	suite.Equal("CREATED", view.Status)
	suite.Equal("Created", view.StatusLabel)
	suite.Require().Len(view.Timeline, 1)
	suite.Equal("Booking created", view.Timeline[0].Note)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetShipment_Missing_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetShipmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetOwnerShipments_NewestFirstAndScoped() {
	ctx := context.Background()
	owner := kernel.NewUUID()
	stranger := kernel.NewUUID()

	older := suite.seedShipment(seedOptions{owner: &owner, bookedAt: time.Now().Add(-2 * time.Hour)})
	newer := suite.seedShipment(seedOptions{owner: &owner, bookedAt: time.Now().Add(-time.Hour)})
	suite.seedShipment(seedOptions{owner: &stranger})
	suite.seedShipment(seedOptions{}) // ownerless

	query, err := queries.NewGetOwnerShipmentsQuery(owner)
	suite.Require().NoError(err)

	views, err := queries.NewGetOwnerShipmentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.True(views[0].ID.IsEqual(newer.ID()))
	suite.True(views[1].ID.IsEqual(older.ID()))
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetOwnerShipments_Empty() {
	ctx := context.Background()

	query, err := queries.NewGetOwnerShipmentsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	views, err := queries.NewGetOwnerShipmentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetPublicTracking_FullDetailWithoutOwner() {
	ctx := context.Background()
	owner := kernel.NewUUID()
	aggregate := suite.seedShipment(seedOptions{owner: &owner, status: shipment.StatusInTransit})

	query, err := queries.NewGetPublicTrackingQuery("  " + aggregate.TrackingNumber().String() + "  ")
	suite.Require().NoError(err)

	tracking, err := queries.NewGetPublicTrackingQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(aggregate.TrackingNumber().String(), tracking.TrackingNumber)
	suite.Equal("IN_TRANSIT", tracking.Status)
	suite.Equal("In Transit", tracking.StatusLabel)
	suite.Equal("London", tracking.From)
	suite.Equal("Paris", tracking.To)
	suite.Equal("Ada Shipper", tracking.Shipper.Name)
	suite.Equal("Bob Recipient", tracking.Recipient.Name)
	suite.Equal("bob@example.com", tracking.Recipient.Email)
	suite.Equal("10 Rue de Rivoli, 75001 Paris", tracking.RecipientAddress)
	suite.Require().NotNil(tracking.Parcel)
	suite.InDelta(5.0, tracking.Parcel.Weight, 0.0001)
	suite.Equal("EUR", tracking.Quote.Currency)
	suite.Equal(30, tracking.Quote.Price)
	suite.InDelta(5.0, tracking.Quote.Billable, 0.0001)
	suite.False(tracking.CreatedAt.IsZero())
	suite.Require().Len(tracking.Timeline, 2)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetPublicTracking_Missing_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetPublicTrackingQuery(kernel.NewTrackingNumber().String())
	suite.Require().NoError(err)

	_, err = queries.NewGetPublicTrackingQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestListShipments_StatusFilter() {
	ctx := context.Background()
	suite.seedShipment(seedOptions{status: shipment.StatusInTransit})
	suite.seedShipment(seedOptions{status: shipment.StatusInTransit})
	suite.seedShipment(seedOptions{})

	query, err := queries.NewListShipmentsQuery("in transit", "", 1, 20)
	suite.Require().NoError(err)

	response, err := queries.NewListShipmentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(2), response.Total)
	suite.Len(response.Items, 2)
	for _, item := range response.Items {
		suite.Equal("IN_TRANSIT", item.Status)
	}
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestListShipments_SearchMatchesSeveralColumns() {
	ctx := context.Background()
	byRoute := suite.seedShipment(seedOptions{to: "Lisbon"})
	byEmail := suite.seedShipment(seedOptions{recipient: "carol@lisbon-imports.example"})
	byLocation := suite.seedShipment(seedOptions{lastLocation: "Lisbon sorting hub"})
	suite.seedShipment(seedOptions{})

	query, err := queries.NewListShipmentsQuery("", "lisbon", 1, 20)
	suite.Require().NoError(err)

	response, err := queries.NewListShipmentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(3), response.Total)
	found := map[string]bool{}
	for _, item := range response.Items {
		found[item.ID.String()] = true
	}
	suite.True(found[byRoute.ID().String()])
	suite.True(found[byEmail.ID().String()])
	suite.True(found[byLocation.ID().String()])

	// Tracking number search, case-insensitive.
	query, err = queries.NewListShipmentsQuery("", byRoute.TrackingNumber().String()[:6], 1, 20)
	suite.Require().NoError(err)
	response, err = queries.NewListShipmentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.GreaterOrEqual(response.Total, int64(1))
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestListShipments_Pagination() {
	ctx := context.Background()
	for i := range 5 {
		suite.seedShipment(seedOptions{bookedAt: time.Now().Add(-time.Duration(i) * time.Hour)})
	}

	query, err := queries.NewListShipmentsQuery("", "", 2, 2)
	suite.Require().NoError(err)

	response, err := queries.NewListShipmentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(5), response.Total)
	suite.Len(response.Items, 2)
	suite.Equal(2, response.Page)
	suite.Equal(2, response.Limit)
}

func (suite *ShipmentQueriesIntegrationTestSuite) TestGetOverdueShipments() {
	ctx := context.Background()
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)

	overdue := suite.seedShipment(seedOptions{status: shipment.StatusInTransit, etaAt: &past})
	suite.seedShipment(seedOptions{status: shipment.StatusInTransit, etaAt: &future})
	suite.seedShipment(seedOptions{status: shipment.StatusDelivered, etaAt: &past})
	suite.seedShipment(seedOptions{status: shipment.StatusInTransit}) // no deadline

	query, err := queries.NewGetOverdueShipmentsQuery(time.Now())
	suite.Require().NoError(err)

	results, err := queries.NewGetOverdueShipmentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.True(results[0].ID.IsEqual(overdue.ID()))
	suite.Equal("IN_TRANSIT", results[0].Status)
	suite.Equal("bob@example.com", results[0].RecipientEmail)
}

func TestShipmentQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentQueriesIntegrationTestSuite))
}
