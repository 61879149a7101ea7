// Package http exposes the shipment operations over an echo server.
// Handlers translate JSON payloads into commands and queries, map domain
// errors onto status codes, and keep every other decision in the core.
package http

import (
	"net/http"
	"strconv"

	"globaledge/internal/core/application/usecases/commands"
	"globaledge/internal/core/application/usecases/queries"
	"globaledge/internal/core/domain/model/kernel"
	"globaledge/internal/core/domain/model/shipment"
	"globaledge/internal/core/domain/services"
	"globaledge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating proxy. Values are trusted
// verbatim; requests without them are anonymous.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler  commands.CreateShipmentCommandHandler
	updateShipmentHandler  commands.UpdateShipmentCommandHandler
	notifyRecipientHandler commands.NotifyRecipientCommandHandler

	// Query handlers
	getShipmentHandler       queries.GetShipmentQueryHandler
	getOwnerShipmentsHandler queries.GetOwnerShipmentsQueryHandler
	getPublicTrackingHandler queries.GetPublicTrackingQueryHandler
	listShipmentsHandler     queries.ListShipmentsQueryHandler

	rateCalculator services.RateCalculator
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	notifyRecipientHandler commands.NotifyRecipientCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getOwnerShipmentsHandler queries.GetOwnerShipmentsQueryHandler,
	getPublicTrackingHandler queries.GetPublicTrackingQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:    createShipmentHandler,
		updateShipmentHandler:    updateShipmentHandler,
		notifyRecipientHandler:   notifyRecipientHandler,
		getShipmentHandler:       getShipmentHandler,
		getOwnerShipmentsHandler: getOwnerShipmentsHandler,
		getPublicTrackingHandler: getPublicTrackingHandler,
		listShipmentsHandler:     listShipmentsHandler,
		rateCalculator:           services.NewRateCalculator(),
	}
}

// RegisterRoutes binds all shipment endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	shipments := e.Group("/api/v1/shipments")
	shipments.POST("/quote", s.QuoteShipment)
	shipments.GET("/track/:tracking", s.TrackShipment)
	shipments.POST("", s.CreateShipment)
	shipments.GET("", s.GetMyShipments)
	shipments.GET("/:id", s.GetShipment)

	admin := e.Group("/api/v1/admin/shipments")
	admin.GET("", s.ListShipments)
	admin.GET("/:id", s.GetShipmentAdmin)
	admin.PATCH("/:id", s.UpdateShipment)
	admin.POST("/:id/notify", s.NotifyRecipient)
}

// CreateShipment handles POST /api/v1/shipments - books a new shipment.
// Anonymous bookings are allowed; an authenticated caller becomes the owner.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request createShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorWithStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	from, to := resolveRoute(request.From, request.Origin, request.To, request.Destination)
	shipper, recipient, parcel, freight := request.toCommandInput()

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		s.requesterID(ctx),
		request.ServiceType,
		from,
		to,
		shipper,
		recipient,
		request.RecipientAddress,
		parcel,
		freight,
	)
	if err != nil {
		return writeErrorWithStatus(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}
	view, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(view))
}

// QuoteShipment handles POST /api/v1/shipments/quote - prices a shipment
// without booking it.
func (s *Server) QuoteShipment(ctx echo.Context) error {
	var request quoteRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorWithStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	quote, err := s.quoteFromRequest(request)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quoteResponse{
		Currency: quote.Currency(),
		Price:    quote.Price(),
		ETA:      quote.ETA(),
		Billable: quote.Billable(),
	})
}

// TrackShipment handles GET /api/v1/shipments/track/:tracking - the public
// tracking page lookup. No authentication, no owner linkage.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewGetPublicTrackingQuery(ctx.Param("tracking"))
	if err != nil {
		return writeError(ctx, err)
	}

	tracking, err := s.getPublicTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPublicTrackingResponse(tracking))
}

// GetMyShipments handles GET /api/v1/shipments - lists the caller's bookings,
// newest first.
func (s *Server) GetMyShipments(ctx echo.Context) error {
	requesterID := s.requesterID(ctx)
	if requesterID == nil {
		return writeErrorWithStatus(ctx, http.StatusUnauthorized, "Authentication required")
	}

	query, err := queries.NewGetOwnerShipmentsQuery(*requesterID)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOwnerShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]shipmentResponse, len(views))
	for i, view := range views {
		response[i] = toShipmentResponse(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id - retrieves one shipment,
// visible to its owner and to admins only.
func (s *Server) GetShipment(ctx echo.Context) error {
	requesterID := s.requesterID(ctx)
	if requesterID == nil && !s.isAdmin(ctx) {
		return writeErrorWithStatus(ctx, http.StatusUnauthorized, "Authentication required")
	}

	view, err := s.loadShipment(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if !s.isAdmin(ctx) {
		if view.UserID == nil || requesterID == nil || !view.UserID.IsEqual(*requesterID) {
			// Hide existence from non-owners.
			return writeError(ctx, errs.NewObjectNotFoundError("shipmentID", view.ID))
		}
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(view))
}

// GetShipmentAdmin handles GET /api/v1/admin/shipments/:id.
func (s *Server) GetShipmentAdmin(ctx echo.Context) error {
	if !s.isAdmin(ctx) {
		return writeErrorWithStatus(ctx, http.StatusForbidden, "Admin role required")
	}

	view, err := s.loadShipment(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipmentResponse(view))
}

// ListShipments handles GET /api/v1/admin/shipments - the filtered, paginated
// back-office listing.
func (s *Server) ListShipments(ctx echo.Context) error {
	if !s.isAdmin(ctx) {
		return writeErrorWithStatus(ctx, http.StatusForbidden, "Admin role required")
	}

	page := intQueryParam(ctx, "page", 0)
	limit := intQueryParam(ctx, "limit", 0)

	query, err := queries.NewListShipmentsQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("q"),
		page,
		limit,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	listing, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]shipmentResponse, len(listing.Items))
	for i, view := range listing.Items {
		items[i] = toShipmentResponse(view)
	}
	return ctx.JSON(http.StatusOK, shipmentListResponse{
		Items: items,
		Total: listing.Total,
		Page:  listing.Page,
		Limit: listing.Limit,
	})
}

// UpdateShipment handles PATCH /api/v1/admin/shipments/:id - applies an
// operator patch and returns the refreshed shipment.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	if !s.isAdmin(ctx) {
		return writeErrorWithStatus(ctx, http.StatusForbidden, "Admin role required")
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorWithStatus(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	var request updateShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return writeErrorWithStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, commands.UpdateShipmentPatch{
		Status:       request.Status,
		ETAAt:        request.ETAAt,
		ETAText:      request.ETA,
		Note:         request.Note,
		LastLocation: request.LastLocation,
		From:         resolveRoutePatch(request.From, request.Origin),
		To:           resolveRoutePatch(request.To, request.Destination),
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}
	view, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(view))
}

// NotifyRecipient handles POST /api/v1/admin/shipments/:id/notify - sends an
// explicit status notification regardless of the auto-notify setting.
func (s *Server) NotifyRecipient(ctx echo.Context) error {
	if !s.isAdmin(ctx) {
		return writeErrorWithStatus(ctx, http.StatusForbidden, "Admin role required")
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorWithStatus(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	var request notifyRecipientRequest
	if err = ctx.Bind(&request); err != nil {
		return writeErrorWithStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewNotifyRecipientCommand(shipmentID, request.To, request.Subject, request.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.notifyRecipientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"sent": true})
}

func (s *Server) loadShipment(ctx echo.Context) (queries.ShipmentView, error) {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return queries.ShipmentView{}, errs.NewValueIsInvalidErrorWithCause("shipmentID", err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return queries.ShipmentView{}, err
	}

	return s.getShipmentHandler.Handle(ctx.Request().Context(), query)
}

// requesterID extracts the authenticated caller, nil for anonymous requests
// and malformed header values.
func (s *Server) requesterID(ctx echo.Context) *kernel.UUID {
	raw := ctx.Request().Header.Get(headerUserID)
	if raw == "" {
		return nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil
	}
	return &id
}

func (s *Server) isAdmin(ctx echo.Context) bool {
	return ctx.Request().Header.Get(headerUserRole) == roleAdmin
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (s *Server) quoteFromRequest(request quoteRequest) (shipment.Quote, error) {
	serviceType, err := shipment.ParseServiceType(request.ServiceType, request.Freight != nil)
	if err != nil {
		return shipment.Quote{}, err
	}

	var parcel *shipment.Parcel
	if request.Parcel != nil {
		p, parcelErr := shipment.NewParcel(
			request.Parcel.Weight,
			request.Parcel.Length,
			request.Parcel.Width,
			request.Parcel.Height,
			request.Parcel.Value,
			request.Parcel.Contents,
			shipment.ParseServiceLevel(resolveServiceLevel(request.ServiceLevel, request.Parcel.Level)),
		)
		if parcelErr != nil {
			return shipment.Quote{}, parcelErr
		}
		parcel = &p
	}

	var freight *shipment.Freight
	if request.Freight != nil {
		mode, modeErr := shipment.ParseFreightMode(request.Freight.Mode)
		if modeErr != nil {
			return shipment.Quote{}, modeErr
		}
		f, freightErr := shipment.NewFreight(
			mode,
			request.Freight.Pallets,
			request.Freight.Length,
			request.Freight.Width,
			request.Freight.Height,
			request.Freight.Weight,
			request.Freight.Incoterm,
			request.Freight.Notes,
		)
		if freightErr != nil {
			return shipment.Quote{}, freightErr
		}
		freight = &f
	}

	return s.rateCalculator.Quote(serviceType, parcel, freight)
}
