package jobs

import (
	"context"
	"log/slog"
	"time"

	"globaledge/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob watches for shipments past their ETA deadline.
// Runs every minute and logs a warning per overdue shipment so operations
// can follow up. Read-only: the job never mutates shipment state.
type OverdueShipmentJob struct {
	handler queries.GetOverdueShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentJob creates a new job for the overdue watch.
func NewOverdueShipmentJob(handler queries.GetOverdueShipmentsQueryHandler, logger *slog.Logger) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue watch to run every minute.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueShipmentsQuery(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job failed", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job failed", "error", err)
			return
		}

		for _, entry := range overdue {
			j.logger.WarnContext(ctx, "Shipment past ETA deadline",
				"shipmentID", entry.ID.String(),
				"trackingNumber", entry.TrackingNumber,
				"status", entry.Status,
				"etaAt", entry.ETAAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started (running every minute)")
	return nil
}

// Stop stops the overdue watch.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}
