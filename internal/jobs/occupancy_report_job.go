package jobs

import (
	"context"
	"log/slog"

	"gridstore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OccupancyReportJob periodically logs the system-wide occupancy state.
// Runs every minute so operators can follow fill levels from the logs
// without polling the summary endpoint.
type OccupancyReportJob struct {
	handler queries.GetSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOccupancyReportJob creates a new job for occupancy reporting.
// Uses GetSummaryQueryHandler to read the counters once a minute.
func NewOccupancyReportJob(handler queries.GetSummaryQueryHandler, logger *slog.Logger) *OccupancyReportJob {
	return &OccupancyReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "occupancy_report_job"),
	}
}

// Start begins the occupancy report job to run every minute.
func (j *OccupancyReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetSummaryQuery()

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Occupancy report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Occupancy report",
			"grids", summary.Grids,
			"active_grids", summary.ActiveGrids,
			"total_cells", summary.TotalCells,
			"empty_cells", summary.EmptyCells,
			"filling_cells", summary.FillingCells,
			"full_cells", summary.FullCells,
			"stored_products", summary.StoredProducts,
			"active_orders", summary.ActiveOrders,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy report job started (running every minute)")
	return nil
}

// Stop stops the occupancy report job.
func (j *OccupancyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Occupancy report job stopped")
}
