package jobs

import (
	"context"
	"log/slog"
	"time"

	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSchedule runs the scan at the start of every minute.
const DefaultOverdueSchedule = "0 * * * * *"

type OverdueStagesFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueStagesQuery) ([]queries.OverdueStage, error)
}

// OverdueStageJob periodically reports Pending stages that ran past their
// execution time.
type OverdueStageJob struct {
	finder   OverdueStagesFinder
	clock    clock.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueStageJob creates the job. schedule is a six-field cron
// expression; an empty schedule selects DefaultOverdueSchedule.
func NewOverdueStageJob(finder OverdueStagesFinder, clk clock.Clock, schedule string, logger *slog.Logger) *OverdueStageJob {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	return &OverdueStageJob{
		finder:   finder,
		clock:    clk,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_stage_job"),
	}
}

// Start registers the scan and starts the scheduler.
func (j *OverdueStageJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue stage scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue stage job started", "schedule", j.schedule)
	return nil
}

// Scan runs a single pass and logs one warning per overdue stage.
func (j *OverdueStageJob) Scan(ctx context.Context) (int, error) {
	query, err := queries.NewGetOverdueStagesQuery(j.clock.Now())
	if err != nil {
		return 0, err
	}

	overdue, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, st := range overdue {
		j.logger.WarnContext(ctx, "Stage is overdue",
			"invoice_id", st.InvoiceID,
			"order_id", st.OrderID,
			"stage_id", st.ID,
			"stage", st.StageName,
			"staff", st.StaffName,
			"due_at", st.DueAt,
			"overdue_by", st.OverdueBy.Round(time.Minute).String(),
		)
	}
	return len(overdue), nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *OverdueStageJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue stage job stopped")
}
