package commands_test

import (
	"context"
	"testing"
	"time"

	"dentallab/internal/adapters/out/postgres"
	"dentallab/internal/adapters/out/postgres/stagerepo"
	"dentallab/internal/adapters/out/postgres/testdb"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW { return f() }

type funcStageUoWFactory func() commands.StageUoW

func (f funcStageUoWFactory) Create() commands.StageUoW { return f() }

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

// TestOrderLifecycle walks one crown order from creation to completion
// against a real database.
func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewSQLite(t)
	fx := testdb.Seed(t, db)
	uows := postgres.NewGormUnitOfWorkFactory(db)
	clk := clock.NewFixed(now)
	logger := discardLogger()

	createOrder := commands.NewCreateOrderCommandHandler(
		funcOrderUoWFactory(func() commands.OrderUoW { return uows.Create() }), clk, logger)
	updateOrder := commands.NewUpdateOrderStatusCommandHandler(
		funcUoWFactory(func() commands.UoW { return uows.Create() }),
		services.NewOrderProgression(services.PolicyStrict), services.NewStageFanOut(), clk, logger)
	updateStage := commands.NewUpdateStageCommandHandler(
		funcStageUoWFactory(func() commands.StageUoW { return uows.Create() }),
		services.NewStageProgression(services.PolicyLenient), clk, logger)

	createCmd, err := commands.NewCreateOrderCommand(order.Details{
		DentalClinicID: fx.ClinicID,
		DentistName:    "Dr. Hoang",
		PatientName:    "Le Thu",
		PatientGender:  order.GenderFemale,
		Mode:           order.ModeNew,
	}, decimal.RequireFromString("260"), decimal.RequireFromString("10"), []commands.CreateOrderItem{
		{ProductID: fx.ZirconiaID, TeethPositionID: fx.TeethPositionID, SellingPrice: decimal.RequireFromString("250"), Quantity: 1},
		{ProductID: fx.TemporaryID, TeethPositionID: fx.TeethPositionID, SellingPrice: decimal.RequireFromString("10"), Quantity: 1},
	})
	require.NoError(t, err)

	created, err := createOrder.Handle(ctx, createCmd)
	require.NoError(t, err)
	orderID := created.Order.ID()
	assert.Equal(t, "Smile Clinic", created.DentalClinic.Name)
	assert.NotEmpty(t, created.Order.InvoiceID().String())
	assert.Equal(t, "250.00", created.Order.FinalAmount().String())

	clk.Advance(time.Hour)
	producing, err := commands.NewUpdateOrderStatusCommand(orderID, order.StatusProducing, fx.ManagerID, "")
	require.NoError(t, err)
	res, err := updateOrder.Handle(ctx, producing)
	require.NoError(t, err)
	require.Equal(t, services.OutcomeApplied, res.Outcome)
	assert.Equal(t, "Nguyen Van Minh", res.UpdatedByName)

	// Only the zirconia item has stage templates.
	var stageIDs []int64
	require.NoError(t, db.Model(&stagerepo.StageDTO{}).Order("index_stage").Pluck("id", &stageIDs).Error)
	require.Len(t, stageIDs, 3)

	again, err := updateOrder.Handle(ctx, producing)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeUnchanged, again.Outcome)
	var count int64
	require.NoError(t, db.Model(&stagerepo.StageDTO{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	complete, err := commands.NewUpdateOrderStatusCommand(orderID, order.StatusCompleted, fx.ManagerID, "")
	require.NoError(t, err)
	early, err := updateOrder.Handle(ctx, complete)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeRejected, early.Outcome)
	assert.Equal(t, "3 stages are still pending", early.Note)

	staff := fx.StaffID
	steps := []struct {
		stageID int64
		status  stage.Status
		outcome services.Outcome
	}{
		{stageIDs[2], stage.StatusPending, services.OutcomeRejected},
		{stageIDs[0], stage.StatusPending, services.OutcomeApplied},
		{stageIDs[0], stage.StatusCompleted, services.OutcomeApplied},
		{stageIDs[1], stage.StatusPending, services.OutcomeApplied},
		{stageIDs[1], stage.StatusCompleted, services.OutcomeApplied},
		{stageIDs[2], stage.StatusPending, services.OutcomeApplied},
		{stageIDs[2], stage.StatusCompleted, services.OutcomeApplied},
	}
	for i, step := range steps {
		clk.Advance(30 * time.Minute)
		cmd, cmdErr := commands.NewUpdateStageCommand(step.stageID, step.status, &staff, "")
		require.NoError(t, cmdErr)

		stageRes, handleErr := updateStage.Handle(ctx, cmd)

		require.NoError(t, handleErr, "step %d", i+1)
		assert.Equal(t, step.outcome, stageRes.Outcome, "step %d", i+1)
		if step.outcome == services.OutcomeApplied {
			assert.Equal(t, "Tran Thi Lan", stageRes.OperatorName, "step %d", i+1)
		}
	}

	var milling stagerepo.StageDTO
	require.NoError(t, db.First(&milling, stageIDs[1]).Error)
	assert.Equal(t, "Completed", milling.Status)
	require.NotNil(t, milling.EndDate)
	assert.Equal(t, 1.5, milling.ExecutionTime)

	done, err := updateOrder.Handle(ctx, complete)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeApplied, done.Outcome)
	assert.Equal(t, order.StatusCompleted, done.Status)

	cancel, err := commands.NewUpdateOrderStatusCommand(orderID, order.StatusCanceled, fx.ManagerID, "")
	require.NoError(t, err)
	late, err := updateOrder.Handle(ctx, cancel)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeRejected, late.Outcome)
	assert.Equal(t, order.StatusCompleted, late.Status)
}
