package commands_test

import (
	"context"
	"testing"
	"time"

	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/directory"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/pkg/clock"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var technician = directory.Account{ID: 9, FullName: "Tran Thi Lan", Role: "Staff"}

// itemStages returns the three stages of order item 21 in the given statuses.
func itemStages(t *testing.T, statuses ...stage.Status) []*stage.Stage {
	t.Helper()
	out := make([]*stage.Stage, 0, len(statuses))
	for i, status := range statuses {
		st, err := stage.RestoreStage(stage.Snapshot{
			ID:            int64(100 + i + 1),
			OrderItemID:   21,
			Index:         i + 1,
			Name:          "stage",
			ExecutionTime: time.Hour,
			Status:        status,
			StartDate:     now.Add(-2 * time.Hour),
			Version:       1,
		})
		require.NoError(t, err)
		out = append(out, st)
	}
	return out
}

type stageFixture struct {
	stages  *MockStageRepository
	dir     *MockDirectoryRepository
	uow     *MockUoW
	factory *MockStageUoWFactory
}

func newStageFixture() stageFixture {
	f := stageFixture{
		stages:  new(MockStageRepository),
		dir:     new(MockDirectoryRepository),
		uow:     new(MockUoW),
		factory: new(MockStageUoWFactory),
	}
	f.uow.On("StageRepository").Return(f.stages).Maybe()
	f.uow.On("DirectoryRepository").Return(f.dir).Maybe()
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

func (f stageFixture) handler(policy services.CompletionPolicy) commands.UpdateStageCommandHandler {
	return commands.NewUpdateStageCommandHandler(f.factory, services.NewStageProgression(policy),
		clock.NewFixed(now), discardLogger())
}

func TestNewUpdateStageCommand(t *testing.T) {
	staff := int64(9)
	cmd, err := commands.NewUpdateStageCommand(102, stage.StatusPending, &staff, " taking it ")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(102), cmd.StageID())
	assert.Equal(t, stage.StatusPending, cmd.Status())
	assert.Equal(t, &staff, cmd.StaffID())
	assert.Equal(t, "taking it", cmd.Note())

	_, err = commands.NewUpdateStageCommand(0, stage.StatusPending, nil, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	zero := int64(0)
	_, err = commands.NewUpdateStageCommand(102, stage.StatusPending, &zero, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	err = commands.UpdateStageCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrUpdateStageCommandIsNotConstructed)
}

func TestUpdateStageCommandHandler_Handle_TakesStageAfterPredecessor(t *testing.T) {
	ctx := context.Background()
	staff := technician.ID
	cmd, err := commands.NewUpdateStageCommand(102, stage.StatusPending, &staff, "milling")
	require.NoError(t, err)

	f := newStageFixture()
	stages := itemStages(t, stage.StatusCompleted, stage.StatusPending, stage.StatusPending)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.stages.On("Get", ctx, int64(102)).Return(stages[1], nil).Once(),
		f.dir.On("GetAccount", ctx, staff).Return(technician, nil).Once(),
		f.stages.On("ListByItem", ctx, int64(21)).Return(stages, nil).Once(),
		f.dir.On("GetAccount", ctx, staff).Return(technician, nil).Once(),
		f.stages.On("Update", ctx, stages[1]).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(int64(1), nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler(services.PolicyLenient)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OutcomeApplied, res.Outcome)
	assert.Equal(t, services.NoteStageUpdated, res.Note)
	assert.Equal(t, "Tran Thi Lan", res.OperatorName)
	assert.Same(t, stages[1], res.Stage)
	assert.Equal(t, &staff, res.Stage.StaffID())
	assert.Equal(t, "milling", res.Stage.Note())
	assert.Equal(t, time.Hour, res.Stage.ExecutionTime())
	f.uow.AssertExpectations(t)
	f.stages.AssertExpectations(t)
}

func TestUpdateStageCommandHandler_Handle_PredecessorNotCompleted(t *testing.T) {
	ctx := context.Background()
	staff := technician.ID
	cmd, err := commands.NewUpdateStageCommand(103, stage.StatusPending, &staff, "")
	require.NoError(t, err)

	f := newStageFixture()
	stages := itemStages(t, stage.StatusCompleted, stage.StatusPending, stage.StatusPending)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.stages.On("Get", ctx, int64(103)).Return(stages[2], nil).Once(),
		f.dir.On("GetAccount", ctx, staff).Return(technician, nil).Once(),
		f.stages.On("ListByItem", ctx, int64(21)).Return(stages, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler(services.PolicyLenient)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OutcomeRejected, res.Outcome)
	assert.Equal(t, services.NotePreviousNotComplete, res.Note)
	assert.Empty(t, res.OperatorName)
	assert.Nil(t, res.Stage.StaffID())
	f.stages.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateStageCommandHandler_Handle_UnknownStatusIsUnchanged(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateStageCommand(101, stage.StatusUnknown, nil, "")
	require.NoError(t, err)

	f := newStageFixture()
	stages := itemStages(t, stage.StatusPending, stage.StatusPending)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.stages.On("Get", ctx, int64(101)).Return(stages[0], nil).Once(),
		f.stages.On("ListByItem", ctx, int64(21)).Return(stages, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler(services.PolicyLenient)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OutcomeUnchanged, res.Outcome)
	assert.Equal(t, stage.StatusPending, res.Stage.Status())
	f.dir.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}

func TestUpdateStageCommandHandler_Handle_CompleteKeepsOperator(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateStageCommand(101, stage.StatusCompleted, nil, "done")
	require.NoError(t, err)

	f := newStageFixture()
	stages := itemStages(t, stage.StatusPending, stage.StatusPending)
	staff := technician.ID
	require.NoError(t, stages[0].MarkPending(&staff, ""))
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.stages.On("Get", ctx, int64(101)).Return(stages[0], nil).Once(),
		f.stages.On("ListByItem", ctx, int64(21)).Return(stages, nil).Once(),
		f.dir.On("GetAccount", ctx, staff).Return(technician, nil).Once(),
		f.stages.On("Update", ctx, stages[0]).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(int64(1), nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler(services.PolicyLenient)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, stage.StatusCompleted, res.Stage.Status())
	require.NotNil(t, res.Stage.EndDate())
	assert.Equal(t, now, *res.Stage.EndDate())
	assert.Equal(t, "Tran Thi Lan", res.OperatorName)
}

func TestUpdateStageCommandHandler_Handle_RemovedOperatorHasNoName(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateStageCommand(101, stage.StatusCompleted, nil, "")
	require.NoError(t, err)

	f := newStageFixture()
	stages := itemStages(t, stage.StatusPending)
	gone := int64(404)
	require.NoError(t, stages[0].MarkPending(&gone, ""))
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.stages.On("Get", ctx, int64(101)).Return(stages[0], nil).Once(),
		f.stages.On("ListByItem", ctx, int64(21)).Return(stages, nil).Once(),
		f.dir.On("GetAccount", ctx, gone).
			Return(directory.Account{}, errs.NewObjectNotFoundError("account", gone)).Once(),
		f.stages.On("Update", ctx, stages[0]).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(int64(1), nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler(services.PolicyLenient)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, res.OperatorName)
}

func TestUpdateStageCommandHandler_Handle_NotFound(t *testing.T) {
	t.Run("stage", func(t *testing.T) {
		ctx := context.Background()
		cmd, err := commands.NewUpdateStageCommand(500, stage.StatusPending, nil, "")
		require.NoError(t, err)

		f := newStageFixture()
		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.stages.On("Get", ctx, int64(500)).
				Return(nil, errs.NewObjectNotFoundError("order item stage", int64(500))).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := f.handler(services.PolicyLenient)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("staff", func(t *testing.T) {
		ctx := context.Background()
		staff := int64(77)
		cmd, err := commands.NewUpdateStageCommand(101, stage.StatusPending, &staff, "")
		require.NoError(t, err)

		f := newStageFixture()
		stages := itemStages(t, stage.StatusPending)
		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.stages.On("Get", ctx, int64(101)).Return(stages[0], nil).Once(),
			f.dir.On("GetAccount", ctx, staff).
				Return(directory.Account{}, errs.NewObjectNotFoundError("account", staff)).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := f.handler(services.PolicyLenient)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.stages.AssertNotCalled(t, "ListByItem", mock.Anything, mock.Anything)
	})
}

func TestUpdateStageCommandHandler_Handle_StrictRejectsSettledStage(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateStageCommand(101, stage.StatusPending, nil, "")
	require.NoError(t, err)

	f := newStageFixture()
	stages := itemStages(t, stage.StatusCompleted, stage.StatusPending)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.stages.On("Get", ctx, int64(101)).Return(stages[0], nil).Once(),
		f.stages.On("ListByItem", ctx, int64(21)).Return(stages, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler(services.PolicyStrict)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OutcomeRejected, res.Outcome)
	assert.Equal(t, "stage is already Completed", res.Note)
}
