package services_test

import (
	"testing"
	"time"

	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(t *testing.T, statuses ...stage.Status) *stage.Sequence {
	t.Helper()
	stages := make([]*stage.Stage, 0, len(statuses))
	for i, status := range statuses {
		st, err := stage.RestoreStage(stage.Snapshot{
			ID:            int64(i + 1),
			OrderItemID:   7,
			Index:         i + 1,
			Name:          "stage",
			ExecutionTime: time.Hour,
			Status:        status,
			StartDate:     now,
			Version:       1,
		})
		require.NoError(t, err)
		stages = append(stages, st)
	}
	seq, err := stage.NewSequence(stages)
	require.NoError(t, err)
	return seq
}

func TestStageProgression_ThreeStageScenario(t *testing.T) {
	progression := services.NewStageProgression(services.PolicyLenient)
	seq := sequence(t, stage.StatusPending, stage.StatusPending, stage.StatusPending)
	staff := int64(9)
	later := now.Add(2 * time.Hour)

	steps := []struct {
		stageID int64
		status  stage.Status
		outcome services.Outcome
	}{
		{3, stage.StatusPending, services.OutcomeRejected},
		{1, stage.StatusCompleted, services.OutcomeApplied},
		{2, stage.StatusPending, services.OutcomeApplied},
		{2, stage.StatusCompleted, services.OutcomeApplied},
		{3, stage.StatusPending, services.OutcomeApplied},
	}

	for i, step := range steps {
		before, _ := seq.Find(step.stageID)
		statusBefore := before.Status()

		st, decision, err := progression.Apply(seq, step.stageID, services.StageChange{
			Status:  step.status,
			StaffID: &staff,
		}, later)

		require.NoError(t, err, "step %d", i+1)
		assert.Equal(t, step.outcome, decision.Outcome, "step %d", i+1)
		if step.outcome == services.OutcomeRejected {
			assert.Equal(t, services.NotePreviousNotComplete, decision.Note)
			assert.Equal(t, statusBefore, st.Status())
			assert.Nil(t, st.StaffID())
			continue
		}
		assert.Equal(t, step.status, st.Status(), "step %d", i+1)
		if step.status == stage.StatusCompleted {
			require.NotNil(t, st.EndDate())
			assert.Equal(t, later, *st.EndDate())
			assert.False(t, st.EndDate().Before(st.StartDate()))
		}
	}
}

func TestStageProgression_FirstStageAlwaysPending(t *testing.T) {
	progression := services.NewStageProgression(services.PolicyLenient)
	seq := sequence(t, stage.StatusPending, stage.StatusPending)
	staff := int64(9)

	st, decision, err := progression.Apply(seq, 1, services.StageChange{Status: stage.StatusPending, StaffID: &staff, Note: "mine"}, now)

	require.NoError(t, err)
	assert.Equal(t, services.OutcomeApplied, decision.Outcome)
	assert.Equal(t, services.NoteStageUpdated, decision.Note)
	assert.Equal(t, &staff, st.StaffID())
	assert.Equal(t, "mine", st.Note())
}

func TestStageProgression_Lenient(t *testing.T) {
	progression := services.NewStageProgression(services.PolicyLenient)

	t.Run("completed is unconditional", func(t *testing.T) {
		seq := sequence(t, stage.StatusPending, stage.StatusPending)

		st, decision, err := progression.Apply(seq, 2, services.StageChange{Status: stage.StatusCompleted}, now)

		require.NoError(t, err)
		assert.True(t, decision.Mutated())
		assert.Equal(t, stage.StatusCompleted, st.Status())
	})

	t.Run("canceled replaces operator even on a terminal stage", func(t *testing.T) {
		seq := sequence(t, stage.StatusCompleted)
		staff := int64(4)

		st, decision, err := progression.Apply(seq, 1, services.StageChange{Status: stage.StatusCanceled, StaffID: &staff}, now)

		require.NoError(t, err)
		assert.Equal(t, services.OutcomeApplied, decision.Outcome)
		assert.Equal(t, stage.StatusCanceled, st.Status())
		assert.Equal(t, &staff, st.StaffID())
	})

	t.Run("unknown status changes nothing", func(t *testing.T) {
		seq := sequence(t, stage.StatusPending)

		st, decision, err := progression.Apply(seq, 1, services.StageChange{Status: stage.StatusUnknown}, now)

		require.NoError(t, err)
		assert.Equal(t, services.OutcomeUnchanged, decision.Outcome)
		assert.Equal(t, stage.StatusPending, st.Status())
	})

	t.Run("stage outside the sequence is not found", func(t *testing.T) {
		seq := sequence(t, stage.StatusPending)

		_, _, err := progression.Apply(seq, 42, services.StageChange{Status: stage.StatusPending}, now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStageProgression_Strict(t *testing.T) {
	progression := services.NewStageProgression(services.PolicyStrict)

	t.Run("completion waits for predecessor", func(t *testing.T) {
		seq := sequence(t, stage.StatusPending, stage.StatusPending)

		st, decision, err := progression.Apply(seq, 2, services.StageChange{Status: stage.StatusCompleted}, now)

		require.NoError(t, err)
		assert.Equal(t, services.OutcomeRejected, decision.Outcome)
		assert.Equal(t, stage.StatusPending, st.Status())
		assert.Nil(t, st.EndDate())
	})

	t.Run("terminal stages reject changes", func(t *testing.T) {
		seq := sequence(t, stage.StatusCompleted, stage.StatusPending)

		st, decision, err := progression.Apply(seq, 1, services.StageChange{Status: stage.StatusCanceled}, now)

		require.NoError(t, err)
		assert.Equal(t, services.OutcomeRejected, decision.Outcome)
		assert.Equal(t, "stage is already Completed", decision.Note)
		assert.Equal(t, stage.StatusCompleted, st.Status())
	})

	t.Run("completion after predecessor", func(t *testing.T) {
		seq := sequence(t, stage.StatusCompleted, stage.StatusPending)

		st, decision, err := progression.Apply(seq, 2, services.StageChange{Status: stage.StatusCompleted}, now)

		require.NoError(t, err)
		assert.Equal(t, services.OutcomeApplied, decision.Outcome)
		assert.Equal(t, stage.StatusCompleted, st.Status())
	})
}
