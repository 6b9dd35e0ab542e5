package services

import (
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/pkg/errs"
)

const (
	NoteStageUpdated        = "stage status updated"
	NoteStageUnchanged      = "stage status unchanged"
	NotePreviousNotComplete = "previous stage is not completed"
)

// StageChange is a requested status change of one stage.
type StageChange struct {
	Status  stage.Status
	StaffID *int64
	Note    string
}

// StageProgression applies stage status changes behind the sequential gate:
// a stage other than the first may be taken (Pending) only once its
// predecessor is Completed.
type StageProgression struct {
	policy CompletionPolicy
}

func NewStageProgression(policy CompletionPolicy) StageProgression {
	return StageProgression{policy: policy}
}

// Apply looks the stage up in seq and mutates it when the gate allows.
// The returned stage is the one addressed, whether or not it changed.
func (p StageProgression) Apply(seq *stage.Sequence, stageID int64, change StageChange, now time.Time) (*stage.Stage, Decision, error) {
	st, ok := seq.Find(stageID)
	if !ok {
		return nil, Decision{}, errs.NewObjectNotFoundError("order item stage", stageID)
	}

	if p.policy == PolicyStrict && st.Status().IsTerminal() && change.Status.Validate() == nil {
		return st, rejected(fmt.Sprintf("stage is already %s", st.Status())), nil
	}

	switch change.Status {
	case stage.StatusPending:
		if !p.predecessorDone(seq, st) {
			return st, rejected(NotePreviousNotComplete), nil
		}
		if err := st.MarkPending(change.StaffID, change.Note); err != nil {
			return nil, Decision{}, err
		}
		return st, applied(NoteStageUpdated), nil

	case stage.StatusCompleted:
		if p.policy == PolicyStrict && !p.predecessorDone(seq, st) {
			return st, rejected(NotePreviousNotComplete), nil
		}
		st.MarkCompleted(change.Note, now)
		return st, applied(NoteStageUpdated), nil

	case stage.StatusCanceled:
		if err := st.MarkCanceled(change.StaffID, change.Note); err != nil {
			return nil, Decision{}, err
		}
		return st, applied(NoteStageUpdated), nil

	default:
		return st, unchanged(NoteStageUnchanged), nil
	}
}

func (p StageProgression) predecessorDone(seq *stage.Sequence, st *stage.Stage) bool {
	if seq.IsFirst(st) {
		return true
	}
	prev, ok := seq.Predecessor(st)
	return ok && prev.Status() == stage.StatusCompleted
}
