package stage

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// Sequence holds the stages of one order item in an arena indexed by
// indexStage, so neighbours are found without another query.
//
// slots[i] holds the stage with index i+1, or nil when that index is missing.
type Sequence struct {
	orderItemID int64
	slots       []*Stage
	first       int
}

// NewSequence builds the arena from the stages of a single item in any order.
func NewSequence(stages []*Stage) (*Sequence, error) {
	if len(stages) == 0 {
		return nil, errs.NewValueIsRequiredError("stages")
	}

	maxIndex := 0
	for _, st := range stages {
		if err := st.Validate(); err != nil {
			return nil, err
		}
		if st.Index() < 1 {
			return nil, errs.NewValueIsOutOfRangeError("index stage", st.Index(), 1, "unbounded")
		}
		if st.OrderItemID() != stages[0].OrderItemID() {
			return nil, errs.NewValueIsInvalidErrorWithCause("stages",
				fmt.Errorf("stage %d belongs to item %d, not %d", st.ID(), st.OrderItemID(), stages[0].OrderItemID()))
		}
		maxIndex = max(maxIndex, st.Index())
	}

	seq := &Sequence{
		orderItemID: stages[0].OrderItemID(),
		slots:       make([]*Stage, maxIndex),
		first:       maxIndex,
	}
	for _, st := range stages {
		if seq.slots[st.Index()-1] != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("stages",
				fmt.Errorf("item %d has two stages with index %d", seq.orderItemID, st.Index()))
		}
		seq.slots[st.Index()-1] = st
		seq.first = min(seq.first, st.Index())
	}

	return seq, nil
}

func (q *Sequence) OrderItemID() int64 {
	return q.orderItemID
}

// Find returns the stage with the given id.
func (q *Sequence) Find(stageID int64) (*Stage, bool) {
	for _, st := range q.slots {
		if st != nil && st.ID() == stageID {
			return st, true
		}
	}
	return nil, false
}

// At returns the stage with the given index.
func (q *Sequence) At(index int) (*Stage, bool) {
	if index < 1 || index > len(q.slots) || q.slots[index-1] == nil {
		return nil, false
	}
	return q.slots[index-1], true
}

// IsFirst reports whether st holds the lowest index of the item.
func (q *Sequence) IsFirst(st *Stage) bool {
	return st.Index() == q.first
}

// Predecessor returns the stage with index st.Index()-1.
func (q *Sequence) Predecessor(st *Stage) (*Stage, bool) {
	return q.At(st.Index() - 1)
}

// Stages returns the stages in index order.
func (q *Sequence) Stages() []*Stage {
	out := make([]*Stage, 0, len(q.slots))
	for _, st := range q.slots {
		if st != nil {
			out = append(out, st)
		}
	}
	return out
}

// AllSettled reports whether no stage is still Pending.
func (q *Sequence) AllSettled() bool {
	for _, st := range q.slots {
		if st != nil && !st.Status().IsTerminal() {
			return false
		}
	}
	return true
}
