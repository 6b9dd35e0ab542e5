package services

import (
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/order"
)

const (
	NoteOrderProducing        = "order is producing"
	NoteOrderAlreadyProducing = "order is already producing"
	NoteOrderCompleted        = "order is completed"
	NoteOrderCanceled         = "order is canceled"
	NoteOrderUnchanged        = "order status unchanged"
)

// OrderChange is a requested status change of an order.
type OrderChange struct {
	Status    order.Status
	UpdatedBy int64
	Note      string
}

// OrderProgression runs the order status state machine.
//
//	target     from New     from Producing   from Completed/Canceled
//	Producing  Applied      Unchanged        Rejected
//	Completed  Applied*     Applied*         Rejected
//	Canceled   Applied      Applied          Rejected
//	other      Unchanged    Unchanged        Unchanged
//
// (*) under PolicyStrict only when no stage of the order is Pending.
type OrderProgression struct {
	policy CompletionPolicy
}

func NewOrderProgression(policy CompletionPolicy) OrderProgression {
	return OrderProgression{policy: policy}
}

// CountsPendingStages reports whether Apply needs the pending stage count for target.
func (p OrderProgression) CountsPendingStages(target order.Status) bool {
	return p.policy == PolicyStrict && target == order.StatusCompleted
}

// cancelsCompleted reports whether a Completed order may still be canceled.
// Only the lenient policy allows it.
func (p OrderProgression) cancelsCompleted(current, target order.Status) bool {
	return p.policy == PolicyLenient && current == order.StatusCompleted && target == order.StatusCanceled
}

// Apply mutates o when the transition is allowed. pendingStages is the number
// of Pending stages of the order; it is only consulted for Completed.
func (p OrderProgression) Apply(o *order.Order, change OrderChange, pendingStages int, now time.Time) (Decision, error) {
	if err := o.Validate(); err != nil {
		return Decision{}, err
	}

	current := o.Status()
	if change.Status.Validate() != nil || change.Status == order.StatusNew {
		return unchanged(NoteOrderUnchanged), nil
	}
	if current.IsTerminal() && !p.cancelsCompleted(current, change.Status) {
		return rejected(fmt.Sprintf("order is already %s", current)), nil
	}

	switch change.Status {
	case order.StatusProducing:
		if current == order.StatusProducing {
			return unchanged(NoteOrderAlreadyProducing), nil
		}
		if err := o.StartProducing(change.UpdatedBy, change.Note, now); err != nil {
			return Decision{}, err
		}
		return applied(NoteOrderProducing), nil

	case order.StatusCompleted:
		if p.policy == PolicyStrict && pendingStages > 0 {
			return rejected(fmt.Sprintf("%d stages are still pending", pendingStages)), nil
		}
		if err := o.Complete(change.UpdatedBy, change.Note, now); err != nil {
			return Decision{}, err
		}
		return applied(NoteOrderCompleted), nil

	default:
		if err := o.Cancel(change.UpdatedBy, change.Note, now); err != nil {
			return Decision{}, err
		}
		return applied(NoteOrderCanceled), nil
	}
}
