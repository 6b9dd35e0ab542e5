package services

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// Outcome tags the result of a requested status change.
type Outcome int

const (
	OutcomeApplied Outcome = iota + 1
	OutcomeUnchanged
	OutcomeRejected
)

var outcomeStrings = map[Outcome]string{
	OutcomeApplied:   "Applied",
	OutcomeUnchanged: "Unchanged",
	OutcomeRejected:  "Rejected",
}

func (o Outcome) String() string {
	if s, ok := outcomeStrings[o]; ok {
		return s
	}
	return "Unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	if _, ok := outcomeStrings[o]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%d is not an outcome", int(o)))
	}
	return []byte(o.String()), nil
}

// Decision is what a progression did with a request and why.
type Decision struct {
	Outcome Outcome
	Note    string
}

func (d Decision) Mutated() bool {
	return d.Outcome == OutcomeApplied
}

func applied(note string) Decision   { return Decision{Outcome: OutcomeApplied, Note: note} }
func unchanged(note string) Decision { return Decision{Outcome: OutcomeUnchanged, Note: note} }
func rejected(note string) Decision  { return Decision{Outcome: OutcomeRejected, Note: note} }
