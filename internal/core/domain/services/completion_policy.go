package services

import (
	"fmt"
	"strings"

	"dentallab/internal/pkg/errs"
)

// CompletionPolicy controls how strictly Completed and Canceled requests are gated.
//
// PolicyLenient: stage Completed/Canceled and order Completed are unconditional.
// PolicyStrict: stage completion waits for its predecessor, terminal stages
// reject every change and an order completes only once no stage is Pending.
type CompletionPolicy int

const (
	PolicyLenient CompletionPolicy = iota
	PolicyStrict
)

func ParseCompletionPolicy(s string) (CompletionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return PolicyLenient, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyLenient, errs.NewValueIsInvalidErrorWithCause("completion policy",
			fmt.Errorf("%q is neither lenient nor strict", s))
	}
}

func (p CompletionPolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "lenient"
}
