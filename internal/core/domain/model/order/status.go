package order

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	New ──> Producing ──> Completed
//	 │          │
//	 │          └───────> Canceled
//	 ├──────────────────> Completed
//	 └──────────────────> Canceled
//
// Completed and Canceled are terminal. Producing may be requested again while
// already Producing; that request changes nothing.
//
// Status is stored as its display string; the mapping tables below are the
// only place the strings appear.
type Status int

const (
	// StatusUnknown is the zero value and never a valid stored status.
	StatusUnknown Status = iota
	StatusNew
	StatusProducing
	StatusCompleted
	StatusCanceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusNew:       "New",
		StatusProducing: "Producing",
		StatusCompleted: "Completed",
		StatusCanceled:  "Canceled",
	}
}

func getStatusesByString() map[string]Status {
	return map[string]Status{
		"New":       StatusNew,
		"Producing": StatusProducing,
		"Completed": StatusCompleted,
		"Canceled":  StatusCanceled,
	}
}

// ParseStatus maps a display string to its Status.
func ParseStatus(s string) (Status, error) {
	if status, ok := getStatusesByString()[s]; ok {
		return status, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not an order status", s))
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	if s < StatusNew || s > StatusCanceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the order has left production. Only a Completed
// order can still move, and only to Canceled.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// StartProducing transitions New to Producing.
func (s Status) StartProducing() (Status, error) {
	if s != StatusNew {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start producing", s),
		)
	}
	return StatusProducing, nil
}

// Complete transitions New or Producing to Completed.
func (s Status) Complete() (Status, error) {
	if s != StatusNew && s != StatusProducing {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return StatusCompleted, nil
}

// Cancel transitions any other lifecycle state to Canceled. Whether a
// Completed order may still be canceled is decided by the caller's policy.
func (s Status) Cancel() (Status, error) {
	if s != StatusNew && s != StatusProducing && s != StatusCompleted {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return StatusCanceled, nil
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
