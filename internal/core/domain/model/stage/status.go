package stage

import (
	"fmt"

	"dentallab/internal/pkg/errs"
)

// Status of one production stage. Completed and Canceled are terminal.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusCompleted
	StatusCanceled
)

var statusStrings = map[Status]string{
	StatusUnknown:   "Unknown",
	StatusPending:   "Pending",
	StatusCompleted: "Completed",
	StatusCanceled:  "Canceled",
}

var statusesByString = map[string]Status{
	"Pending":   StatusPending,
	"Completed": StatusCompleted,
	"Canceled":  StatusCanceled,
}

func ParseStatus(s string) (Status, error) {
	if status, ok := statusesByString[s]; ok {
		return status, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("stage status is invalid", fmt.Errorf("%q is not a stage status", s))
}

func (s Status) Validate() error {
	if s < StatusPending || s > StatusCanceled {
		return errs.NewValueIsInvalidErrorWithCause("stage status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
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
