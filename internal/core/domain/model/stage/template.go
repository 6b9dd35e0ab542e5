package stage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

// Template defines one stage of a product category's production sequence.
type Template struct {
	CategoryID    int64
	Index         int
	Name          string
	Description   string
	ExecutionTime time.Duration
}

func (t Template) Validate() error {
	var nameErr, durationErr error
	if strings.TrimSpace(t.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("stage name")
	}
	if t.ExecutionTime < 0 {
		durationErr = errs.NewValueIsOutOfRangeError("execution time", t.ExecutionTime, 0, "unbounded")
	}

	return errors.Join(
		kernel.ValidateID("category id", t.CategoryID),
		nameErr,
		durationErr,
	)
}

// ValidateTemplates checks that templates are numbered 1..K in order.
func ValidateTemplates(templates []Template) error {
	for i, t := range templates {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("template %d: %w", i+1, err)
		}
		if t.Index != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("stage templates",
				fmt.Errorf("category %d: expected index %d, got %d", t.CategoryID, i+1, t.Index))
		}
	}
	return nil
}
