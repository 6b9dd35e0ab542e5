package kernel

import "dentallab/internal/pkg/errs"

// ValidateID rejects identifiers below 1. Storage ids start at 1.
func ValidateID(paramName string, id int64) error {
	if id < 1 {
		return errs.NewValueIsOutOfRangeError(paramName, id, 1, "unbounded")
	}
	return nil
}

// ValidateOptionalID is ValidateID for nullable references.
func ValidateOptionalID(paramName string, id *int64) error {
	if id == nil {
		return nil
	}
	return ValidateID(paramName, *id)
}
