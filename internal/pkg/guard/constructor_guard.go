// Package guard holds ConstructorGuard, the marker that distinguishes values
// built through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects that
// must only be created through their constructor. The zero value is
// "not constructed"; NewConstructorGuard returns the constructed marker.
//
// Example usage:
//
//	var ErrUpdateStageCommandIsNotConstructed = errors.New("UpdateStageCommand must be created via NewUpdateStageCommand")
//
//	type UpdateStageCommand struct {
//	    stageID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c UpdateStageCommand) Validate() error {
//	    return c.guard.Validate(ErrUpdateStageCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks a value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guarded value was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
