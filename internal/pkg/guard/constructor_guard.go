// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object makes zero-value instances
// detectable, so every aggregate and command can enforce creation through its
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The internal flag can only become true through NewConstructorGuard, which
// constructors call as their final step.
//
// Example usage:
//
//	type Actor struct {
//	    id    kernel.UUID
//	    role  Role
//	    guard guard.ConstructorGuard
//	}
//
//	func (a Actor) Validate() error {
//	    return a.guard.Validate(ErrActorIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
