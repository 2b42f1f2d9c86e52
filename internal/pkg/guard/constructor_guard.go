// Package guard implements the constructor-guard pattern for value objects
// and commands: a zero-value struct can be told apart from one built through
// its designated constructor, so Validate calls catch accidental direct
// initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so a failed check always carries a message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its embedding struct was built through a
// constructor. Embed one privately and set it with NewConstructorGuard inside
// the constructor; the zero value fails Validate.
//
// Example:
//
//	type AddItemsCommand struct {
//	    items []string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddItemsCommand(items []string) (AddItemsCommand, error) {
//	    return AddItemsCommand{items: items, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddItemsCommand) Validate() error {
//	    return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
