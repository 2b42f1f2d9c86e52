package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddItemsCommandIsNotConstructed = errors.New(
	"AddItemsCommand must be created via NewAddItemsCommand constructor",
)

// FoodItemParameterKey is the parameter slot carrying the spoken food item
// names.
const FoodItemParameterKey = "food-item"

// AddItemsCommand requests that the items spoken in an utterance be added to
// the session's in-progress order. It carries the full raw parameter bag
// because the quantity slots live under a whole key family ("number",
// "number1", ...) that the aligner selects itself.
//
// Example:
//
//	cmd, err := NewAddItemsCommand(sessionKey, req.Parameters, isNewOrderContext)
//	if err != nil {
//	    return err
//	}
//	reply, err := handler.Handle(ctx, cmd)
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	sessionKey      kernel.SessionKey
	parameters      map[string]any
	replaceExisting bool

	guard guard.ConstructorGuard
}

// NewAddItemsCommand creates a command to add items to a session's order.
// replaceExisting selects replace semantics over merge; it is derived from
// the presence of the new-order context in the request's active-context set.
func NewAddItemsCommand(
	sessionKey kernel.SessionKey,
	parameters map[string]any,
	replaceExisting bool,
) (AddItemsCommand, error) {
	cmd := AddItemsCommand{
		sessionKey:      sessionKey,
		replaceExisting: replaceExisting,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setParameters(parameters); err != nil {
		return AddItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// SessionKey returns the session the order belongs to.
func (c AddItemsCommand) SessionKey() kernel.SessionKey {
	return c.sessionKey
}

// Parameters returns the raw parameter bag of the utterance.
func (c AddItemsCommand) Parameters() map[string]any {
	return c.parameters
}

// ReplaceExisting reports whether the aligned items replace the current
// order instead of merging into it.
func (c AddItemsCommand) ReplaceExisting() bool {
	return c.replaceExisting
}

func (c *AddItemsCommand) setParameters(parameters map[string]any) error {
	if parameters == nil {
		return errs.NewValueIsRequiredError("parameters")
	}

	c.parameters = parameters
	return nil
}
