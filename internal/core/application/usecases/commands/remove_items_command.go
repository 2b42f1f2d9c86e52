package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveItemsCommandIsNotConstructed = errors.New(
	"RemoveItemsCommand must be created via NewRemoveItemsCommand constructor",
)

// RemoveItemsCommand requests removal of named items from the session's
// in-progress order. An empty item list is allowed; the transition then just
// reports the current order.
type RemoveItemsCommand struct {
	sessionKey kernel.SessionKey
	items      []string

	guard guard.ConstructorGuard
}

// NewRemoveItemsCommand creates a command to remove items from a session's order.
func NewRemoveItemsCommand(sessionKey kernel.SessionKey, items []string) RemoveItemsCommand {
	return RemoveItemsCommand{
		sessionKey: sessionKey,
		items:      items,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemsCommandIsNotConstructed)
}

// SessionKey returns the session the order belongs to.
func (c RemoveItemsCommand) SessionKey() kernel.SessionKey {
	return c.sessionKey
}

// Items returns the item names requested for removal, in request order.
func (c RemoveItemsCommand) Items() []string {
	return c.items
}
