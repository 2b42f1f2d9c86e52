package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand requests that the session's in-progress order be
// handed off to the order store and the session entry cleared.
type CompleteOrderCommand struct {
	sessionKey kernel.SessionKey

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to finalize a session's order.
func NewCompleteOrderCommand(sessionKey kernel.SessionKey) CompleteOrderCommand {
	return CompleteOrderCommand{
		sessionKey: sessionKey,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// SessionKey returns the session the order belongs to.
func (c CompleteOrderCommand) SessionKey() kernel.SessionKey {
	return c.sessionKey
}
