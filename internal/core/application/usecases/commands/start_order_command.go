package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand requests a fresh in-progress order for a session,
// discarding whatever the session had accumulated before.
//
// Example:
//
//	cmd := NewStartOrderCommand(sessionKey)
//	reply, err := handler.Handle(ctx, cmd)
type StartOrderCommand struct {
	sessionKey kernel.SessionKey

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to begin a new order. The default
// (empty) session key is allowed: requests with unparseable context paths all
// share the unkeyed session.
func NewStartOrderCommand(sessionKey kernel.SessionKey) StartOrderCommand {
	return StartOrderCommand{
		sessionKey: sessionKey,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// SessionKey returns the session the order belongs to.
func (c StartOrderCommand) SessionKey() kernel.SessionKey {
	return c.sessionKey
}
