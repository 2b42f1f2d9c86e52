package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

const replyOrderStarted = "Okay, starting a new order. What would you like to have?"

// StartOrderCommandHandler resets a session's in-progress order to empty.
// Starting is unconditional and idempotent: running it twice leaves the same
// empty order as running it once.
type StartOrderCommandHandler struct {
	sessions ports.SessionStore
}

// NewStartOrderCommandHandler creates a handler for starting orders.
func NewStartOrderCommandHandler(sessions ports.SessionStore) StartOrderCommandHandler {
	return StartOrderCommandHandler{sessions: sessions}
}

// Handle processes the start transition and returns the fulfillment text.
func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	err := h.sessions.Update(ctx, cmd.SessionKey(), func(_ *order.InProgressOrder) (*order.InProgressOrder, error) {
		return order.NewInProgressOrder(), nil
	})
	if err != nil {
		return "", err
	}

	return replyOrderStarted, nil
}
