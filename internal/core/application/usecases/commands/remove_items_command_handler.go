package commands

import (
	"context"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RemoveItemsCommandHandler removes items from the session's in-progress
// order and reports what happened to each requested name.
type RemoveItemsCommandHandler struct {
	sessions ports.SessionStore
}

// NewRemoveItemsCommandHandler creates a handler for removing items from orders.
func NewRemoveItemsCommandHandler(sessions ports.SessionStore) RemoveItemsCommandHandler {
	return RemoveItemsCommandHandler{sessions: sessions}
}

// Handle processes the remove transition and returns the fulfillment text.
//
// The reply composes up to three independent clauses: the removed items, the
// names that were not in the order, and either an empty-order notice or the
// remaining order listing. A session with no open order gets the fixed
// advisory reply and no mutation.
func (h RemoveItemsCommandHandler) Handle(ctx context.Context, cmd RemoveItemsCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var reply string
	err := h.sessions.Update(ctx, cmd.SessionKey(), func(current *order.InProgressOrder) (*order.InProgressOrder, error) {
		if current == nil {
			reply = replyNoActiveOrder
			return nil, nil
		}

		removed, notFound := current.Remove(cmd.Items())
		reply = composeRemovalReply(removed, notFound, current)
		return current, nil
	})
	if err != nil {
		return "", err
	}

	return reply, nil
}

func composeRemovalReply(removed []string, notFound []string, remaining *order.InProgressOrder) string {
	var clauses []string

	if len(removed) > 0 {
		clauses = append(clauses, fmt.Sprintf("Removed %s from your order!", strings.Join(removed, ", ")))
	}
	if len(notFound) > 0 {
		clauses = append(clauses, fmt.Sprintf("Your current order does not have %s.", strings.Join(notFound, ", ")))
	}

	if remaining.IsEmpty() {
		clauses = append(clauses, "Your order is empty!")
	} else {
		clauses = append(clauses, fmt.Sprintf("Here is what is left in your order: %s.", remaining.Summary()))
	}

	return strings.Join(clauses, " ")
}
