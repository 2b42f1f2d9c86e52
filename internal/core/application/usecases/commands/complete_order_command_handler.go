package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CompleteOrderCommandHandler finalizes a session's order: it allocates a
// persisted order id, writes every item row plus the tracking row, fetches
// the computed total, and deletes the session entry.
//
// Every store call is checked; any failure keeps the in-progress order so the
// user can retry, and no partial order is ever confirmed. Rolling back rows
// written before the failure is the store implementation's concern.
type CompleteOrderCommandHandler struct {
	sessions ports.SessionStore
	orders   ports.OrderStore
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(
	sessions ports.SessionStore,
	orders ports.OrderStore,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{sessions: sessions, orders: orders}
}

// Handle processes the complete transition and returns the fulfillment text.
// An absent or empty order gets the advisory reply without any store calls.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var reply string
	err := h.sessions.Update(ctx, cmd.SessionKey(), func(current *order.InProgressOrder) (*order.InProgressOrder, error) {
		if current == nil || current.IsEmpty() {
			reply = replyNoActiveOrder
			return current, nil
		}

		orderID, err := h.orders.NextOrderID(ctx)
		if err != nil {
			reply = replyBackendFailure
			return current, nil
		}

		for _, line := range current.Lines() {
			if err = h.orders.InsertOrderItem(ctx, line.Name(), line.Quantity(), orderID); err != nil {
				reply = replyBackendFailure
				return current, nil
			}
		}

		if err = h.orders.InsertOrderTracking(ctx, orderID, ports.TrackingStatusInProgress); err != nil {
			reply = replyBackendFailure
			return current, nil
		}

		total, err := h.orders.TotalPrice(ctx, orderID)
		if err != nil {
			reply = replyBackendFailure
			return current, nil
		}

		reply = fmt.Sprintf(
			"Awesome. We have placed your order. Here is your order id # %d. "+
				"Your order total is %.2f which you can pay at the time of delivery!",
			orderID, total,
		)
		return nil, nil
	})
	if err != nil {
		return "", err
	}

	return reply, nil
}
