package queries

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// TrackOrderQueryHandler resolves an order id from the utterance parameters
// and looks up its tracking status in the order store.
type TrackOrderQueryHandler struct {
	orders ports.OrderStore
}

// NewTrackOrderQueryHandler creates a handler for order tracking lookups.
func NewTrackOrderQueryHandler(orders ports.OrderStore) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orders: orders}
}

// Handle executes the tracking lookup and returns the fulfillment text.
//
// Parameter handling:
//   - missing order id: diagnostic reply echoing the raw parameters
//   - list-shaped value: the first element is used
//   - non-integer-like value: a clear malformed-id reply, never a fault
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	raw, ok := query.Parameters()[OrderIDParameterKey]
	if !ok || raw == nil || raw == "" {
		return fmt.Sprintf(
			"I could not find an order ID in your request. Parameters: %v",
			query.Parameters(),
		), nil
	}

	orderID, ok := parseOrderID(raw)
	if !ok {
		return fmt.Sprintf("Sorry, %v doesn't look like a valid order ID. Can you check the number?", raw), nil
	}

	status, err := h.orders.OrderStatus(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Sprintf("No order found with ID %d", orderID), nil
		}
		return "", err
	}

	return fmt.Sprintf("The order status for order ID %d is: %s", orderID, status), nil
}

// parseOrderID coerces the scalar-or-list parameter value into an integer
// order id. A list contributes its first element. Floats must be whole
// numbers; the NLU platform delivers every number as float64.
func parseOrderID(raw any) (int, bool) {
	if list, ok := raw.([]any); ok {
		if len(list) == 0 {
			return 0, false
		}
		raw = list[0]
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
