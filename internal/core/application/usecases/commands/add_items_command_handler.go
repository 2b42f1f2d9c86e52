package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AddItemsCommandHandler aligns spoken items with quantities and folds them
// into the session's in-progress order.
//
// Alignment failure never mutates the session: the handler answers with a
// reply quoting both raw lists so the user can restate the order, instead of
// guessing a pairing.
type AddItemsCommandHandler struct {
	sessions ports.SessionStore
	aligner  services.QuantityAligner
}

// NewAddItemsCommandHandler creates a handler for adding items to orders.
func NewAddItemsCommandHandler(sessions ports.SessionStore, aligner services.QuantityAligner) AddItemsCommandHandler {
	return AddItemsCommandHandler{sessions: sessions, aligner: aligner}
}

// Handle processes the add transition and returns the fulfillment text.
//
// On success the reply enumerates the full current order. When the session
// had no order yet, or the command asks for replace semantics, the aligned
// items become the order; otherwise they merge in with per-item overwrite.
func (h AddItemsCommandHandler) Handle(ctx context.Context, cmd AddItemsCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	foodItems := services.StringSlice(cmd.Parameters()[FoodItemParameterKey])

	lines, err := h.aligner.Align(foodItems, cmd.Parameters())
	if err != nil {
		var mismatch *services.AlignmentMismatchError
		if errors.As(err, &mismatch) {
			return fmt.Sprintf(
				"Sorry, I couldn't match quantities to items. Items: %v, Quantities: %v",
				mismatch.Items, mismatch.Quantities,
			), nil
		}
		if errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired) {
			return "Sorry, I couldn't make out the quantities. Can you specify the items and how many of each?", nil
		}
		return "", err
	}

	var summary string
	err = h.sessions.Update(ctx, cmd.SessionKey(), func(current *order.InProgressOrder) (*order.InProgressOrder, error) {
		if current == nil || cmd.ReplaceExisting() {
			current = order.NewInProgressOrder()
		}

		if mergeErr := current.Merge(lines); mergeErr != nil {
			return nil, mergeErr
		}

		summary = current.Summary()
		return current, nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("So far you have: %s. Do you need anything else?", summary), nil
}
