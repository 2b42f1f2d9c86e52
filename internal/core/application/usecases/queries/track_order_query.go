package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// OrderIDParameterKey is the parameter slot carrying the order id to track.
const OrderIDParameterKey = "order_id"

// TrackOrderQuery asks for the tracking status of a placed order. It carries
// the raw parameter bag because the order id may arrive as a scalar, a list,
// or not at all, and each shape produces a different reply.
//
// Example:
//
//	query, err := NewTrackOrderQuery(req.Parameters)
//	if err != nil {
//	    return err
//	}
//	reply, err := handler.Handle(ctx, query)
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	parameters map[string]any

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to look up an order's tracking status.
func NewTrackOrderQuery(parameters map[string]any) (TrackOrderQuery, error) {
	query := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setParameters(parameters); err != nil {
		return TrackOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Parameters returns the raw parameter bag of the utterance.
func (q TrackOrderQuery) Parameters() map[string]any {
	return q.parameters
}

func (q *TrackOrderQuery) setParameters(parameters map[string]any) error {
	if parameters == nil {
		return errs.NewValueIsRequiredError("parameters")
	}

	q.parameters = parameters
	return nil
}
