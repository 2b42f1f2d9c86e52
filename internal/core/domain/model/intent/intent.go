// Package intent models the closed set of user intents recognized by the
// fulfillment webhook. Display names arriving from the NLU platform are
// free-form strings; parsing them into a tagged enum up front keeps routing
// exact and makes an unrecognized name an explicit case instead of a silent
// dispatch miss.
package intent

// Intent is the classified user goal carried by a webhook request.
//
// Intent is a value object produced only by Parse. The zero value is
// Unrecognized, which routes to the fallback reply.
type Intent int

const (
	// Unrecognized is any display name outside the known set.
	Unrecognized Intent = iota

	// NewOrder starts a fresh order, discarding any in-progress one.
	NewOrder

	// AddToOrder adds items with quantities to the session's order.
	AddToOrder

	// RemoveFromOrder removes named items from the session's order.
	RemoveFromOrder

	// CompleteOrder finalizes the order and hands it to the order store.
	CompleteOrder

	// TrackOrder looks up the tracking status of a placed order.
	TrackOrder
)

// NewOrderContextName is the active-context short name signalling that the
// user is framing a fresh order; AddToOrder replaces instead of merging when
// it is present.
const NewOrderContextName = "new-order"

// getDisplayNames maps the NLU platform's display names to intents. Keys are
// opaque literals matched exactly, never normalized: the agent's draft
// revisions drifted between spellings like "Order.add" and "order.add", and
// case-folding here would hide exactly that class of configuration bug.
func getDisplayNames() map[string]Intent {
	return map[string]Intent{
		"new.order":                              NewOrder,
		"order.add - context: ongoing-order":     AddToOrder,
		"order.remove - context: ongoing-order":  RemoveFromOrder,
		"order.complete - context: ongoing-order": CompleteOrder,
		"track.order - context: ongoing-tracking": TrackOrder,
	}
}

func getIntentStrings() map[Intent]string {
	return map[Intent]string{
		Unrecognized:    "Unrecognized",
		NewOrder:        "NewOrder",
		AddToOrder:      "AddToOrder",
		RemoveFromOrder: "RemoveFromOrder",
		CompleteOrder:   "CompleteOrder",
		TrackOrder:      "TrackOrder",
	}
}

// Parse maps a display name to its Intent. Unknown names, including case
// variants of known ones, yield Unrecognized.
func Parse(displayName string) Intent {
	if in, ok := getDisplayNames()[displayName]; ok {
		return in
	}
	return Unrecognized
}

// String returns the intent's name for logging.
// It implements fmt.Stringer and is safe on any value.
func (i Intent) String() string {
	if s, ok := getIntentStrings()[i]; ok {
		return s
	}
	return "Unrecognized"
}
