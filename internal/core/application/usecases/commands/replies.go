package commands

// Replies shared by more than one transition. Wording is part of the
// conversational contract and asserted by tests; change with care.
const (
	// replyNoActiveOrder is the advisory for remove/complete on a session
	// with no open order.
	replyNoActiveOrder = "I'm having trouble finding your order. Sorry! Can you place a new order please?"

	// replyBackendFailure is returned when the order store cannot take the
	// handoff; the in-progress order is kept so the user can retry.
	replyBackendFailure = "Sorry, I couldn't process your order due to a backend error. Please place a new order again."
)
