// Package commands contains the order state-machine transitions that modify
// session state. Each transition is a Command pattern pair: a guarded command
// object validated at construction, and a handler that applies it and returns
// the fulfillment text relayed to the user.
//
// Recoverable conditions (quantity mismatch, absent session, backend
// allocation failure) are replies, not errors: every handler produces a
// fulfillment text under all input conditions, and the error return is
// reserved for infrastructure faults.
package commands
