package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// SessionMutator is the read-modify-write step run against one session's
// in-progress order. current is nil when the session has no entry. The
// returned order becomes the session's new entry; returning nil leaves the
// session absent (deleting an existing entry). Returning an error discards
// the mutation and keeps the previous state.
type SessionMutator func(current *order.InProgressOrder) (*order.InProgressOrder, error)

// SessionStore is the session-keyed table of in-progress orders.
//
// Implementations must serialize mutators per session key: two concurrent
// Update calls for the same key never interleave, while different keys may
// proceed in parallel. This is the boundary that fixes the unsynchronized
// shared-table race a naive global map would have.
type SessionStore interface {
	// Update runs fn under the session's exclusive lock and applies its
	// result. Store I/O performed inside fn (order completion) happens within
	// the critical section, so a retry of the same session cannot observe a
	// half-finished handoff.
	Update(ctx context.Context, key kernel.SessionKey, fn SessionMutator) error

	// EvictIdle drops sessions that have not been updated for at least
	// idleFor and returns how many were removed. Entries live until completed,
	// evicted, or process exit; there is no other teardown.
	EvictIdle(ctx context.Context, idleFor time.Duration) int
}
