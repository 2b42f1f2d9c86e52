// Package ports defines the contracts between the application core and its
// adapters: the session-keyed order table and the persistent order store.
package ports

import "context"

// TrackingStatusInProgress is the tracking status written for a freshly
// placed order.
const TrackingStatusInProgress = "in progress"

// OrderStore is the persistence collaborator invoked when an order is
// completed or tracked. The core treats persisted orders as opaque beyond
// these five operations; reliability (retries, transactions) is owned by the
// implementation behind this boundary.
type OrderStore interface {
	// NextOrderID allocates the id for a new persisted order.
	NextOrderID(ctx context.Context) (int, error)

	// InsertOrderItem persists one (item, quantity) row under an order id.
	InsertOrderItem(ctx context.Context, item string, quantity int, orderID int) error

	// InsertOrderTracking persists the tracking row for an order.
	InsertOrderTracking(ctx context.Context, orderID int, status string) error

	// OrderStatus returns the tracking status for an order id, or an
	// errs.ObjectNotFoundError when no such order exists.
	OrderStatus(ctx context.Context, orderID int) (string, error)

	// TotalPrice computes the total price of an order's items.
	TotalPrice(ctx context.Context, orderID int) (float64, error)
}
