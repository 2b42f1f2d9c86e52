// Package queries contains read-only operations in the CQRS split. Tracking
// an order never touches session state; it resolves the order id from the
// raw parameters and reads the tracking status from the order store.
package queries
