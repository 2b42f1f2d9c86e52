// Package order provides domain entities and business logic for the in-progress
// order accumulated during one conversation session. It implements the
// InProgressOrder aggregate root with merge, removal, and summary behavior.
//
// The package includes:
//   - InProgressOrder: The aggregate root holding the session's item lines
//   - ItemQuantity: A value object pairing a food item name with its quantity
//
// Key business rules:
//   - Item names are non-empty and distinct within an order
//   - Quantities are integers of at least 1; no maximum is enforced
//   - Merging overwrites an existing item's quantity rather than summing
//   - Items keep their first-added position so replies enumerate deterministically
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
