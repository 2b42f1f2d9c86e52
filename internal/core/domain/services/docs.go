// Package services contains stateless domain services for the fulfillment
// system. It hosts logic that spans value objects without belonging to any
// single aggregate.
//
// The package includes:
//   - QuantityAligner: reconciles spoken food items with spoken quantities
//   - Parameter normalization helpers for the NLU platform's scalar-or-list
//     parameter values
package services
