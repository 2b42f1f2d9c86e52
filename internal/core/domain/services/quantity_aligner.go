package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"fulfillment/internal/core/domain/model/order"
)

// numberKeyPattern matches the quantity parameter family: the bare "number"
// key plus integer-suffixed variants ("number1", "number2", ...).
var numberKeyPattern = regexp.MustCompile(`^number(\d*)$`)

// AlignmentMismatchError reports that the spoken food items and quantities
// could not be paired because their counts differ. It carries both raw lists
// so the caller can quote them back to the user verbatim; alignment is never
// truncated or padded to force a match.
type AlignmentMismatchError struct {
	Items      []string
	Quantities []float64
}

func (e *AlignmentMismatchError) Error() string {
	return fmt.Sprintf("cannot align %d food items with %d quantities", len(e.Items), len(e.Quantities))
}

// QuantityAligner is a domain service that reconciles the food-item list of
// an utterance with its quantity parameters.
//
// The NLU platform emits repeated quantity slots under suffix-numbered keys
// whose order reflects utterance position. Flattening the key family in
// descending suffix order (bare key counts as suffix 0) recovers the spoken
// order for this platform's observed naming convention. This is a heuristic
// tied to that slot-filling behavior, kept as observed; it is not guaranteed
// for every multi-item utterance shape.
//
// Example usage:
//
//	aligner := services.NewQuantityAligner()
//	lines, err := aligner.Align([]string{"Pizza", "Chai"}, parameters)
//	var mismatch *services.AlignmentMismatchError
//	if errors.As(err, &mismatch) {
//	    // Quote mismatch.Items and mismatch.Quantities back to the user
//	}
type QuantityAligner struct{}

// NewQuantityAligner creates a new QuantityAligner instance.
func NewQuantityAligner() QuantityAligner {
	return QuantityAligner{}
}

// Align pairs foodItems positionally with the quantities flattened from the
// "number" key family in parameters.
//
// Returns:
//   - the ordered lines on success
//   - *AlignmentMismatchError when the counts differ; no pairing is guessed
//   - a validation error when a pair violates the line invariants
//     (empty name, quantity below 1 after integer truncation)
func (QuantityAligner) Align(foodItems []string, parameters map[string]any) ([]order.ItemQuantity, error) {
	quantities := flattenQuantities(parameters)

	if len(foodItems) != len(quantities) {
		return nil, &AlignmentMismatchError{Items: foodItems, Quantities: quantities}
	}

	lines := make([]order.ItemQuantity, 0, len(foodItems))
	for i, name := range foodItems {
		line, err := order.NewItemQuantity(name, int(quantities[i]))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// flattenQuantities selects the "number" key family and flattens the values
// in descending suffix order into a single quantity sequence.
func flattenQuantities(parameters map[string]any) []float64 {
	type numberKey struct {
		key    string
		suffix int
	}

	keys := make([]numberKey, 0, len(parameters))
	for key := range parameters {
		match := numberKeyPattern.FindStringSubmatch(key)
		if match == nil {
			continue
		}

		suffix := 0
		if match[1] != "" {
			suffix, _ = strconv.Atoi(match[1])
		}
		keys = append(keys, numberKey{key: key, suffix: suffix})
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].suffix > keys[j].suffix
	})

	var quantities []float64
	for _, nk := range keys {
		quantities = append(quantities, NumberSlice(parameters[nk.key])...)
	}
	return quantities
}
