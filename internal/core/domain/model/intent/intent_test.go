package intent_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/intent"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("known_display_names", func(t *testing.T) {
		cases := map[string]intent.Intent{
			"new.order":                              intent.NewOrder,
			"order.add - context: ongoing-order":     intent.AddToOrder,
			"order.remove - context: ongoing-order":  intent.RemoveFromOrder,
			"order.complete - context: ongoing-order": intent.CompleteOrder,
			"track.order - context: ongoing-tracking": intent.TrackOrder,
		}

		for name, want := range cases {
			assert.Equal(t, want, intent.Parse(name), "display name %q", name)
		}
	})

	t.Run("matching_is_literal_and_case_exact", func(t *testing.T) {
		// Case variants that drifted through the agent's draft revisions must
		// surface as Unrecognized, not silently route.
		for _, name := range []string{
			"Order.add - context: ongoing-order",
			"tracking.order - context: ongoing-tracking",
			"ORDER.REMOVE - context: ongoing-order",
			"order.add",
		} {
			assert.Equal(t, intent.Unrecognized, intent.Parse(name), "display name %q", name)
		}
	})

	t.Run("unknown_names_are_unrecognized", func(t *testing.T) {
		assert.Equal(t, intent.Unrecognized, intent.Parse(""))
		assert.Equal(t, intent.Unrecognized, intent.Parse("smalltalk.greeting"))
	})
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "AddToOrder", intent.AddToOrder.String())
	assert.Equal(t, "Unrecognized", intent.Unrecognized.String())
	assert.Equal(t, "Unrecognized", intent.Intent(99).String())
}
