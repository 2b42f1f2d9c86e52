package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestExtractSessionKey(t *testing.T) {
	t.Run("extracts_id_from_full_resource_path", func(t *testing.T) {
		key := kernel.ExtractSessionKey(
			"projects/mira-chatbot/agent/sessions/b6f2b7b5-76ee-5947-d9fd-c75e314c2b2f/contexts/ongoing-order")

		assert.Equal(t, kernel.SessionKey("b6f2b7b5-76ee-5947-d9fd-c75e314c2b2f"), key)
		assert.False(t, key.IsDefault())
	})

	t.Run("extracts_id_with_truncated_prefix", func(t *testing.T) {
		// Observed payloads sometimes arrive with the leading "p" cut off.
		key := kernel.ExtractSessionKey("rojects/bot/agent/sessions/abc-123/contexts/ongoing-tracking")

		assert.Equal(t, "abc-123", key.String())
	})

	t.Run("non_matching_path_degrades_to_default_key", func(t *testing.T) {
		for _, resource := range []string{
			"",
			"projects/bot/agent/contexts/ongoing-order",
			"projects/bot/agent/sessions//contexts/ongoing-order",
			"sessions/abc-123",
			"garbage",
		} {
			key := kernel.ExtractSessionKey(resource)
			assert.True(t, key.IsDefault(), "resource %q should yield the default key", resource)
		}
	})
}

func TestExtractContextName(t *testing.T) {
	t.Run("returns_short_name_after_contexts_segment", func(t *testing.T) {
		name := kernel.ExtractContextName(
			"projects/bot/agent/sessions/abc-123/contexts/ongoing-order")

		assert.Equal(t, "ongoing-order", name)
	})

	t.Run("returns_empty_for_path_without_context_suffix", func(t *testing.T) {
		assert.Empty(t, kernel.ExtractContextName("projects/bot/agent/sessions/abc-123"))
		assert.Empty(t, kernel.ExtractContextName(""))
	})
}
