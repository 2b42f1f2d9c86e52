package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = kernel.SessionKey("session-1")

func TestStartOrderCommandHandler_Handle(t *testing.T) {
	t.Run("creates_empty_order_for_new_session", func(t *testing.T) {
		sessions := newFakeSessionStore()
		h := commands.NewStartOrderCommandHandler(sessions)

		reply, err := h.Handle(t.Context(), commands.NewStartOrderCommand(testSession))

		require.NoError(t, err)
		assert.Equal(t, "Okay, starting a new order. What would you like to have?", reply)
		require.Contains(t, sessions.orders, testSession)
		assert.True(t, sessions.orders[testSession].IsEmpty())
	})

	t.Run("discards_previous_order_contents", func(t *testing.T) {
		sessions := newFakeSessionStore()
		addHandler := newAddHandler(sessions)
		_, err := addHandler.Handle(t.Context(), mustAddCommand(t, map[string]any{
			"food-item": []any{"Pizza"},
			"number":    []any{2.0},
		}, false))
		require.NoError(t, err)

		h := commands.NewStartOrderCommandHandler(sessions)
		_, err = h.Handle(t.Context(), commands.NewStartOrderCommand(testSession))

		require.NoError(t, err)
		assert.True(t, sessions.orders[testSession].IsEmpty())
	})

	t.Run("starting_twice_is_idempotent", func(t *testing.T) {
		sessions := newFakeSessionStore()
		h := commands.NewStartOrderCommandHandler(sessions)

		first, err := h.Handle(t.Context(), commands.NewStartOrderCommand(testSession))
		require.NoError(t, err)
		second, err := h.Handle(t.Context(), commands.NewStartOrderCommand(testSession))
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.True(t, sessions.orders[testSession].IsEmpty())
	})

	t.Run("unconstructed_command_is_rejected", func(t *testing.T) {
		h := commands.NewStartOrderCommandHandler(newFakeSessionStore())

		_, err := h.Handle(t.Context(), commands.StartOrderCommand{})

		require.ErrorIs(t, err, commands.ErrStartOrderCommandIsNotConstructed)
	})
}
