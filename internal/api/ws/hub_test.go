package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHub_Singleton(t *testing.T) {
	assert.Same(t, GetHub(), GetHub())
}

func TestHub_ConnectionTracking(t *testing.T) {
	hub := GetHub()

	assert.False(t, hub.IsConnected("ghost"))

	// Sending to a user with no connection is a no-op, not an error.
	assert.NoError(t, hub.SendToUser("ghost", Message{Type: "totals_update"}))
	assert.NoError(t, hub.SendTotalsUpdate("ghost", map[string]int{"Strength": 10}))
}
