package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from AttemptState
		to   AttemptState
		want bool
	}{
		{"reviewing to finalizing", StateReviewing, StateFinalizing, true},
		{"reviewing to abandoned", StateReviewing, StateAbandoned, true},
		{"reviewing to confirmed skips finalizing", StateReviewing, StateConfirmed, false},
		{"finalizing to confirmed", StateFinalizing, StateConfirmed, true},
		{"finalizing to abandoned", StateFinalizing, StateAbandoned, true},
		{"finalizing back to reviewing", StateFinalizing, StateReviewing, false},
		{"confirmed is terminal", StateConfirmed, StateAbandoned, false},
		{"abandoned is terminal", StateAbandoned, StateFinalizing, false},
		{"same state is a no-op", StateFinalizing, StateFinalizing, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(StateReviewing))
	assert.False(t, isTerminal(StateFinalizing))
	assert.True(t, isTerminal(StateConfirmed))
	assert.True(t, isTerminal(StateAbandoned))
}

func TestAttemptTransitionRejectsIllegalMove(t *testing.T) {
	a := &Attempt{State: StateReviewing}

	err := a.transition(StateConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateReviewing, a.State, "state must not change on a rejected transition")
}
