package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusCancelled.Terminal())

	assert.False(t, StatusQueued.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.False(t, StatusCancelRequested.Terminal())
}

func TestTerminalStatesAreFrozen(t *testing.T) {
	for _, terminal := range []Status{StatusSuccess, StatusFailed, StatusCancelled} {
		for _, next := range []Status{StatusQueued, StatusRunning, StatusCancelRequested, StatusSuccess, StatusFailed, StatusCancelled} {
			assert.False(t, terminal.CanTransition(next), "%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestCancelRequestedOnlyResolvesTerminal(t *testing.T) {
	assert.False(t, StatusCancelRequested.CanTransition(StatusRunning))
	assert.True(t, StatusCancelRequested.CanTransition(StatusCancelled))
	assert.True(t, StatusCancelRequested.CanTransition(StatusSuccess))
	assert.True(t, StatusCancelRequested.CanTransition(StatusFailed))
	assert.True(t, StatusCancelRequested.CanTransition(StatusCancelRequested))
}

func TestRunningTransitions(t *testing.T) {
	assert.True(t, StatusRunning.CanTransition(StatusSuccess))
	assert.True(t, StatusRunning.CanTransition(StatusCancelRequested))
	assert.True(t, StatusQueued.CanTransition(StatusRunning))
}
