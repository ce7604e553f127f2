package session

import "errors"

var (
	// ErrNegativeDelta is returned when a tick is driven with dt < 0.
	ErrNegativeDelta = errors.New("session: negative delta time")

	// ErrInvalidPhase is returned when an action is not valid in the current phase.
	// The action has no effect.
	ErrInvalidPhase = errors.New("session: action not valid in current phase")

	// ErrNegativeCount is returned when a counter would be set below zero.
	ErrNegativeCount = errors.New("session: negative count")
)
