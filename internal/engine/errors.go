// Package engine implements the financial math behind every projection:
// burn and runway, revenue growth curves, customer flow simulation,
// multi-scenario cash projection and blended segment metrics.
//
// All functions are pure. Inputs are validated at the public entry
// points and the internal loops assume validated values.
package engine

import "errors"

var (
	// ErrInvalidInput marks a financial argument that is NaN, infinite,
	// or negative where a negative value has no meaning.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSegment marks an impossible segment state, such as more
	// new customers this month than total customers.
	ErrInvalidSegment = errors.New("invalid segment state")

	// ErrInvalidModel marks an unknown growth model name.
	ErrInvalidModel = errors.New("invalid growth model")
)
