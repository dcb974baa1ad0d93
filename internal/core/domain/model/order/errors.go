package order

import "errors"

// Transition outcome errors. All are terminal, reported to the caller
// synchronously; the core never retries them.
var (
	// ErrInvalidTransition reports a structural failure: the requested
	// source/target pair is not an edge of the lifecycle state machine.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrForbidden reports an authorization failure: the edge exists but
	// the acting identity is not the one allowed to traverse it.
	ErrForbidden = errors.New("actor is not authorized for this transition")

	// ErrAlreadyClaimed reports a concurrency failure: the pick-up edge is
	// valid, but a competing driver has already bound itself to the order.
	ErrAlreadyClaimed = errors.New("order is already claimed by another driver")
)
