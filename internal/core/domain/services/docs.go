// Package services contains the domain services at the heart of the
// marketplace: the TransitionAuthority deciding who may move an order
// along its lifecycle, and the VisibilityFilter computing which orders an
// actor is authorized to observe.
//
// Both services are pure: they take every fact they need as input, perform
// no I/O, and are deterministic for a given input. Persistence of their
// outcomes, including the atomic claim write, belongs to the application
// layer and the record-store adapter.
package services
