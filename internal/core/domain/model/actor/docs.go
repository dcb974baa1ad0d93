// Package actor defines the authenticated subject of every authorization
// decision in the system.
//
// The package includes:
//   - Role: a closed enumeration over customer, driver, and restaurant owner
//   - Actor: a verified identity paired with its role
//
// Role is deliberately a closed set. Consumers switch over it exhaustively
// instead of carrying a default branch, so adding a role forces every
// dispatch site to be revisited. An actor's role never changes after the
// identity provider issues it.
package actor
