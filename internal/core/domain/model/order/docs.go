// Package order provides the order aggregate and its lifecycle state
// machine, the one piece of real state-machine logic in the system.
//
// The package includes:
//   - Order: the aggregate root holding the participants, price, and status
//   - Status: the canonical definition of statuses and legal transitions
//
// Key business rules:
//   - Status follows Pending -> Accepted -> Out for Delivery -> Delivered
//   - Each edge carries exactly one authorized role
//   - The driver binding happens at the pick-up edge and never changes
//   - Total price is fixed at creation; transitions never touch it
//   - Orders are never deleted
//
// There is no cancelled or rejected status. The observed behavior defines
// none, so the lifecycle deliberately stays a single forward path.
package order
