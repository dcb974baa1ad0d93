package ports

import (
	"context"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// and for the guarded status update the claim race depends on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateFromStatus persists the aggregate's current state, guarded by
	// the status the caller read it in. The write applies only if the
	// stored row still carries prior and, when prior is Accepted, still
	// has no driver bound. Returns errs.ErrConcurrencyConflict (wrapped)
	// when the guard does not hold, which is how exactly one of several
	// racing drivers wins a claim.
	UpdateFromStatus(ctx context.Context, aggregate *order.Order, prior order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and driver binding.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, sorted by creation time and then by
	// identifier so ties break the same way on every read. Visibility
	// filtering happens above this layer.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves a customer's orders in the same stable sort.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
