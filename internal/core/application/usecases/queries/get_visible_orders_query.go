// Package queries contains read operations over the record store.
// Implements the Query side of the CQRS architecture: handlers read
// directly through SQL and return purpose-built read models.
package queries

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var ErrGetVisibleOrdersQueryIsNotConstructed = errors.New(
	"GetVisibleOrdersQuery must be created via NewGetVisibleOrdersQuery constructor",
)

// GetVisibleOrdersQuery retrieves the orders one actor is authorized to
// observe. Each role gets its own projection of the shared order pool:
// customers their own orders, owners their restaurants' orders, drivers
// the open work plus their active runs.
//
// Example:
//
//	query, err := NewGetVisibleOrdersQuery(driver)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetVisibleOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetVisibleOrdersQuery struct {
	act actor.Actor

	guard guard.ConstructorGuard
}

// NewGetVisibleOrdersQuery creates a query for an actor's order view.
func NewGetVisibleOrdersQuery(act actor.Actor) (GetVisibleOrdersQuery, error) {
	if err := act.Validate(); err != nil {
		return GetVisibleOrdersQuery{}, err
	}

	return GetVisibleOrdersQuery{
		act:   act,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVisibleOrdersQueryIsNotConstructed if validation fails.
func (q GetVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleOrdersQueryIsNotConstructed)
}

// Actor returns the observing actor.
func (q GetVisibleOrdersQuery) Actor() actor.Actor {
	return q.act
}

// GetVisibleOrdersQueryResponse is one order as the dashboard shows it,
// joined with the customer and restaurant display names.
type GetVisibleOrdersQueryResponse struct {
	ID              kernel.UUID
	Status          string
	CustomerName    string
	RestaurantName  string
	DeliveryAddress string
	TotalPriceCents int64
	DriverID        *kernel.UUID
}
