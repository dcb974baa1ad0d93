package queries

import (
	"errors"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves the restaurant directory for browsing.
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query for the restaurant directory.
// This is a parameterless query that fetches every restaurant.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// GetRestaurantsQueryResponse is one restaurant as the directory shows it.
type GetRestaurantsQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Cuisine string
	LogoURL string
}
