package queries

import (
	"errors"

	"mercurydash/internal/pkg/guard"
)

var ErrGetOrderBoardQueryIsNotConstructed = errors.New(
	"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
)

// GetOrderBoardQuery retrieves per-status order counts. Feeds the periodic
// order board report.
type GetOrderBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery creates a query for the order board counts.
func NewGetOrderBoardQuery() GetOrderBoardQuery {
	return GetOrderBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// GetOrderBoardQueryResponse is the count of orders in one status.
type GetOrderBoardQueryResponse struct {
	Status string
	Count  int64
}
