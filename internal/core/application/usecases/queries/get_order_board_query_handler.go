package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderBoardQueryHandler counts orders per lifecycle status.
type GetOrderBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBoardQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetOrderBoardQueryHandler(db *gorm.DB) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{db: db}
}

// Handle executes the query and returns one row per status present in the
// order pool, sorted by status for stable output.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) ([]GetOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetOrderBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS order_count
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderBoardQueryResponse

		if err = rows.Scan(&resp.Status, &resp.Count); err != nil {
			return nil, err
		}
		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
