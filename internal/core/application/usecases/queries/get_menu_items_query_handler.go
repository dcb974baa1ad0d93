package queries

import (
	"context"

	"mercurydash/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler retrieves a restaurant's menu.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve the restaurant's menu sorted by name.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]GetMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetMenuItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price_cents,
			photo_url
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMenuItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.PriceCents,
			&resp.PhotoURL,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
