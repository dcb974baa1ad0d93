package queries

import (
	"context"

	"mercurydash/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler retrieves the restaurant directory.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for directory queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the query to retrieve all restaurants sorted by name.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]GetRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]GetRestaurantsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cuisine,
			logo_url
		FROM restaurants
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Cuisine,
			&resp.LogoURL,
		)
		if err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = restaurantID
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
