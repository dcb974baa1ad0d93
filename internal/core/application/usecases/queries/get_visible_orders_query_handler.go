package queries

import (
	"context"
	"time"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVisibleOrdersQueryHandler builds per-role order views. Loads the
// order snapshot in creation order, joined with customer and restaurant
// names, and narrows it through the domain VisibilityFilter. Two calls
// over the same snapshot return the same rows in the same positions.
type GetVisibleOrdersQueryHandler struct {
	db     *gorm.DB
	filter services.VisibilityFilter
}

// NewGetVisibleOrdersQueryHandler creates a handler for order view queries.
// Requires a GORM database connection for query execution.
func NewGetVisibleOrdersQueryHandler(db *gorm.DB) GetVisibleOrdersQueryHandler {
	return GetVisibleOrdersQueryHandler{
		db:     db,
		filter: services.NewVisibilityFilter(),
	}
}

type visibleOrderRow struct {
	ord            *order.Order
	customerName   string
	restaurantName string
}

// Handle executes the query and returns the actor's order view.
// Rows are sorted by creation time with the identifier breaking ties, so
// the view is stable across reads.
func (h GetVisibleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVisibleOrdersQuery,
) ([]GetVisibleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	ownedRestaurants, err := h.loadOwnedRestaurants(ctx, query.Actor())
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(snapshot))
	names := make(map[uuid.UUID]visibleOrderRow, len(snapshot))
	for _, row := range snapshot {
		orders = append(orders, row.ord)
		names[row.ord.ID().Bytes()] = row
	}

	visible, err := h.filter.Visible(query.Actor(), ownedRestaurants, orders)
	if err != nil {
		return nil, err
	}

	responses := make([]GetVisibleOrdersQueryResponse, 0, len(visible))
	for _, o := range visible {
		row := names[o.ID().Bytes()]
		responses = append(responses, GetVisibleOrdersQueryResponse{
			ID:              o.ID(),
			Status:          o.Status().String(),
			CustomerName:    row.customerName,
			RestaurantName:  row.restaurantName,
			DeliveryAddress: o.DeliveryAddress(),
			TotalPriceCents: o.TotalPrice().Cents(),
			DriverID:        o.Driver(),
		})
	}

	return responses, nil
}

func (h GetVisibleOrdersQueryHandler) loadSnapshot(ctx context.Context) ([]visibleOrderRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.driver_id,
			o.delivery_address,
			o.total_price_cents,
			o.status,
			o.created_at,
			u.name AS customer_name,
			r.name AS restaurant_name
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		JOIN restaurants r ON r.id = o.restaurant_id
		ORDER BY o.created_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := make([]visibleOrderRow, 0)

	for rows.Next() {
		var (
			id              uuid.UUID
			customerID      uuid.UUID
			restaurantID    uuid.UUID
			driverID        uuid.NullUUID
			deliveryAddress string
			totalPriceCents int64
			status          string
			createdAt       time.Time
			customerName    string
			restaurantName  string
		)

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&driverID,
			&deliveryAddress,
			&totalPriceCents,
			&status,
			&createdAt,
			&customerName,
			&restaurantName,
		)
		if err != nil {
			return nil, err
		}

		ord, err := restoreOrderRow(
			id, customerID, restaurantID, driverID,
			deliveryAddress, totalPriceCents, status, createdAt,
		)
		if err != nil {
			return nil, err
		}

		snapshot = append(snapshot, visibleOrderRow{
			ord:            ord,
			customerName:   customerName,
			restaurantName: restaurantName,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (h GetVisibleOrdersQueryHandler) loadOwnedRestaurants(
	ctx context.Context,
	act actor.Actor,
) ([]kernel.UUID, error) {
	if act.Role() != actor.RestaurantOwner {
		return nil, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id FROM restaurants WHERE owner_id = ?
	`, act.ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owned := make([]kernel.UUID, 0)

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owned = append(owned, restaurantID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return owned, nil
}

func restoreOrderRow(
	id, customerID, restaurantID uuid.UUID,
	driverID uuid.NullUUID,
	deliveryAddress string,
	totalPriceCents int64,
	status string,
	createdAt time.Time,
) (*order.Order, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	customer, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	restaurant, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return nil, err
	}

	var driver *kernel.UUID
	if driverID.Valid {
		d, err := kernel.UUIDFromBytes(driverID.UUID[:])
		if err != nil {
			return nil, err
		}
		driver = &d
	}

	price, err := kernel.NewPriceFromCents(totalPriceCents)
	if err != nil {
		return nil, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderID, customer, restaurant, driver,
		deliveryAddress, price, orderStatus, createdAt,
	)
}
