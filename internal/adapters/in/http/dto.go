package http

import (
	"mercurydash/internal/core/application/usecases/queries"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/core/domain/model/restaurant"
)

// Error is the uniform error body every endpoint returns on failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	MenuItemID      string `json:"menu_item_id"`
	DeliveryAddress string `json:"delivery_address"`
}

// TransitionRequest is the body of POST /api/v1/orders/:id/status.
type TransitionRequest struct {
	Status string `json:"status"`
}

// RegisterUserRequest is the body of POST /api/v1/users. Identity and role
// come from the session token; the body carries the profile fields.
type RegisterUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateRestaurantRequest is the body of POST /api/v1/restaurants.
type CreateRestaurantRequest struct {
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
	LogoURL string `json:"logo_url,omitempty"`
}

// MenuItemRequest is the body of menu item create and update calls.
type MenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// OrderResponse is one order as returned by order endpoints.
type OrderResponse struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customer_name,omitempty"`
	RestaurantName  string  `json:"restaurant_name,omitempty"`
	DeliveryAddress string  `json:"delivery_address"`
	TotalPriceCents int64   `json:"total_price_cents"`
	DriverID        *string `json:"driver_id,omitempty"`
}

// RestaurantResponse is one restaurant as returned by directory endpoints.
type RestaurantResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
	LogoURL string `json:"logo_url,omitempty"`
}

// MenuItemResponse is one dish as returned by menu endpoints.
type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	var driverID *string
	if d := o.Driver(); d != nil {
		s := d.String()
		driverID = &s
	}

	return OrderResponse{
		ID:              o.ID().String(),
		Status:          o.Status().String(),
		DeliveryAddress: o.DeliveryAddress(),
		TotalPriceCents: o.TotalPrice().Cents(),
		DriverID:        driverID,
	}
}

func orderResponseFromQuery(row queries.GetVisibleOrdersQueryResponse) OrderResponse {
	var driverID *string
	if row.DriverID != nil {
		s := row.DriverID.String()
		driverID = &s
	}

	return OrderResponse{
		ID:              row.ID.String(),
		Status:          row.Status,
		CustomerName:    row.CustomerName,
		RestaurantName:  row.RestaurantName,
		DeliveryAddress: row.DeliveryAddress,
		TotalPriceCents: row.TotalPriceCents,
		DriverID:        driverID,
	}
}

func menuItemResponseFromDomain(item *restaurant.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID().String(),
		Name:        item.Name(),
		Description: item.Description(),
		PriceCents:  item.Price().Cents(),
		PhotoURL:    item.PhotoURL(),
	}
}
