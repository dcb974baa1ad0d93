// Package http exposes the marketplace over REST. Handlers stay thin:
// they bind DTOs, call command and query handlers, and translate domain
// errors into status codes. All authorization decisions live in the core.
package http

import (
	"errors"
	"net/http"

	"mercurydash/internal/core/application/usecases/commands"
	"mercurydash/internal/core/application/usecases/queries"
	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the application layer for the HTTP server.
type Handlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	RequestTransition commands.RequestTransitionCommandHandler
	RegisterUser      commands.RegisterUserCommandHandler
	CreateRestaurant  commands.CreateRestaurantCommandHandler
	AddMenuItem       commands.AddMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	RemoveMenuItem    commands.RemoveMenuItemCommandHandler

	GetVisibleOrders queries.GetVisibleOrdersQueryHandler
	GetRestaurants   queries.GetRestaurantsQueryHandler
	GetMenuItems     queries.GetMenuItemsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given application handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches the API to the echo instance. Everything under
// /api/v1 requires a session token; the transition endpoint additionally
// goes through the per-actor rate limiter.
func (s *Server) RegisterRoutes(e *echo.Echo, auth, transitionLimit echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", auth)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/status", s.RequestTransition, transitionLimit)
	api.GET("/restaurants", s.GetRestaurants)
	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/restaurants/:id/menu", s.GetMenu)
	api.POST("/restaurants/:id/menu", s.AddMenuItem)
	api.PUT("/menu-items/:id", s.UpdateMenuItem)
	api.DELETE("/menu-items/:id", s.RemoveMenuItem)
	api.POST("/users", s.RegisterUser)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - the actor's order view.
func (s *Server) GetOrders(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetVisibleOrdersQuery(act)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.GetVisibleOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(rows))
	for i, row := range rows {
		response[i] = orderResponseFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - a customer places an order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), act, menuItemID, req.DeliveryAddress)
	if err != nil {
		return writeError(ctx, err)
	}

	ord, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(ord))
}

// RequestTransition handles POST /api/v1/orders/:id/status - the single
// write path for the order lifecycle.
func (s *Server) RequestTransition(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status")
	}

	cmd, err := commands.NewRequestTransitionCommand(act, orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	ord, err := s.handlers.RequestTransition.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(ord))
}

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	rows, err := s.handlers.GetRestaurants.Handle(
		ctx.Request().Context(), queries.NewGetRestaurantsQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RestaurantResponse, len(rows))
	for i, row := range rows {
		response[i] = RestaurantResponse{
			ID:      row.ID.String(),
			Name:    row.Name,
			Cuisine: row.Cuisine,
			LogoURL: row.LogoURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CreateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), act, req.Name, req.Cuisine, req.LogoURL,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	r, err := s.handlers.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RestaurantResponse{
		ID:      r.ID().String(),
		Name:    r.Name(),
		Cuisine: r.Cuisine(),
		LogoURL: r.LogoURL(),
	})
}

// GetMenu handles GET /api/v1/restaurants/:id/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	query, err := queries.NewGetMenuItemsQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.GetMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, len(rows))
	for i, row := range rows {
		response[i] = MenuItemResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Description: row.Description,
			PriceCents:  row.PriceCents,
			PhotoURL:    row.PhotoURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/restaurants/:id/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPriceFromCents(req.PriceCents)
	if err != nil {
		return badRequest(ctx, "Invalid price")
	}

	cmd, err := commands.NewAddMenuItemCommand(
		kernel.NewUUID(), act, restaurantID,
		req.Name, req.Description, price, req.PhotoURL,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.handlers.AddMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, menuItemResponseFromDomain(item))
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPriceFromCents(req.PriceCents)
	if err != nil {
		return badRequest(ctx, "Invalid price")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		menuItemID, act, req.Name, req.Description, price, req.PhotoURL,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuItemResponseFromDomain(item))
}

// RemoveMenuItem handles DELETE /api/v1/menu-items/:id.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewRemoveMenuItemCommand(menuItemID, act)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RemoveMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterUser handles POST /api/v1/users - the identity provider syncs a
// provisioned account. Identity and role come from the session token.
func (s *Server) RegisterUser(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(act.ID(), req.Email, req.Name, act.Role())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// writeError translates domain errors into HTTP status codes.
// Visibility never 404s an order the actor is not allowed to touch; the
// transition path answers 403 so lifecycle rules stay observable.
func writeError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, commands.ErrRestaurantNotOwned),
		errors.Is(err, commands.ErrOnlyCustomersPlaceOrders),
		errors.Is(err, commands.ErrOnlyOwnersManageRestaurants):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrAlreadyClaimed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, commands.ErrDeliveryAddressIsRequired),
		errors.Is(err, actor.ErrActorIsNotConstructed):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: msg,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing bearer token",
	})
}
