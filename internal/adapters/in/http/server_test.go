package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mercurydash/internal/core/application/usecases/commands"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid transition", order.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"wrapped invalid transition", fmt.Errorf("%w: Pending to Delivered", order.ErrInvalidTransition), http.StatusUnprocessableEntity},
		{"forbidden", order.ErrForbidden, http.StatusForbidden},
		{"restaurant not owned", commands.ErrRestaurantNotOwned, http.StatusForbidden},
		{"non-customer placing order", commands.ErrOnlyCustomersPlaceOrders, http.StatusForbidden},
		{"already claimed", order.ErrAlreadyClaimed, http.StatusConflict},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"missing value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		{"missing address", commands.ErrDeliveryAddressIsRequired, http.StatusBadRequest},
		{"unexpected failure", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()

			require.NoError(t, writeError(e.NewContext(req, rec), tt.err))

			assert.Equal(t, tt.status, rec.Code)

			var body Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	server := NewServer(Handlers{})

	passthrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	server.RegisterRoutes(e, passthrough, passthrough)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"GET /api/v1/orders",
		"POST /api/v1/orders",
		"POST /api/v1/orders/:id/status",
		"GET /api/v1/restaurants",
		"POST /api/v1/restaurants",
		"GET /api/v1/restaurants/:id/menu",
		"POST /api/v1/restaurants/:id/menu",
		"PUT /api/v1/menu-items/:id",
		"DELETE /api/v1/menu-items/:id",
		"POST /api/v1/users",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
