package http

import (
	"net/http"
	"sync"

	"mercurydash/internal/adapters/out/identity"
	"mercurydash/internal/core/domain/model/actor"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const actorContextKey = "mercurydash.actor"

// AuthMiddleware resolves the bearer token into a domain actor and stores
// it on the echo context. Requests without a valid token are rejected
// before any handler runs.
func AuthMiddleware(tokens identity.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			act, err := tokens.Verify(header[len(prefix):])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid session token",
				})
			}

			c.Set(actorContextKey, act)
			return next(c)
		}
	}
}

// actorFrom returns the authenticated actor stored by AuthMiddleware.
func actorFrom(c echo.Context) (actor.Actor, bool) {
	act, ok := c.Get(actorContextKey).(actor.Actor)
	return act, ok
}

// actorLimiter hands out one token bucket per actor. Buckets live for the
// process lifetime; the actor population is bounded by the user base.
type actorLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newActorLimiter(limit rate.Limit, burst int) *actorLimiter {
	return &actorLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *actorLimiter) allow(actorID string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[actorID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[actorID] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// RateLimitMiddleware throttles each actor separately. Applied to the
// transition endpoint, where a popular order draws a burst of claims.
func RateLimitMiddleware(limit rate.Limit, burst int) echo.MiddlewareFunc {
	limiters := newActorLimiter(limit, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			act, ok := actorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			if !limiters.allow(act.ID().String()) {
				return c.JSON(http.StatusTooManyRequests, Error{
					Code:    http.StatusTooManyRequests,
					Message: "Too many requests",
				})
			}

			return next(c)
		}
	}
}
