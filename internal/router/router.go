package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes and the protected
// /v1/me endpoint.  Unauthenticated operations live under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("OWNER", "CUSTOMER"))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints.  These
// return sanitized catalog data plus a point-in-time seat availability
// snapshot, so guests can explore shows before signing up.  The cache
// middleware is applied to the catalog listings only; seat availability
// is always served live because it reflects the lock table.
func RegisterPublic(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	g.GET("/movies", h.GetMovies)
	g.GET("/movies/:id/shows", h.GetShowsByMovie)
	g.GET("/theatres", h.GetTheatres)
	g.GET("/theatres/:id/screens", h.GetScreensByTheatre)
	g.GET("/shows/:id", h.GetShow)

	e.GET("/v1/shows/:id/seats", h.GetAvailableSeats)
}
