package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
)

// RegisterOwner registers catalog management endpoints under /v1.
// All routes require a valid JWT and the OWNER role.
func RegisterOwner(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)
	g.POST("/movies", h.CreateMovie)
	g.POST("/theatres", h.CreateTheatre)
	g.POST("/theatres/:id/screens", h.CreateScreen)
	g.POST("/screens/:id/seats", h.CreateSeats)
	g.POST("/shows", h.CreateShow)
}
