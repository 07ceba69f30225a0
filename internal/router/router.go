// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/handler"
	"github.com/iliyamo/movie-catalog/internal/middleware"
)

// RegisterRoutes registers all application routes on the provided Echo
// instance. Browse and search endpoints are public; mutations and poster
// enhancement live under a group protected by the bearer-token middleware,
// so every mutation carries an explicit caller identity.
func RegisterRoutes(e *echo.Echo, h *handler.MovieHandler, jwtSecret string) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Public browsing.
	e.GET("/v1/movies", h.ListMovies)
	e.GET("/v1/movies/:id", h.GetMovie)
	e.GET("/v1/posters", handler.ListPosters)

	// Authenticated mutations.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.POST("/movies", h.CreateMovie)
	auth.PUT("/movies/:id", h.UpdateMovie)
	auth.DELETE("/movies/:id", h.DeleteMovie)
	auth.POST("/movies/:id/enhance", h.EnhancePoster)
}
