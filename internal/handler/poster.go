package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// ListPosters handles GET /v1/posters and returns the static poster
// catalog. The catalog is fixed at build time, so no store access is
// involved.
func ListPosters(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": model.Posters})
}
