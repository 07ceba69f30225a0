// Package handler contains the HTTP handlers for the movie catalog. Reads
// go through the listing cache and the store; mutations go through the
// movie service, whose result kind decides the response shape.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/cache"
	"github.com/iliyamo/movie-catalog/internal/middleware"
	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/service"
)

// MovieHandler bundles the read and mutation collaborators for the movie
// endpoints.
type MovieHandler struct {
	Store    repository.MovieStore
	Service  *service.MovieService
	Listings *cache.Listings
}

// NewMovieHandler constructs a MovieHandler and panics if a required
// dependency is nil.
func NewMovieHandler(store repository.MovieStore, svc *service.MovieService, listings *cache.Listings) *MovieHandler {
	if store == nil || svc == nil {
		panic("nil dependency passed to NewMovieHandler")
	}
	return &MovieHandler{Store: store, Service: svc, Listings: listings}
}

// ListMovies handles GET /v1/movies. Without a search parameter it returns
// the full catalog newest-first; with ?search= it returns a title-prefix
// match ordered by title. Responses are served from the listing cache when
// possible.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	search := c.QueryParam("search")
	name := "list"
	if search != "" {
		name = "search:" + search
	}

	ctx := c.Request().Context()
	if payload, ok := h.Listings.Get(ctx, name); ok {
		return c.JSONBlob(http.StatusOK, payload)
	}

	var (
		movies []*model.Movie
		err    error
	)
	if search != "" {
		movies, err = h.Store.SearchByTitle(ctx, search)
	} else {
		movies, err = h.Store.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list movies"})
	}

	payload, err := json.Marshal(echo.Map{"items": movies})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list movies"})
	}
	h.Listings.Set(ctx, name, payload)
	return c.JSONBlob(http.StatusOK, payload)
}

// GetMovie handles GET /v1/movies/:id.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	name := "detail:" + id
	if payload, ok := h.Listings.Get(ctx, name); ok {
		return c.JSONBlob(http.StatusOK, payload)
	}

	movie, err := h.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load movie"})
	}

	payload, err := json.Marshal(movie)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load movie"})
	}
	h.Listings.Set(ctx, name, payload)
	return c.JSONBlob(http.StatusOK, payload)
}

// CreateMovie handles POST /v1/movies.
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var in model.MovieInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res := h.Service.Add(c.Request().Context(), middleware.CallerID(c), in)
	return writeMutation(c, res, http.StatusCreated)
}

// UpdateMovie handles PUT /v1/movies/:id.
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	var in model.MovieInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res := h.Service.Update(c.Request().Context(), middleware.CallerID(c), c.Param("id"), in)
	return writeMutation(c, res, http.StatusOK)
}

// DeleteMovie handles DELETE /v1/movies/:id.
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	res := h.Service.Delete(c.Request().Context(), middleware.CallerID(c), c.Param("id"))
	return writeMutation(c, res, http.StatusOK)
}

// EnhancePoster handles POST /v1/movies/:id/enhance. The envelope always
// reports success or a message; enhancement failures are not HTTP errors.
func (h *MovieHandler) EnhancePoster(c echo.Context) error {
	res := h.Service.Enhance(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, res)
}

// writeMutation maps a mutation result onto the HTTP response. A redirect
// kind becomes a Location header plus the result body so API clients can
// follow the navigation the way the web client does.
func writeMutation(c echo.Context, res service.MutationResult, successStatus int) error {
	switch res.Kind {
	case service.KindRedirect:
		c.Response().Header().Set("Location", res.Redirect)
		return c.JSON(successStatus, res)
	case service.KindInvalid:
		return c.JSON(http.StatusUnprocessableEntity, res)
	default:
		return c.JSON(http.StatusForbidden, res)
	}
}
