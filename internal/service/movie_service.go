// Package service orchestrates catalog mutations: validate the input, call
// the store or the enhancer, translate the outcome into a result the
// presentation layer can act on. Store errors are never leaked to callers;
// they are downgraded to a generic message. Ownership is enforced by the
// store's access rules, not re-checked here.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/movie-catalog/internal/cache"
	"github.com/iliyamo/movie-catalog/internal/enhance"
	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/queue"
	"github.com/iliyamo/movie-catalog/internal/repository"
)

// EventPublisher publishes a catalog event after a successful mutation.
// Publishing is best-effort; the service ignores its error.
type EventPublisher interface {
	Publish(ctx context.Context, event queue.CatalogEvent) error
}

// MovieService bundles the collaborators behind the catalog mutations. All
// dependencies are injected at construction and held for the process
// lifetime; there is no package-level client handle.
type MovieService struct {
	store     repository.MovieStore
	enhancer  enhance.PosterEnhancer
	listings  *cache.Listings
	publisher EventPublisher
	logger    *zap.Logger
}

// NewMovieService constructs a MovieService. enhancer and publisher may be
// nil, which disables poster enhancement and event publishing respectively.
func NewMovieService(store repository.MovieStore, enhancer enhance.PosterEnhancer, listings *cache.Listings, publisher EventPublisher, logger *zap.Logger) *MovieService {
	if store == nil {
		panic("nil store passed to NewMovieService")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovieService{
		store:     store,
		enhancer:  enhancer,
		listings:  listings,
		publisher: publisher,
		logger:    logger,
	}
}

// Add validates the input and creates a new movie owned by the caller. The
// creation timestamp is set server-side. An anonymous caller is rejected
// before the store is touched.
func (s *MovieService) Add(ctx context.Context, owner string, in model.MovieInput) MutationResult {
	if errs := model.ValidateMovieInput(in); errs != nil {
		return invalid(errs)
	}
	if owner == "" {
		return failure("You must be logged in to add a movie.")
	}

	movie := &model.Movie{
		Title:       in.Title,
		Description: in.Description,
		Genre:       in.Genre,
		ReleaseYear: in.ReleaseYear,
		PosterID:    in.PosterID,
		CreatedAt:   time.Now().UTC(),
		OwnerID:     owner,
	}
	id, err := s.store.Create(ctx, movie)
	if err != nil {
		s.logger.Error("add movie failed", zap.Error(err))
		return failure("Failed to add movie. Check permissions.")
	}

	s.invalidateAndPublish(ctx, queue.ActionCreated, id, movie.Title, owner)
	return redirectTo("/movies/" + id)
}

// Update validates the input and merges the mutable fields into an existing
// movie. The update document structurally cannot carry the id, owner or
// creation timestamp. Whether the caller may write the record is decided by
// the store's access rules alone.
func (s *MovieService) Update(ctx context.Context, owner, id string, in model.MovieInput) MutationResult {
	if errs := model.ValidateMovieInput(in); errs != nil {
		return invalid(errs)
	}

	if err := s.store.Update(ctx, id, owner, in.UpdateFields()); err != nil {
		s.logger.Error("update movie failed", zap.String("id", id), zap.Error(err))
		return failure("Failed to update movie. Check permissions.")
	}

	s.invalidateAndPublish(ctx, queue.ActionUpdated, id, in.Title, owner)
	return redirectTo("/movies/" + id)
}

// Delete removes a movie. There is no input to validate; a failure is always
// a persistence failure, whether the record is missing or owned by someone
// else.
func (s *MovieService) Delete(ctx context.Context, owner, id string) MutationResult {
	if err := s.store.Delete(ctx, id, owner); err != nil {
		s.logger.Error("delete movie failed", zap.String("id", id), zap.Error(err))
		return failure("Failed to delete movie. Check permissions.")
	}

	s.invalidateAndPublish(ctx, queue.ActionDeleted, id, "", owner)
	return redirectTo("/")
}

// Enhance generates an AI-enhanced version of a movie's poster. It never
// returns an error to its caller: every failure path is folded into the
// result envelope.
func (s *MovieService) Enhance(ctx context.Context, id string) EnhanceResult {
	if s.enhancer == nil {
		return EnhanceResult{Error: "Poster enhancement is not configured."}
	}
	movie, err := s.store.Get(ctx, id)
	if err != nil {
		return EnhanceResult{Error: "Movie not found."}
	}
	poster, ok := model.LookupPoster(movie.PosterID)
	if !ok {
		return EnhanceResult{Error: "Original poster not found."}
	}

	blob, err := s.enhancer.Enhance(ctx, movie.Description, poster.ImageURL)
	if err != nil {
		s.logger.Warn("poster enhancement failed", zap.String("id", id), zap.Error(err))
		return EnhanceResult{Error: "Failed to enhance poster."}
	}
	return EnhanceResult{Success: true, Data: blob.DataURI()}
}

// invalidateAndPublish drops cached listings and emits a catalog event.
// Both are side effects of an already-successful mutation and must not fail
// the request.
func (s *MovieService) invalidateAndPublish(ctx context.Context, action, id, title, owner string) {
	s.listings.Invalidate(ctx)
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, queue.CatalogEvent{
		Action:     action,
		MovieID:    id,
		Title:      title,
		OwnerID:    owner,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
