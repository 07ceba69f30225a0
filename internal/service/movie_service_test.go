package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-catalog/internal/enhance"
	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/queue"
	"github.com/iliyamo/movie-catalog/internal/repository"
)

// fakeStore is an in-memory MovieStore. Writes are scoped by owner exactly
// like the real store's query filter, so tests can simulate both allowed
// and denied outcomes by choosing the caller identity.
type fakeStore struct {
	movies      map[string]*model.Movie
	createCalls int
	lastUpdate  map[string]any
	rejectAll   bool
	nextID      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{movies: map[string]*model.Movie{}}
}

func (f *fakeStore) Create(ctx context.Context, m *model.Movie) (string, error) {
	f.createCalls++
	if f.rejectAll {
		return "", fmt.Errorf("%w: simulated denial", repository.ErrPersistence)
	}
	if m.ID == "" {
		f.nextID++
		m.ID = fmt.Sprintf("movie-%d", f.nextID)
	}
	cp := *m
	f.movies[m.ID] = &cp
	return m.ID, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*model.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStore) List(ctx context.Context) ([]*model.Movie, error) {
	out := []*model.Movie{}
	for _, m := range f.movies {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStore) SearchByTitle(ctx context.Context, prefix string) ([]*model.Movie, error) {
	return f.List(ctx)
}

func (f *fakeStore) Update(ctx context.Context, id, owner string, fields map[string]any) error {
	f.lastUpdate = fields
	m, ok := f.movies[id]
	if !ok || m.OwnerID != owner || f.rejectAll {
		return fmt.Errorf("%w: no matching document", repository.ErrPersistence)
	}
	if v, ok := fields["title"].(string); ok {
		m.Title = v
	}
	if v, ok := fields["description"].(string); ok {
		m.Description = v
	}
	if v, ok := fields["genre"].(string); ok {
		m.Genre = v
	}
	if v, ok := fields["releaseYear"].(int); ok {
		m.ReleaseYear = v
	}
	if v, ok := fields["posterId"].(string); ok {
		m.PosterID = v
	}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id, owner string) error {
	m, ok := f.movies[id]
	if !ok || m.OwnerID != owner || f.rejectAll {
		return fmt.Errorf("%w: no matching document", repository.ErrPersistence)
	}
	delete(f.movies, id)
	return nil
}

// fakeEnhancer returns a canned blob or error.
type fakeEnhancer struct {
	blob enhance.Blob
	err  error
}

func (f *fakeEnhancer) Enhance(ctx context.Context, description, imageURL string) (enhance.Blob, error) {
	return f.blob, f.err
}

// fakePublisher records published events.
type fakePublisher struct {
	events []queue.CatalogEvent
}

func (f *fakePublisher) Publish(ctx context.Context, ev queue.CatalogEvent) error {
	f.events = append(f.events, ev)
	return nil
}

func newService(store *fakeStore, enh enhance.PosterEnhancer, pub EventPublisher) *MovieService {
	return NewMovieService(store, enh, nil, pub, nil)
}

func validInput() model.MovieInput {
	return model.MovieInput{
		Title:       "Nova",
		Description: "d",
		Genre:       "Drama",
		ReleaseYear: 2023,
		PosterID:    "poster-1",
	}
}

func TestAddInvalidInputNeverHitsStore(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, nil, nil)

	res := svc.Add(context.Background(), "u1", model.MovieInput{})
	assert.Equal(t, KindInvalid, res.Kind)
	assert.NotEmpty(t, res.FieldErrors)
	assert.Zero(t, store.createCalls)
}

func TestAddRequiresIdentity(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, nil, nil)

	res := svc.Add(context.Background(), "", validInput())
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, "You must be logged in to add a movie.", res.Message)
	assert.Zero(t, store.createCalls)
}

func TestAddThenGetScenario(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := newService(store, nil, pub)

	res := svc.Add(context.Background(), "u1", validInput())
	require.Equal(t, KindRedirect, res.Kind)
	require.Contains(t, res.Redirect, "/movies/")

	id := res.Redirect[len("/movies/"):]
	got, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Nova", got.Title)
	assert.Equal(t, "u1", got.OwnerID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute)

	require.Len(t, pub.events, 1)
	assert.Equal(t, queue.ActionCreated, pub.events[0].Action)
	assert.Equal(t, id, pub.events[0].MovieID)
}

func TestAddStoreFailureIsGeneric(t *testing.T) {
	store := newFakeStore()
	store.rejectAll = true
	svc := newService(store, nil, nil)

	res := svc.Add(context.Background(), "u1", validInput())
	assert.Equal(t, KindError, res.Kind)
	assert.Equal(t, "Failed to add movie. Check permissions.", res.Message)
	assert.NotContains(t, res.Message, "simulated") // internal detail never leaks
}

func TestUpdatePayloadNeverCarriesProtectedFields(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, nil, nil)

	add := svc.Add(context.Background(), "u1", validInput())
	require.Equal(t, KindRedirect, add.Kind)
	id := add.Redirect[len("/movies/"):]

	in := validInput()
	in.Title = "Nova II"
	res := svc.Update(context.Background(), "u1", id, in)
	require.Equal(t, KindRedirect, res.Kind)

	require.NotNil(t, store.lastUpdate)
	assert.NotContains(t, store.lastUpdate, "_id")
	assert.NotContains(t, store.lastUpdate, "ownerId")
	assert.NotContains(t, store.lastUpdate, "createdAt")
	assert.Equal(t, "Nova II", store.lastUpdate["title"])
}

func TestUpdateCannotChangeOwnership(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, nil, nil)

	add := svc.Add(context.Background(), "u1", validInput())
	require.Equal(t, KindRedirect, add.Kind)
	id := add.Redirect[len("/movies/"):]

	in := validInput()
	in.Title = "Nova II"
	res := svc.Update(context.Background(), "attacker", id, in)
	assert.Equal(t, KindError, res.Kind)

	got, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, "Nova", got.Title)
}

func TestDeleteFailureCategoriesCollapse(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, nil, nil)

	add := svc.Add(context.Background(), "u1", validInput())
	require.Equal(t, KindRedirect, add.Kind)
	id := add.Redirect[len("/movies/"):]

	// Missing record and denied record produce the same persistence
	// category at the store and the same message at the service.
	missingErr := store.Delete(context.Background(), "no-such-id", "u1")
	deniedErr := store.Delete(context.Background(), id, "attacker")
	assert.True(t, errors.Is(missingErr, repository.ErrPersistence))
	assert.True(t, errors.Is(deniedErr, repository.ErrPersistence))

	resMissing := svc.Delete(context.Background(), "u1", "no-such-id")
	resDenied := svc.Delete(context.Background(), "attacker", id)
	assert.Equal(t, KindError, resMissing.Kind)
	assert.Equal(t, resMissing.Message, resDenied.Message)

	// The record survives the denied delete.
	_, err := store.Get(context.Background(), id)
	assert.NoError(t, err)
}

func TestDeleteRedirectsToListing(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := newService(store, nil, pub)

	add := svc.Add(context.Background(), "u1", validInput())
	id := add.Redirect[len("/movies/"):]

	res := svc.Delete(context.Background(), "u1", id)
	require.Equal(t, KindRedirect, res.Kind)
	assert.Equal(t, "/", res.Redirect)

	_, err := store.Get(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	require.Len(t, pub.events, 2)
	assert.Equal(t, queue.ActionDeleted, pub.events[1].Action)
}

func TestEnhanceSuccess(t *testing.T) {
	store := newFakeStore()
	enh := &fakeEnhancer{blob: enhance.Blob{MIMEType: "image/png", Data: []byte{1, 2, 3}}}
	svc := newService(store, enh, nil)

	add := svc.Add(context.Background(), "u1", validInput())
	id := add.Redirect[len("/movies/"):]

	res := svc.Enhance(context.Background(), id)
	assert.True(t, res.Success)
	assert.Contains(t, res.Data, "data:image/png;base64,")
	assert.Empty(t, res.Error)
}

func TestEnhanceNeverThrows(t *testing.T) {
	store := newFakeStore()
	enh := &fakeEnhancer{err: fmt.Errorf("%w: unexpected status 404 Not Found", enhance.ErrFetch)}
	svc := newService(store, enh, nil)

	add := svc.Add(context.Background(), "u1", validInput())
	id := add.Redirect[len("/movies/"):]

	// Fetch failure folds into the envelope.
	res := svc.Enhance(context.Background(), id)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)

	// Generation failure does too.
	enh.err = fmt.Errorf("%w: no image returned", enhance.ErrGeneration)
	res = svc.Enhance(context.Background(), id)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)

	// As does a missing movie.
	res = svc.Enhance(context.Background(), "no-such-id")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestEnhanceUnknownPoster(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, &fakeEnhancer{}, nil)

	in := validInput()
	in.PosterID = "poster-999"
	add := svc.Add(context.Background(), "u1", in)
	id := add.Redirect[len("/movies/"):]

	res := svc.Enhance(context.Background(), id)
	assert.False(t, res.Success)
	assert.Equal(t, "Original poster not found.", res.Error)
}

func TestEnhanceWithoutEnhancerConfigured(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, nil, nil)

	res := svc.Enhance(context.Background(), "any")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}
