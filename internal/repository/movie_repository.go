// Package repository contains data access logic separated from HTTP handlers.
// This file defines the MovieStore contract and its MongoDB implementation
// over the "movies" collection. Ownership enforcement for writes lives in
// the store's query filter: an update or delete only matches a document
// whose ownerId equals the caller, so the repository never needs a separate
// authorization check and cannot tell "missing" from "not yours".
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// MovieStore is the contract the movie service and handlers depend on.
// Implementations must wrap any write rejection in ErrPersistence and signal
// absence on reads with ErrMovieNotFound.
type MovieStore interface {
	Create(ctx context.Context, m *model.Movie) (string, error)
	Get(ctx context.Context, id string) (*model.Movie, error)
	List(ctx context.Context) ([]*model.Movie, error)
	SearchByTitle(ctx context.Context, prefix string) ([]*model.Movie, error)
	Update(ctx context.Context, id, owner string, fields map[string]any) error
	Delete(ctx context.Context, id, owner string) error
}

// MovieRepo implements MovieStore against a MongoDB collection.
type MovieRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewMovieRepo constructs a MovieRepo over the "movies" collection of the
// given database. This allows dependency injection of the database handle in
// tests and at startup.
func NewMovieRepo(db *mongo.Database, logger *zap.Logger) *MovieRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovieRepo{coll: db.Collection("movies"), logger: logger}
}

// Create inserts a new movie document. When the movie carries no ID a random
// one is generated, mirroring a store-assigned identifier. The assigned ID
// is returned and also written back to the movie.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		r.logger.Warn("movie insert rejected", zap.String("id", m.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return m.ID, nil
}

// Get fetches a single movie by ID. It returns ErrMovieNotFound when no
// document matches; any other error is a driver failure.
func (r *MovieRepo) Get(ctx context.Context, id string) (*model.Movie, error) {
	var m model.Movie
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns all movies ordered by creation time, newest first.
func (r *MovieRepo) List(ctx context.Context) ([]*model.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	out := []*model.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByTitle returns movies whose title starts with the given prefix,
// ordered by title. The range upper bound uses U+F8FF, the same trick the
// web client used against its document store; the match is case sensitive.
func (r *MovieRepo) SearchByTitle(ctx context.Context, prefix string) ([]*model.Movie, error) {
	filter := bson.M{"title": bson.M{"$gte": prefix, "$lte": prefix + ""}}
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	out := []*model.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update merges the given fields into the movie identified by id, provided
// it is owned by the caller. Zero matched documents means the movie is
// missing or owned by someone else; both are reported as ErrPersistence.
func (r *MovieRepo) Update(ctx context.Context, id, owner string, fields map[string]any) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "ownerId": owner},
		bson.M{"$set": fields},
	)
	if err != nil {
		r.logger.Warn("movie update rejected", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: no matching document", ErrPersistence)
	}
	return nil
}

// Delete removes the movie identified by id, provided it is owned by the
// caller. The failure category is identical to Update's.
func (r *MovieRepo) Delete(ctx context.Context, id, owner string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "ownerId": owner})
	if err != nil {
		r.logger.Warn("movie delete rejected", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: no matching document", ErrPersistence)
	}
	return nil
}
