// Package model defines the movie catalog entities and their validation
// rules. A Movie is a single catalog record; its mutable fields are always
// submitted through a MovieInput so that identity, ownership and creation
// time can never be altered by a caller.
package model

import "time"

// Movie represents a movie document persisted in the "movies" collection.
// ID is assigned by the store on creation and is immutable, as are OwnerID
// and CreatedAt. OwnerID is empty only for records created before ownership
// tagging was introduced.
type Movie struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Genre       string    `json:"genre" bson:"genre"`
	ReleaseYear int       `json:"releaseYear" bson:"releaseYear"`
	PosterID    string    `json:"posterId" bson:"posterId"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	OwnerID     string    `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
}

// MovieInput carries the mutable fields of a movie as submitted by a caller.
// It deliberately has no id, owner or timestamp fields; those are managed by
// the service and the store.
type MovieInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
	ReleaseYear int    `json:"releaseYear" validate:"gte=1888,release_year_max"`
	PosterID    string `json:"posterId" validate:"required"`
}

// UpdateFields returns the update document for a validated input. The keys
// match the bson field names of Movie; _id, ownerId and createdAt can never
// appear here.
func (in MovieInput) UpdateFields() map[string]any {
	return map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"genre":       in.Genre,
		"releaseYear": in.ReleaseYear,
		"posterId":    in.PosterID,
	}
}
