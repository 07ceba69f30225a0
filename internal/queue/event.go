// Package queue defines catalog events exchanged over the message broker
// and the publisher/consumer pair that moves them.
package queue

// Catalog event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CatalogEvent is published after every successful catalog mutation. It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type CatalogEvent struct {
	Action     string `json:"action"`
	MovieID    string `json:"movie_id"`
	Title      string `json:"title,omitempty"`
	OwnerID    string `json:"owner_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
