// Package repository defines error values shared by the data access layer.
// These sentinel values allow higher layers such as the movie service to
// distinguish between failure scenarios without inspecting driver errors.
package repository

import "errors"

// ErrMovieNotFound is returned by read operations when no movie exists for
// the requested identifier. It is an explicit absence signal, not a write
// failure.
var ErrMovieNotFound = errors.New("movie not found")

// ErrPersistence is returned when the store rejects a write. A rejected
// update or delete does not reveal whether the record was missing or owned
// by someone else; both collapse into this single category and the service
// surfaces it as a generic failure message.
var ErrPersistence = errors.New("store rejected the write")
