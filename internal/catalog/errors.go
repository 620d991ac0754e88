// Package catalog provides the in-memory registries for the static
// inventory the booking flow operates on: movies, theatres, screens,
// seats and shows.  The registries are plain CRUD over immutable
// records; they carry no reservation state and are read-only inputs
// to the booking and lock layers.
package catalog

import "errors"

// Sentinel errors returned by the registries.  Handlers translate
// them into HTTP 404 responses.
var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrTheatreNotFound = errors.New("theatre not found")
	ErrScreenNotFound  = errors.New("screen not found")
	ErrShowNotFound    = errors.New("show not found")
)
