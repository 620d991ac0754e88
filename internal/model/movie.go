package model

import "time"

// Movie represents a film that can be scheduled for shows.  Movies
// are immutable after creation and are referenced by shows through
// their ID.
//
// Fields:
//  ID              – primary key identifier.
//  Title           – title of the movie.
//  DurationMinutes – running time of the movie in minutes.
//  CreatedAt       – timestamp when the movie was registered.
type Movie struct {
	ID              uint64    // unique movie identifier
	Title           string    // movie title
	DurationMinutes uint32    // running time in minutes
	CreatedAt       time.Time // registration timestamp
}
