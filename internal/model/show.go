package model

import "time"

// Show represents a scheduled screening of a movie on a particular
// screen.  Shows are immutable after creation and scope all
// reservation and booking state: every seat lock and every booking
// belongs to exactly one show.
//
// Fields:
//  ID        – primary key identifier.
//  MovieID   – movie being screened.
//  ScreenID  – screen where the show takes place.
//  StartsAt  – when the show begins.
//  EndsAt    – when the show ends (derived from the movie duration).
//  CreatedAt – timestamp when the show was scheduled.
type Show struct {
	ID        uint64    // unique show identifier
	MovieID   uint64    // movie being screened
	ScreenID  uint64    // hosting screen
	StartsAt  time.Time // show start time
	EndsAt    time.Time // show end time
	CreatedAt time.Time // scheduling timestamp
}
