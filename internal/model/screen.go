package model

import "time"

// Screen represents an individual auditorium within a theatre.
// Screens own a fixed set of seats and host scheduled shows.
//
// Fields:
//  ID        – primary key identifier.
//  TheatreID – theatre this screen belongs to.
//  Name      – screen name, unique within its theatre.
//  CreatedAt – timestamp when the screen was registered.
type Screen struct {
	ID        uint64    // unique screen identifier
	TheatreID uint64    // owning theatre
	Name      string    // screen name (e.g. "Screen 1", "IMAX")
	CreatedAt time.Time // registration timestamp
}
