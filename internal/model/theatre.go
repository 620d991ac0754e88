package model

import "time"

// Theatre represents a venue containing one or more screens.  A
// theatre is immutable after creation; its screens are registered
// separately and reference the theatre by ID.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – name of the theatre.
//  CreatedAt – timestamp when the theatre was registered.
type Theatre struct {
	ID        uint64    // unique theatre identifier
	Name      string    // theatre name
	CreatedAt time.Time // registration timestamp
}
