package model

import "time"

// SeatCategory classifies a seat for display and pricing purposes.
// The category has no effect on reservation semantics; seats of all
// categories are locked and booked the same way.
type SeatCategory string

// Seat categories supported by the system.
const (
	SeatCategorySilver   SeatCategory = "SILVER"
	SeatCategoryGold     SeatCategory = "GOLD"
	SeatCategoryPlatinum SeatCategory = "PLATINUM"
)

// Seat describes a physical seat in a screen.  A seat belongs to
// exactly one screen and is immutable after creation.  Seats are
// identified by their ID alone; all reservation and booking state is
// keyed on that identity.
//
// Fields:
//  ID        – primary key identifier.
//  ScreenID  – screen to which this seat belongs.
//  RowNumber – row of the seat within the screen.
//  Category  – seat category (SILVER, GOLD, PLATINUM).
//  CreatedAt – timestamp when the seat was registered.
type Seat struct {
	ID        uint64       // unique seat identifier
	ScreenID  uint64       // owning screen
	RowNumber uint32       // row within the screen
	Category  SeatCategory // seat category
	CreatedAt time.Time    // registration timestamp
}
