package model

import "time"

// BookingStatus is the lifecycle state of a booking.  A booking is
// created PENDING and moves to exactly one terminal state: CONFIRMED
// when payment succeeds while the seat locks are still valid, or
// RELEASED when payment fails or the booking is cancelled.
type BookingStatus string

// Booking lifecycle states.
const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingReleased  BookingStatus = "RELEASED"
)

// Booking records a user's claim on a set of seats for a show.  It is
// created atomically with a successful batch seat lock and references
// the locked seats by identity; the binding to the underlying locks
// is re-validated at confirmation time rather than cached.
//
// Fields:
//  ID        – unique, monotonically assigned identifier.
//  UserID    – user who owns the booking.
//  ShowID    – show being booked.
//  SeatIDs   – seats covered by the booking.
//  Status    – lifecycle state (PENDING, CONFIRMED, RELEASED).
//  CreatedAt – creation timestamp.
//  UpdatedAt – timestamp of the last status transition.
type Booking struct {
	ID        uint64        // unique booking identifier
	UserID    uint64        // booking owner
	ShowID    uint64        // booked show
	SeatIDs   []uint64      // seats covered by this booking
	Status    BookingStatus // lifecycle state
	CreatedAt time.Time     // creation timestamp
	UpdatedAt time.Time     // last transition timestamp
}

// Confirmed reports whether the booking reached the CONFIRMED state.
func (b *Booking) Confirmed() bool { return b.Status == BookingConfirmed }

// Finalized reports whether the booking is in a terminal state.
func (b *Booking) Finalized() bool {
	return b.Status == BookingConfirmed || b.Status == BookingReleased
}
