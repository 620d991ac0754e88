package model

import "time"

// SeatLock represents a temporary, exclusive claim on a seat for a
// show by one user while a purchase is in progress.  Locks prevent
// concurrent bookings from grabbing the same seat.  A lock expires
// automatically at its ExpiresAt timestamp; expired locks are treated
// as free by acquisition and validation and are eventually evicted by
// the background sweeper.
//
// Fields:
//  SeatID    – seat being locked.
//  ShowID    – show for which the seat is locked.
//  UserID    – user who holds the lock.
//  LockedAt  – when the lock was acquired.
//  ExpiresAt – when the lock lapses.
type SeatLock struct {
	SeatID    uint64    // locked seat
	ShowID    uint64    // show the lock is scoped to
	UserID    uint64    // lock holder
	LockedAt  time.Time // acquisition timestamp
	ExpiresAt time.Time // expiry deadline
}

// Expired reports whether the lock has lapsed at the given instant.
func (l *SeatLock) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
