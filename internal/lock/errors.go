// Package lock implements the in-memory seat lock table that enforces
// seat-level mutual exclusion for shows.  It provides atomic batch
// acquisition of time-bounded locks, ownership-scoped release,
// read-only validation and a background sweeper that reclaims expired
// locks.  Each show owns an independent lock table; operations on
// different shows never block one another.
package lock

import "fmt"

// ConflictError is returned when a batch acquisition fails because a
// requested seat is unavailable.  It carries the first conflicting
// seat so callers can report it; no seat in the batch is locked when
// this error is returned.  The conflict is always recoverable by the
// caller (pick different seats or retry later).
type ConflictError struct {
	SeatID uint64 // first seat found unavailable
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("seat %d is not available", e.SeatID)
}
