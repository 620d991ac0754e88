// Package booking implements the booking lifecycle: creating a
// booking atomically with a batch seat lock, confirming it after a
// successful payment, and releasing it when payment fails or the
// customer cancels.  Confirmed bookings are announced synchronously
// to registered observers.
package booking

import "errors"

// ErrBookingNotFound is returned when no booking exists for the
// requested ID.  Handlers should translate this into an HTTP 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNotBookingOwner is returned when a user attempts to confirm,
// release or report a payment outcome for a booking owned by someone
// else.  Handlers should translate this into an HTTP 403.
var ErrNotBookingOwner = errors.New("booking belongs to another user")

// ErrLockExpired is returned when a confirmation is attempted after
// the underlying seat locks lapsed or were reclaimed.  The booking
// flow must be restarted with a new booking.
var ErrLockExpired = errors.New("seat lock is invalid or has expired")

// ErrBookingFinalized is returned when a transition is attempted on a
// booking that already reached a terminal state (confirmed or
// released).  Releasing an already released booking is the one
// exception: it is a silent no-op.
var ErrBookingFinalized = errors.New("booking is already finalized")
