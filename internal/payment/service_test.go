package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/booking"
	"github.com/iliyamo/movie-ticket-booking/internal/lock"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

const (
	showID    = uint64(1)
	userAlice = uint64(10)
	userBob   = uint64(20)
)

// fixedStrategy returns a preset outcome.
type fixedStrategy struct{ status Status }

func (s fixedStrategy) ProcessPayment() Status { return s.status }

func newTestStack() (*Service, *booking.Service, *lock.SeatLockProvider) {
	p := lock.NewSeatLockProvider(time.Minute, time.Hour)
	bookings := booking.NewService(p)
	return NewService(bookings), bookings, p
}

func TestSettleSuccessConfirmsBooking(t *testing.T) {
	payments, bookings, locks := newTestStack()

	b, err := bookings.CreateBooking(userAlice, showID, []uint64{1, 2})
	require.NoError(t, err)

	settled, err := payments.Settle(b.ID, userAlice, DebitCardStrategy{})
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, settled.Status)
	assert.Empty(t, locks.LockedSeats(showID))
	assert.ElementsMatch(t, []uint64{1, 2}, bookings.BookedSeats(showID))
	assert.Zero(t, payments.FailureCount(b.ID))
}

func TestSettleFailureReleasesBooking(t *testing.T) {
	payments, bookings, locks := newTestStack()

	b, err := bookings.CreateBooking(userAlice, showID, []uint64{1, 2})
	require.NoError(t, err)

	settled, err := payments.Settle(b.ID, userAlice, UpiStrategy{})
	require.NoError(t, err)
	assert.Equal(t, model.BookingReleased, settled.Status)
	assert.Equal(t, 1, payments.FailureCount(b.ID))

	// Seats are free again for other users.
	assert.Empty(t, locks.LockedSeats(showID))
	_, err = bookings.CreateBooking(userBob, showID, []uint64{1, 2})
	assert.NoError(t, err)
}

func TestSettleFailureCounts(t *testing.T) {
	payments, bookings, _ := newTestStack()

	b, err := bookings.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)

	_, err = payments.Settle(b.ID, userAlice, fixedStrategy{StatusFailureInsufficientFunds})
	require.NoError(t, err)
	// The booking is already released; a repeated failure report is
	// counted but stays a no-op on the booking.
	_, err = payments.Settle(b.ID, userAlice, fixedStrategy{StatusFailureBankError})
	require.NoError(t, err)

	assert.Equal(t, 2, payments.FailureCount(b.ID))
	assert.Zero(t, payments.FailureCount(999), "unknown bookings have no failures")
}

func TestSettleOwnerChecks(t *testing.T) {
	payments, bookings, locks := newTestStack()

	b, err := bookings.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)

	_, err = payments.Settle(b.ID, userBob, DebitCardStrategy{})
	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)

	_, err = payments.Settle(b.ID, userBob, UpiStrategy{})
	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
	assert.Zero(t, payments.FailureCount(b.ID), "foreign failure reports are not counted")

	// Alice's booking is untouched by Bob's attempts.
	assert.True(t, locks.ValidateLock(showID, 1, userAlice))
}

func TestSettleUnknownBooking(t *testing.T) {
	payments, _, _ := newTestStack()
	_, err := payments.Settle(999, userAlice, DebitCardStrategy{})
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestSettleConfirmedBooking(t *testing.T) {
	payments, bookings, _ := newTestStack()

	b, err := bookings.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)
	_, err = payments.Settle(b.ID, userAlice, DebitCardStrategy{})
	require.NoError(t, err)

	_, err = payments.Settle(b.ID, userAlice, UpiStrategy{})
	assert.ErrorIs(t, err, booking.ErrBookingFinalized, "a confirmed booking cannot be released by a late failure")
}

func TestStrategyForMethod(t *testing.T) {
	s, err := StrategyForMethod(MethodDebitCard)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, s.ProcessPayment())

	s, err = StrategyForMethod(MethodCreditCard)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, s.ProcessPayment())

	s, err = StrategyForMethod(MethodUPI)
	require.NoError(t, err)
	assert.Equal(t, StatusFailureBankError, s.ProcessPayment())

	_, err = StrategyForMethod("CHEQUE")
	assert.Error(t, err)
}
