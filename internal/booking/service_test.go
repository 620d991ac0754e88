package booking

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/lock"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

const (
	showID    = uint64(1)
	userAlice = uint64(10)
	userBob   = uint64(20)
)

func newTestService() (*Service, *lock.SeatLockProvider) {
	p := lock.NewSeatLockProvider(time.Minute, time.Hour)
	return NewService(p), p
}

// recordingObserver collects the bookings it is notified about.
type recordingObserver struct {
	mu       sync.Mutex
	bookings []*model.Booking
}

func (o *recordingObserver) OnBookingConfirmed(b *model.Booking) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.bookings = append(o.bookings, b)
}

func (o *recordingObserver) confirmed() []*model.Booking {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*model.Booking(nil), o.bookings...)
}

// panickingObserver always panics to exercise observer isolation.
type panickingObserver struct{}

func (panickingObserver) OnBookingConfirmed(*model.Booking) { panic("observer boom") }

func TestCreateBooking(t *testing.T) {
	svc, locks := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, model.BookingPending, b.Status)
	assert.Equal(t, userAlice, b.UserID)
	assert.Equal(t, []uint64{1, 2, 3}, b.SeatIDs)
	assert.NotZero(t, b.ID)

	for _, sid := range b.SeatIDs {
		assert.True(t, locks.ValidateLock(showID, sid, userAlice))
	}
}

func TestCreateBookingSeatConflict(t *testing.T) {
	svc, locks := newTestService()

	_, err := svc.CreateBooking(userAlice, showID, []uint64{1, 2})
	require.NoError(t, err)

	_, err = svc.CreateBooking(userBob, showID, []uint64{2, 3})
	var conflict *lock.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(2), conflict.SeatID)

	// Bob's non-conflicting seat must not have been locked and no
	// booking must exist for him.
	assert.False(t, locks.ValidateLock(showID, 3, userBob))
	assert.Empty(t, svc.BookingsByUser(userBob))
}

func TestCreateBookingConfirmedSeatRejected(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)
	_, err = svc.Confirm(b.ID, userAlice)
	require.NoError(t, err)

	// The seat lock is gone after confirmation, but the confirmed-seat
	// guard still blocks new bookings for the same seat.
	_, err = svc.CreateBooking(userBob, showID, []uint64{1})
	var conflict *lock.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(1), conflict.SeatID)
}

func TestConcurrentCreateBookingSingleWinner(t *testing.T) {
	svc, _ := newTestService()
	seats := []uint64{1, 2}

	const workers = 32
	var wg sync.WaitGroup
	var successes sync.Map
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		uid := uint64(100 + i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if b, err := svc.CreateBooking(uid, showID, seats); err == nil {
				successes.Store(uid, b)
			}
		}()
	}
	close(start)
	wg.Wait()

	count := 0
	successes.Range(func(_, _ any) bool { count++; return true })
	assert.Equal(t, 1, count, "exactly one booking may win the seats")
}

func TestConfirm(t *testing.T) {
	svc, locks := newTestService()
	obs := &recordingObserver{}
	svc.AddObserver(obs)

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1, 2})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(b.ID, userAlice)
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, confirmed.Status)

	// Locks are released after confirmation; the booking keeps the seats.
	assert.Empty(t, locks.LockedSeats(showID))
	assert.ElementsMatch(t, []uint64{1, 2}, svc.BookedSeats(showID))

	got := obs.confirmed()
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, model.BookingConfirmed, got[0].Status)
}

func TestConfirmNotOwner(t *testing.T) {
	svc, locks := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)

	_, err = svc.Confirm(b.ID, userBob)
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	// The booking and its locks are untouched.
	cur, err := svc.Booking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingPending, cur.Status)
	assert.True(t, locks.ValidateLock(showID, 1, userAlice))
}

func TestConfirmExpiredLock(t *testing.T) {
	p := lock.NewSeatLockProvider(20*time.Millisecond, time.Hour)
	svc := NewService(p)

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = svc.Confirm(b.ID, userAlice)
	assert.ErrorIs(t, err, ErrLockExpired)

	// The booking stays pending so the failure is inspectable.
	cur, err := svc.Booking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingPending, cur.Status)
}

func TestConfirmUnknownBooking(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Confirm(999, userAlice)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmTwice(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)
	_, err = svc.Confirm(b.ID, userAlice)
	require.NoError(t, err)

	_, err = svc.Confirm(b.ID, userAlice)
	assert.ErrorIs(t, err, ErrLockExpired, "locks are gone after the first confirm")
}

func TestRelease(t *testing.T) {
	svc, locks := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1, 2})
	require.NoError(t, err)

	require.NoError(t, svc.Release(b.ID))
	cur, err := svc.Booking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingReleased, cur.Status)
	assert.Empty(t, locks.LockedSeats(showID))

	// Released seats are immediately available to others.
	_, err = svc.CreateBooking(userBob, showID, []uint64{1, 2})
	assert.NoError(t, err)
}

func TestReleaseIdempotent(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)
	require.NoError(t, svc.Release(b.ID))
	assert.NoError(t, svc.Release(b.ID), "second release is a no-op")
}

func TestReleaseConfirmedBooking(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)
	_, err = svc.Confirm(b.ID, userAlice)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Release(b.ID), ErrBookingFinalized)
	assert.ElementsMatch(t, []uint64{1}, svc.BookedSeats(showID), "confirmed seats stay booked")
}

func TestReleaseUnknownBooking(t *testing.T) {
	svc, _ := newTestService()
	assert.ErrorIs(t, svc.Release(999), ErrBookingNotFound)
}

func TestObserverPanicIsolation(t *testing.T) {
	svc, _ := newTestService()
	obs := &recordingObserver{}
	svc.AddObserver(panickingObserver{})
	svc.AddObserver(obs)

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(b.ID, userAlice)
	require.NoError(t, err, "a panicking observer cannot abort the confirmation")
	assert.Equal(t, model.BookingConfirmed, confirmed.Status)
	assert.Len(t, obs.confirmed(), 1, "later observers still run")
}

func TestRemoveObserver(t *testing.T) {
	svc, _ := newTestService()
	obs := &recordingObserver{}
	svc.AddObserver(obs)
	svc.RemoveObserver(obs)

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)
	_, err = svc.Confirm(b.ID, userAlice)
	require.NoError(t, err)
	assert.Empty(t, obs.confirmed())
}

func TestBookingSnapshotIsIndependent(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(userAlice, showID, []uint64{1})
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	b.Status = model.BookingConfirmed
	b.SeatIDs[0] = 99

	cur, err := svc.Booking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingPending, cur.Status)
	assert.Equal(t, []uint64{1}, cur.SeatIDs)
}

func TestBookingsByShowAndUser(t *testing.T) {
	svc, _ := newTestService()

	b1, err := svc.CreateBooking(userAlice, 1, []uint64{1})
	require.NoError(t, err)
	b2, err := svc.CreateBooking(userAlice, 2, []uint64{1})
	require.NoError(t, err)
	_, err = svc.CreateBooking(userBob, 1, []uint64{2})
	require.NoError(t, err)

	byUser := svc.BookingsByUser(userAlice)
	require.Len(t, byUser, 2)
	ids := []uint64{byUser[0].ID, byUser[1].ID}
	assert.ElementsMatch(t, []uint64{b1.ID, b2.ID}, ids)

	byShow := svc.BookingsByShow(1)
	assert.Len(t, byShow, 2)
}
