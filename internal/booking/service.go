package booking

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/lock"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Observer receives a synchronous notification after a booking is
// confirmed.  Observers are invoked in registration order; a panic in
// one observer is isolated so it can neither abort the confirmation
// nor prevent the remaining observers from running.
type Observer interface {
	OnBookingConfirmed(b *model.Booking)
}

// Service owns the in-memory booking store and drives the booking
// state machine (PENDING -> CONFIRMED | RELEASED) on top of the seat
// lock provider.  All state is injected and per-instance, so tests
// can construct isolated services.
//
// Lock ordering: methods never call into the lock provider while
// holding the booking store mutex.  The provider, in turn, may call
// the confirmed-seat guard (which takes the store read lock) inside a
// show's exclusive section, so holding the store write lock across a
// provider call would deadlock.
type Service struct {
	locks lock.Provider

	mu       sync.RWMutex
	bookings map[uint64]*model.Booking
	nextID   atomic.Uint64

	obsMu     sync.RWMutex
	observers []Observer
}

// NewService builds a booking service on top of the given lock
// provider.
func NewService(locks lock.Provider) *Service {
	return &Service{
		locks:    locks,
		bookings: make(map[uint64]*model.Booking),
	}
}

// AddObserver registers an observer for booking confirmations.
func (s *Service) AddObserver(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, o)
}

// RemoveObserver unregisters a previously added observer.  Unknown
// observers are ignored.
func (s *Service) RemoveObserver(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	for i, reg := range s.observers {
		if reg == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// CreateBooking reserves the given seats for the user and records a
// PENDING booking referencing them.  Seats already belonging to a
// confirmed booking and seats with a live lock are both rejected with
// a *lock.ConflictError; the confirmed-seat check runs as a guard
// inside the same exclusive section as the lock acquisition, so no
// window exists in which another flow could confirm a seat between
// the check and the lock.  On conflict no seat is locked and no
// booking is created.
func (s *Service) CreateBooking(userID, showID uint64, seatIDs []uint64) (*model.Booking, error) {
	guard := func(seatID uint64) bool {
		return s.seatConfirmed(showID, seatID)
	}
	if err := s.locks.LockSeats(showID, seatIDs, userID, guard); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &model.Booking{
		ID:        s.nextID.Add(1),
		UserID:    userID,
		ShowID:    showID,
		SeatIDs:   append([]uint64(nil), seatIDs...),
		Status:    model.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.bookings[b.ID] = b
	s.mu.Unlock()
	return snapshot(b), nil
}

// Confirm transitions a pending booking to CONFIRMED on behalf of its
// owner.  Every seat in the booking is re-validated against the lock
// table first: the locks may have expired or been reclaimed since the
// booking was created, and a stale booking must not be able to commit.
// On success the seat locks are released (the seats stay unavailable
// through the confirmed-seat guard) and all registered observers are
// notified with the finalized booking.
func (s *Service) Confirm(bookingID, userID uint64) (*model.Booking, error) {
	s.mu.RLock()
	b, ok := s.bookings[bookingID]
	if !ok {
		s.mu.RUnlock()
		return nil, ErrBookingNotFound
	}
	owner, showID := b.UserID, b.ShowID
	seatIDs := append([]uint64(nil), b.SeatIDs...)
	s.mu.RUnlock()

	if owner != userID {
		return nil, ErrNotBookingOwner
	}
	for _, sid := range seatIDs {
		if !s.locks.ValidateLock(showID, sid, userID) {
			return nil, ErrLockExpired
		}
	}

	s.mu.Lock()
	if b.Finalized() {
		s.mu.Unlock()
		return nil, ErrBookingFinalized
	}
	b.Status = model.BookingConfirmed
	b.UpdatedAt = time.Now().UTC()
	confirmed := snapshot(b)
	s.mu.Unlock()

	s.locks.UnlockSeats(showID, seatIDs, userID)
	s.notifyObservers(confirmed)
	return confirmed, nil
}

// Release returns the booking's seats to the pool and marks the
// booking RELEASED.  It is used on payment failure and voluntary
// cancellation.  Releasing an already released booking is a no-op;
// releasing a confirmed booking is an error.  The lock-table side of
// the release is ownership-scoped, so only locks still held by the
// booking's owner are removed.
func (s *Service) Release(bookingID uint64) error {
	s.mu.Lock()
	b, ok := s.bookings[bookingID]
	if !ok {
		s.mu.Unlock()
		return ErrBookingNotFound
	}
	switch b.Status {
	case model.BookingReleased:
		s.mu.Unlock()
		return nil
	case model.BookingConfirmed:
		s.mu.Unlock()
		return ErrBookingFinalized
	}
	b.Status = model.BookingReleased
	b.UpdatedAt = time.Now().UTC()
	owner, showID := b.UserID, b.ShowID
	seatIDs := append([]uint64(nil), b.SeatIDs...)
	s.mu.Unlock()

	s.locks.UnlockSeats(showID, seatIDs, owner)
	return nil
}

// Booking returns a copy of the booking with the given ID.
func (s *Service) Booking(bookingID uint64) (*model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return snapshot(b), nil
}

// BookingsByShow returns copies of all bookings for a show, in no
// particular order.
func (s *Service) BookingsByShow(showID uint64) []*model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Booking, 0)
	for _, b := range s.bookings {
		if b.ShowID == showID {
			out = append(out, snapshot(b))
		}
	}
	return out
}

// BookingsByUser returns copies of all bookings made by a user.
func (s *Service) BookingsByUser(userID uint64) []*model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, snapshot(b))
		}
	}
	return out
}

// BookedSeats returns the seats of all confirmed bookings for a show.
func (s *Service) BookedSeats(showID uint64) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []uint64
	for _, b := range s.bookings {
		if b.ShowID == showID && b.Confirmed() {
			out = append(out, b.SeatIDs...)
		}
	}
	return out
}

// seatConfirmed reports whether the seat belongs to a confirmed
// booking for the show.  Called from the lock provider's guard, so it
// must only take the store read lock.
func (s *Service) seatConfirmed(showID, seatID uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ShowID != showID || !b.Confirmed() {
			continue
		}
		for _, sid := range b.SeatIDs {
			if sid == seatID {
				return true
			}
		}
	}
	return false
}

// notifyObservers delivers the confirmed booking to every registered
// observer in registration order.  Each call is guarded so a
// panicking observer cannot undo the confirmation or starve the rest.
func (s *Service) notifyObservers(b *model.Booking) {
	s.obsMu.RLock()
	observers := append([]Observer(nil), s.observers...)
	s.obsMu.RUnlock()
	for _, o := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("booking observer panicked on booking %d: %v", b.ID, r)
				}
			}()
			o.OnBookingConfirmed(snapshot(b))
		}()
	}
}

// snapshot returns an independent copy of a booking so callers never
// share memory with the store.
func snapshot(b *model.Booking) *model.Booking {
	cp := *b
	cp.SeatIDs = append([]uint64(nil), b.SeatIDs...)
	return &cp
}
