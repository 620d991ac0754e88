package payment

import (
	"log"
	"sync"

	"github.com/iliyamo/movie-ticket-booking/internal/booking"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Service settles payment outcomes against pending bookings.  A
// success outcome confirms the booking; any failure outcome releases
// its seats and is counted per booking.  The failure counts are a
// collaborator-visible metric only and have no effect on correctness.
type Service struct {
	bookings *booking.Service

	mu       sync.Mutex
	failures map[uint64]int // booking ID -> failed settlement attempts
}

// NewService builds a payment service on top of the booking service.
func NewService(bookings *booking.Service) *Service {
	return &Service{
		bookings: bookings,
		failures: make(map[uint64]int),
	}
}

// Settle runs the strategy once and applies its outcome to the
// booking.  On success the booking is confirmed (which re-validates
// the seat locks); on failure the caller must be the booking owner,
// the failure is recorded and the booking's seats are released.
func (s *Service) Settle(bookingID, userID uint64, strategy Strategy) (*model.Booking, error) {
	status := strategy.ProcessPayment()
	if status == StatusSuccess {
		return s.bookings.Confirm(bookingID, userID)
	}
	return s.settleFailure(bookingID, userID, status)
}

// settleFailure handles any non-success outcome: only the booking
// owner may report a failure, the attempt is counted, and the seats
// are released so other users can take them.
func (s *Service) settleFailure(bookingID, userID uint64, status Status) (*model.Booking, error) {
	b, err := s.bookings.Booking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, booking.ErrNotBookingOwner
	}

	s.mu.Lock()
	s.failures[bookingID]++
	s.mu.Unlock()
	log.Printf("payment failed for booking %d with status %s", bookingID, status)

	if err := s.bookings.Release(bookingID); err != nil {
		return nil, err
	}
	return s.bookings.Booking(bookingID)
}

// FailureCount returns how many failed settlement attempts have been
// recorded for a booking.
func (s *Service) FailureCount(bookingID uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[bookingID]
}
