package booking

import (
	"github.com/iliyamo/movie-ticket-booking/internal/lock"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// SeatSource supplies the physical seat inventory of a screen.  The
// catalog layer implements it; the availability service treats the
// inventory as read-only input.
type SeatSource interface {
	SeatsByScreen(screenID uint64) ([]*model.Seat, error)
}

// AvailabilityService derives which seats of a show can currently be
// requested: the screen's seats minus those in a confirmed booking
// and those with a live lock.  The result is advisory only; the
// authoritative check happens atomically inside CreateBooking.
type AvailabilityService struct {
	bookings *Service
	locks    lock.Provider
	seats    SeatSource
}

// NewAvailabilityService wires an availability service from the
// booking store, the lock provider and the seat inventory.
func NewAvailabilityService(bookings *Service, locks lock.Provider, seats SeatSource) *AvailabilityService {
	return &AvailabilityService{bookings: bookings, locks: locks, seats: seats}
}

// AvailableSeats returns the IDs of the show's seats that are neither
// confirmed-booked nor live-locked, in inventory order.
func (s *AvailabilityService) AvailableSeats(show *model.Show) ([]uint64, error) {
	inventory, err := s.seats.SeatsByScreen(show.ScreenID)
	if err != nil {
		return nil, err
	}
	unavailable := make(map[uint64]struct{})
	for _, sid := range s.bookings.BookedSeats(show.ID) {
		unavailable[sid] = struct{}{}
	}
	for _, sid := range s.locks.LockedSeats(show.ID) {
		unavailable[sid] = struct{}{}
	}
	out := make([]uint64, 0, len(inventory))
	for _, seat := range inventory {
		if _, held := unavailable[seat.ID]; !held {
			out = append(out, seat.ID)
		}
	}
	return out, nil
}
