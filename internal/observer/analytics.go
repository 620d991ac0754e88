package observer

import (
	"log"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// AnalyticsUpdateObserver stands in for an analytics collaborator.
// It records the confirmed booking's show and seat count.
type AnalyticsUpdateObserver struct{}

// NewAnalyticsUpdateObserver builds the observer.
func NewAnalyticsUpdateObserver() *AnalyticsUpdateObserver {
	return &AnalyticsUpdateObserver{}
}

// OnBookingConfirmed logs the analytics update for the booking.
func (o *AnalyticsUpdateObserver) OnBookingConfirmed(b *model.Booking) {
	log.Printf("analytics observer: show %d booked %d seat(s) (booking %d)", b.ShowID, len(b.SeatIDs), b.ID)
}
