package observer

import (
	"context"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/catalog"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
)

// QueueObserver publishes a booking.confirmed event to the message
// broker so downstream consumers (notification log, analytics) can
// react without querying the services.  Publishing is best-effort:
// errors are logged by the publisher and dropped here, so a broker
// outage can never undo a confirmation.
type QueueObserver struct {
	users    UserDirectory
	movies   *catalog.MovieService
	theatres *catalog.TheatreService
	shows    *catalog.ShowService
}

// NewQueueObserver wires the observer with the directories it needs
// to enrich the event payload.
func NewQueueObserver(users UserDirectory, movies *catalog.MovieService, theatres *catalog.TheatreService, shows *catalog.ShowService) *QueueObserver {
	return &QueueObserver{users: users, movies: movies, theatres: theatres, shows: shows}
}

// OnBookingConfirmed builds and publishes the confirmation event.
// Lookups that fail leave the corresponding field empty rather than
// blocking the publish.
func (o *QueueObserver) OnBookingConfirmed(b *model.Booking) {
	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		ShowID:      b.ShowID,
		SeatIDs:     b.SeatIDs,
		ConfirmedAt: b.UpdatedAt.Format(time.RFC3339),
	}
	if u, err := o.users.GetByID(b.UserID); err == nil {
		ev.UserEmail = u.Email
	}
	if sh, err := o.shows.Show(b.ShowID); err == nil {
		ev.StartsAt = sh.StartsAt.Format(time.RFC3339)
		if m, err := o.movies.Movie(sh.MovieID); err == nil {
			ev.MovieTitle = m.Title
		}
		if sc, err := o.theatres.Screen(sh.ScreenID); err == nil {
			ev.ScreenName = sc.Name
			if t, err := o.theatres.Theatre(sc.TheatreID); err == nil {
				ev.TheatreName = t.Name
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue.PublishBookingConfirmed(ctx, ev)
}
