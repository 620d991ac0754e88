package observer

import (
	"log"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// EmailNotificationObserver stands in for an email collaborator.  In
// a real deployment it would call an email API; here it logs the
// confirmation destined for the booking owner's address.
type EmailNotificationObserver struct {
	users UserDirectory
}

// NewEmailNotificationObserver builds the observer over a user directory.
func NewEmailNotificationObserver(users UserDirectory) *EmailNotificationObserver {
	return &EmailNotificationObserver{users: users}
}

// OnBookingConfirmed logs the confirmation email that would be sent.
func (o *EmailNotificationObserver) OnBookingConfirmed(b *model.Booking) {
	u, err := o.users.GetByID(b.UserID)
	if err != nil {
		log.Printf("email observer: no user for booking %d: %v", b.ID, err)
		return
	}
	log.Printf("email observer: sending confirmation to %s for booking %d", u.Email, b.ID)
}
