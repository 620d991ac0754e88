// Package observer contains the collaborators notified when a
// booking is confirmed.  Observers are fire-and-forget side effects:
// their failures are logged and never propagate back into the
// confirmation flow.
package observer

import (
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// UserDirectory resolves a user ID to its record.  The user store
// implements it.
type UserDirectory interface {
	GetByID(id uint64) (*model.User, error)
}
