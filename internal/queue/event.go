// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is successfully confirmed.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the booking service.
type BookingConfirmedEvent struct {
	BookingID   uint64   `json:"booking_id"`
	UserID      uint64   `json:"user_id"`
	UserEmail   string   `json:"user_email"`
	ShowID      uint64   `json:"show_id"`
	MovieTitle  string   `json:"movie_title"`
	TheatreName string   `json:"theatre_name"`
	ScreenName  string   `json:"screen_name"`
	StartsAt    string   `json:"starts_at"`
	SeatIDs     []uint64 `json:"seats"`
	ConfirmedAt string   `json:"confirmed_at"`
}
