package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/booking"
	"github.com/iliyamo/movie-ticket-booking/internal/catalog"
	"github.com/iliyamo/movie-ticket-booking/internal/lock"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// BookingHandler serves the customer booking lifecycle: create a
// pending booking (which places seat holds), inspect bookings, and
// cancel a pending one.
type BookingHandler struct {
	Bookings *booking.Service
	Shows    *catalog.ShowService
	Theatres *catalog.TheatreService
	HoldTTL  time.Duration
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *booking.Service, shows *catalog.ShowService, theatres *catalog.TheatreService, holdTTL time.Duration) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Shows: shows, Theatres: theatres, HoldTTL: holdTTL}
}

type bookingResp struct {
	ID        uint64    `json:"id"`
	ShowID    uint64    `json:"show_id"`
	UserID    uint64    `json:"user_id"`
	SeatIDs   []uint64  `json:"seat_ids"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toBookingResp(b *model.Booking) bookingResp {
	return bookingResp{
		ID:        b.ID,
		ShowID:    b.ShowID,
		UserID:    b.UserID,
		SeatIDs:   b.SeatIDs,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

// bookingError maps booking/lock errors onto HTTP responses so that
// the handlers share one table of outcomes.
func bookingError(c echo.Context, err error) error {
	var conflict *lock.ConflictError
	switch {
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": conflict.Error(), "seat_id": conflict.SeatID})
	case errors.Is(err, booking.ErrLockExpired):
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat hold expired"})
	case errors.Is(err, booking.ErrBookingFinalized):
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking already finalized"})
	case errors.Is(err, booking.ErrNotBookingOwner):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not the booking owner"})
	case errors.Is(err, booking.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// CreateBooking handles POST /v1/shows/:id/bookings.  It validates the
// requested seats against the screen inventory and then attempts to
// hold all of them atomically; either every seat is held or none is.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	showID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	var body struct {
		SeatIDs []uint64 `json:"seat_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seatIDs := dedupeIDs(body.SeatIDs)
	if len(seatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
	}

	sh, err := h.Shows.Show(showID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}
	inventory, err := h.Theatres.SeatsByScreen(sh.ScreenID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	known := make(map[uint64]struct{}, len(inventory))
	for _, s := range inventory {
		known[s.ID] = struct{}{}
	}
	for _, id := range seatIDs {
		if _, ok := known[id]; !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat does not belong to this show's screen", "seat_id": id})
		}
	}

	b, err := h.Bookings.CreateBooking(userID, sh.ID, seatIDs)
	if err != nil {
		return bookingError(c, err)
	}
	resp := toBookingResp(b)
	return c.JSON(http.StatusCreated, echo.Map{
		"booking":         resp,
		"hold_expires_at": b.CreatedAt.Add(h.HoldTTL),
	})
}

// GetMyBookings handles GET /v1/my-bookings.
func (h *BookingHandler) GetMyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	list := h.Bookings.BookingsByUser(userID)
	out := make([]bookingResp, 0, len(list))
	for _, b := range list {
		out = append(out, toBookingResp(b))
	}
	return c.JSON(http.StatusOK, out)
}

// GetBooking handles GET /v1/bookings/:id.  Customers may only read
// their own bookings.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.Bookings.Booking(bookingID)
	if err != nil {
		return bookingError(c, err)
	}
	if b.UserID != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not the booking owner"})
	}
	return c.JSON(http.StatusOK, toBookingResp(b))
}

// CancelBooking handles DELETE /v1/bookings/:id.  Cancelling releases
// the held seats; a confirmed booking cannot be cancelled.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.Bookings.Booking(bookingID)
	if err != nil {
		return bookingError(c, err)
	}
	if b.UserID != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not the booking owner"})
	}
	if err := h.Bookings.Release(bookingID); err != nil {
		return bookingError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
