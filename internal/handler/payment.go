package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/payment"
)

// PaymentHandler settles payments for pending bookings.
type PaymentHandler struct {
	Payments *payment.Service
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(payments *payment.Service) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// Pay handles POST /v1/bookings/:id/payment.  The chosen method
// selects a payment strategy; a success outcome confirms the booking
// and a failure outcome releases its seats.
func (h *PaymentHandler) Pay(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body struct {
		Method string `json:"method"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	method := payment.Method(strings.ToUpper(strings.TrimSpace(body.Method)))
	strategy, err := payment.StrategyForMethod(method)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown payment method"})
	}

	b, err := h.Payments.Settle(bookingID, userID, strategy)
	if err != nil {
		return bookingError(c, err)
	}

	resp := echo.Map{"booking": toBookingResp(b)}
	if !b.Confirmed() {
		resp["failed_attempts"] = h.Payments.FailureCount(bookingID)
	}
	return c.JSON(http.StatusOK, resp)
}
