// Package handler exposes the HTTP surface of the booking service.  Each
// endpoint maps onto exactly one service operation; the handlers own all
// request parsing, error-to-status translation and message wording, while
// the service only returns typed errors.
package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticket-booking/internal/booking"
    "github.com/iliyamo/railway-ticket-booking/internal/queue"
    queue_publisher "github.com/iliyamo/railway-ticket-booking/internal/service"
)

// BookingHandler aggregates the booking service and the event publishers.
// The publisher fields default to the RabbitMQ implementations and exist
// as fields so tests can swap them out; publishing is fire-and-forget and
// never blocks or fails a request.
type BookingHandler struct {
    Service          *booking.Service
    PublishIssued    func(context.Context, queue.TicketIssuedEvent) error
    PublishCancelled func(context.Context, queue.TicketCancelledEvent) error
}

// NewBookingHandler constructs a BookingHandler around the given service.
func NewBookingHandler(svc *booking.Service) *BookingHandler {
    if svc == nil {
        panic("nil service passed to NewBookingHandler")
    }
    return &BookingHandler{
        Service:          svc,
        PublishIssued:    queue_publisher.PublishTicketIssued,
        PublishCancelled: queue_publisher.PublishTicketCancelled,
    }
}

// bookRequest is the JSON body of POST /v1/bookings.
type bookRequest struct {
    SeatID        string `json:"seat_id"`
    Coach         string `json:"coach"`
    From          string `json:"from"`
    To            string `json:"to"`
    PassengerName string `json:"passenger_name"`
    PassengerAge  int    `json:"passenger_age"`
}

// GetStations returns the fixed station enumeration.  Response JSON
// contains an "items" array of station names.
func (h *BookingHandler) GetStations(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"items": h.Service.Catalog().Stations()})
}

// GetCoaches returns the coach classes with their seat counts and base
// fares, in declaration order.
func (h *BookingHandler) GetCoaches(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"items": h.Service.Catalog().Classes()})
}

// GetAvailability handles GET /v1/coaches/:code/seats.  It returns a
// snapshot of every seat of the coach class with its availability flag,
// plus a count of free seats.
func (h *BookingHandler) GetAvailability(c echo.Context) error {
    code := c.Param("code")
    seats, err := h.Service.GetAvailability(code)
    if err != nil {
        return writeBookingError(c, err)
    }
    free := 0
    for _, s := range seats {
        if s.Available {
            free++
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"coach": code, "available": free, "items": seats})
}

// BookSeat handles POST /v1/bookings.  It books exactly one seat; clients
// booking several seats call it once per seat, and each call stands on
// its own (an abandoned later seat does not roll back earlier ones).  On
// success it returns 201 with the issued ticket and publishes a
// TicketIssuedEvent in the background.
func (h *BookingHandler) BookSeat(c echo.Context) error {
    var body bookRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    t, err := h.Service.BookSeat(booking.BookRequest{
        SeatID:        body.SeatID,
        Coach:         body.Coach,
        From:          body.From,
        To:            body.To,
        PassengerName: body.PassengerName,
        PassengerAge:  body.PassengerAge,
    })
    if err != nil {
        return writeBookingError(c, err)
    }
    if h.PublishIssued != nil {
        ev := queue.TicketIssuedEvent{
            TicketID:      t.TicketID,
            SeatID:        t.Seat,
            Coach:         t.Coach,
            From:          t.From,
            To:            t.To,
            PassengerName: t.Name,
            PassengerAge:  t.Age,
            Fare:          t.Fare,
            BookedOn:      t.BookedOn.UTC().Format(time.RFC3339),
        }
        go func() { _ = h.PublishIssued(context.Background(), ev) }()
    }
    return c.JSON(http.StatusCreated, t)
}

// CancelSeat handles DELETE /v1/bookings/:seatID.  It removes the ticket
// occupying the seat, returns it with a 200 status and publishes a
// TicketCancelledEvent in the background.
func (h *BookingHandler) CancelSeat(c echo.Context) error {
    seatID := c.Param("seatID")
    t, err := h.Service.CancelSeat(seatID)
    if err != nil {
        return writeBookingError(c, err)
    }
    if h.PublishCancelled != nil {
        ev := queue.TicketCancelledEvent{
            TicketID:    t.TicketID,
            SeatID:      t.Seat,
            Coach:       t.Coach,
            CancelledAt: time.Now().UTC().Format(time.RFC3339),
        }
        go func() { _ = h.PublishCancelled(context.Background(), ev) }()
    }
    return c.JSON(http.StatusOK, t)
}

// ListTickets handles GET /v1/tickets, returning every issued ticket in
// issuance order.
func (h *BookingHandler) ListTickets(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"items": h.Service.ListTickets()})
}

// ResetAll handles POST /v1/admin/reset.  It frees every seat, clears the
// ledger and resets the ticket counter.  The reset runs unconditionally;
// asking the operator for confirmation is the client's job.
func (h *BookingHandler) ResetAll(c echo.Context) error {
    h.Service.ResetAll()
    return c.JSON(http.StatusOK, echo.Map{"status": "reset"})
}

// writeBookingError translates the service's typed errors into HTTP
// responses.  Internal consistency violations (ErrCorrupted) are logged
// and surface as 500s; they indicate a defect, not bad input.
func writeBookingError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, booking.ErrInvalidRoute):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "origin and destination must be different known stations"})
    case errors.Is(err, booking.ErrInvalidAge):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "age must be between 0 and 120"})
    case errors.Is(err, booking.ErrInvalidName):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "passenger name is required"})
    case errors.Is(err, booking.ErrSeatUnavailable):
        return c.JSON(http.StatusConflict, echo.Map{"error": "seat is not available"})
    case errors.Is(err, booking.ErrUnknownCoach):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "coach class not found"})
    case errors.Is(err, booking.ErrSeatNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
    case errors.Is(err, booking.ErrNoBooking):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "no booking found for seat"})
    default:
        c.Logger().Errorf("booking: internal error: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
}
