package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/railway-ticket-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to the booking API on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterBooking registers the booking API under /v1.  The catalogCache
// middleware, when non-nil, is applied only to the station and coach
// listing routes: that data is fixed at startup, so cached responses can
// never disagree with the live inventory.  Availability, booking and
// ticket routes always hit the service directly.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, catalogCache echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	// Static catalog lookups used by clients to populate their selection UI.
	if catalogCache != nil {
		v1.GET("/stations", h.GetStations, catalogCache)
		v1.GET("/coaches", h.GetCoaches, catalogCache)
	} else {
		v1.GET("/stations", h.GetStations)
		v1.GET("/coaches", h.GetCoaches)
	}

	// Live seat availability snapshot for one coach class.
	v1.GET("/coaches/:code/seats", h.GetAvailability)

	// One booking per request; clients wanting several seats call this once
	// per seat.
	v1.POST("/bookings", h.BookSeat)
	// Cancellation is addressed by seat, matching how passengers identify
	// their booking.
	v1.DELETE("/bookings/:seatID", h.CancelSeat)
	// All currently issued tickets in issuance order.
	v1.GET("/tickets", h.ListTickets)

	// Administrative reset: frees every seat, clears the ledger and resets
	// the ticket counter.  The caller is expected to have confirmed the
	// action; the server performs it unconditionally.
	v1.POST("/admin/reset", h.ResetAll)
}
