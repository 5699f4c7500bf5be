// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedQueue and TicketCancelledQueue name the broker queues that
// carry booking lifecycle events.
const (
    TicketIssuedQueue    = "ticket.issued"
    TicketCancelledQueue = "ticket.cancelled"
)

// TicketIssuedEvent is published after a seat is successfully booked.
// It carries enough information for downstream consumers to log, notify,
// or feed analytics without calling back into the booking service.
type TicketIssuedEvent struct {
    TicketID      string  `json:"ticket_id"`
    SeatID        string  `json:"seat_id"`
    Coach         string  `json:"coach"`
    From          string  `json:"from"`
    To            string  `json:"to"`
    PassengerName string  `json:"passenger_name"`
    PassengerAge  int     `json:"passenger_age"`
    Fare          float64 `json:"fare"`
    BookedOn      string  `json:"booked_on"`
}

// TicketCancelledEvent is published after a booking is cancelled and its
// seat returned to the free pool.
type TicketCancelledEvent struct {
    TicketID    string `json:"ticket_id"`
    SeatID      string `json:"seat_id"`
    Coach       string `json:"coach"`
    CancelledAt string `json:"cancelled_at"`
}
