package model

import "time"

// TicketTypeRegular is the only ticket kind issued by this system.  The
// field exists so downstream consumers can distinguish ticket kinds if
// more are ever introduced.
const TicketTypeRegular = "Regular Ticket"

// Ticket records one completed booking, binding a passenger to a seat at
// a fare.  Tickets are immutable once issued; cancellation removes the
// ticket from the ledger rather than mutating it.
//
// Fields:
//  TicketID – unique identifier of the form "T001", strictly increasing
//             in issuance order.
//  Type     – ticket kind; always TicketTypeRegular.
//  Name     – passenger name as supplied by the caller.
//  Age      – passenger age in years (0–120).
//  Seat     – seat ID this ticket occupies (e.g. "2AC-S5").
//  Coach    – coach class code of the seat (e.g. "2AC").
//  From     – origin station.
//  To       – destination station; always differs from From.
//  Fare     – fare charged in rupees, two-decimal precision.
//  BookedOn – timestamp of issuance.
type Ticket struct {
    TicketID string    `json:"ticket_id"`
    Type     string    `json:"type"`
    Name     string    `json:"passenger_name"`
    Age      int       `json:"passenger_age"`
    Seat     string    `json:"seat_id"`
    Coach    string    `json:"coach"`
    From     string    `json:"from"`
    To       string    `json:"to"`
    Fare     float64   `json:"fare"`
    BookedOn time.Time `json:"booked_on"`
}
