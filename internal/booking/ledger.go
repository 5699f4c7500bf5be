package booking

import (
    "fmt"

    "github.com/iliyamo/railway-ticket-booking/internal/model"
)

// TicketLedger owns the set of issued tickets, the seat→ticket
// association and the monotonic ticket-ID counter.  Tickets are kept in
// issuance order.  Like the inventory, the ledger carries no lock of its
// own; the owning Service serializes all access.
type TicketLedger struct {
    tickets []model.Ticket          // issued tickets in insertion order
    bySeat  map[string]model.Ticket // seat ID -> ticket occupying it
    counter int                     // next ticket sequence number
}

// NewTicketLedger returns an empty ledger with the counter at 1.
func NewTicketLedger() *TicketLedger {
    return &TicketLedger{
        bySeat:  make(map[string]model.Ticket),
        counter: 1,
    }
}

// NextTicketID returns the next ticket identifier ("T" plus a zero-padded
// three-digit sequence) and advances the counter.  Callers must hold the
// service lock so concurrent bookings never observe duplicate IDs.
func (l *TicketLedger) NextTicketID() string {
    id := fmt.Sprintf("T%03d", l.counter)
    l.counter++
    return id
}

// Record appends a ticket to the ledger and establishes its seat
// association.  It returns ErrDuplicateSeat if the seat already has a
// ticket; the service prevents this upstream, so a failure here signals a
// caller bug.
func (l *TicketLedger) Record(t model.Ticket) error {
    if _, occupied := l.bySeat[t.Seat]; occupied {
        return fmt.Errorf("%w: %s", ErrDuplicateSeat, t.Seat)
    }
    l.tickets = append(l.tickets, t)
    l.bySeat[t.Seat] = t
    return nil
}

// Remove deletes and returns the ticket associated with a seat.  It
// returns ErrNoBooking if no ticket occupies the seat.
func (l *TicketLedger) Remove(seatID string) (model.Ticket, error) {
    t, ok := l.bySeat[seatID]
    if !ok {
        return model.Ticket{}, fmt.Errorf("%w: %s", ErrNoBooking, seatID)
    }
    delete(l.bySeat, seatID)
    for i := range l.tickets {
        if l.tickets[i].TicketID == t.TicketID {
            l.tickets = append(l.tickets[:i], l.tickets[i+1:]...)
            break
        }
    }
    return t, nil
}

// TicketBySeat returns the ticket occupying a seat, if any.
func (l *TicketLedger) TicketBySeat(seatID string) (model.Ticket, bool) {
    t, ok := l.bySeat[seatID]
    return t, ok
}

// ListAll returns the issued tickets in insertion order.  The result is a
// copy taken under the service lock and is safe to iterate without
// further synchronization.
func (l *TicketLedger) ListAll() []model.Ticket {
    return append([]model.Ticket(nil), l.tickets...)
}

// Len returns the number of currently issued tickets.
func (l *TicketLedger) Len() int {
    return len(l.tickets)
}

// Reset discards every ticket and seat association and resets the counter
// to 1.  Part of the administrative reset.
func (l *TicketLedger) Reset() {
    l.tickets = nil
    l.bySeat = make(map[string]model.Ticket)
    l.counter = 1
}
