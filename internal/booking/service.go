package booking

import (
    "fmt"
    "strings"
    "sync"
    "time"

    "github.com/iliyamo/railway-ticket-booking/internal/catalog"
    "github.com/iliyamo/railway-ticket-booking/internal/model"
)

// MinPassengerAge and MaxPassengerAge bound the accepted passenger age.
const (
    MinPassengerAge = 0
    MaxPassengerAge = 120
)

// Service orchestrates the seat inventory, ticket ledger and pricing
// behind a single mutual-exclusion boundary.  Every public operation runs
// under one exclusive critical section spanning the whole operation, so
// the externally observable effect is as if all calls were totally
// ordered.  No operation performs I/O or blocks while holding the lock.
//
// A Service is constructed explicitly (one per process, or one per test);
// there are no package-level singletons.
type Service struct {
    mu        sync.Mutex
    catalog   *catalog.Catalog
    inventory *SeatInventory
    ledger    *TicketLedger
    now       func() time.Time
}

// Option customizes a Service at construction time.
type Option func(*Service)

// WithClock overrides the timestamp source used for ticket issuance.
// Tests inject a fixed clock through this option.
func WithClock(now func() time.Time) Option {
    return func(s *Service) { s.now = now }
}

// NewService builds a Service whose inventory is seeded from the given
// catalog, with all seats free and the ticket counter at 1.
func NewService(cat *catalog.Catalog, opts ...Option) (*Service, error) {
    inv, err := NewSeatInventory(cat)
    if err != nil {
        return nil, err
    }
    s := &Service{
        catalog:   cat,
        inventory: inv,
        ledger:    NewTicketLedger(),
        now:       time.Now,
    }
    for _, opt := range opts {
        opt(s)
    }
    return s, nil
}

// Catalog returns the immutable catalog the service was built from.
func (s *Service) Catalog() *catalog.Catalog {
    return s.catalog
}

// BookRequest carries the input of one BookSeat call.  One request books
// exactly one seat; a multi-seat batch is a sequence of independent calls
// and is deliberately not atomic as a whole.
type BookRequest struct {
    SeatID        string
    Coach         string
    From          string
    To            string
    PassengerName string
    PassengerAge  int
}

// BookSeat validates the request, computes the fare, issues a ticket and
// marks the seat booked, all atomically with respect to every other
// service operation.  Validation precedes any mutation, so a failed call
// leaves no state change behind.
//
// Failure modes: ErrInvalidRoute (unknown or equal stations),
// ErrInvalidAge, ErrInvalidName, ErrUnknownCoach, ErrSeatUnavailable
// (seat unknown, already booked, or not part of the requested coach).
func (s *Service) BookSeat(req BookRequest) (model.Ticket, error) {
    if !s.catalog.IsStation(req.From) || !s.catalog.IsStation(req.To) || req.From == req.To {
        return model.Ticket{}, fmt.Errorf("%w: %s -> %s", ErrInvalidRoute, req.From, req.To)
    }
    if req.PassengerAge < MinPassengerAge || req.PassengerAge > MaxPassengerAge {
        return model.Ticket{}, fmt.Errorf("%w: %d", ErrInvalidAge, req.PassengerAge)
    }
    name := strings.TrimSpace(req.PassengerName)
    if name == "" {
        return model.Ticket{}, ErrInvalidName
    }
    cc, ok := s.catalog.ClassByCode(req.Coach)
    if !ok {
        return model.Ticket{}, fmt.Errorf("%w: %s", ErrUnknownCoach, req.Coach)
    }
    // A seat can only be booked in its own coach class; the fare depends
    // on it.
    if !strings.HasPrefix(req.SeatID, cc.Code+"-S") {
        return model.Ticket{}, fmt.Errorf("%w: %s is not a %s seat", ErrSeatUnavailable, req.SeatID, cc.Code)
    }

    s.mu.Lock()
    defer s.mu.Unlock()

    free, err := s.inventory.IsAvailable(req.SeatID)
    if err != nil || !free {
        return model.Ticket{}, fmt.Errorf("%w: %s", ErrSeatUnavailable, req.SeatID)
    }

    t := model.Ticket{
        TicketID: s.ledger.NextTicketID(),
        Type:     model.TicketTypeRegular,
        Name:     name,
        Age:      req.PassengerAge,
        Seat:     req.SeatID,
        Coach:    cc.Code,
        From:     req.From,
        To:       req.To,
        Fare:     Fare(cc, req.PassengerAge),
        BookedOn: s.now(),
    }
    if err := s.ledger.Record(t); err != nil {
        return model.Ticket{}, fmt.Errorf("%w: %w", ErrCorrupted, err)
    }
    if err := s.inventory.MarkBooked(req.SeatID); err != nil {
        return model.Ticket{}, fmt.Errorf("%w: %w", ErrCorrupted, err)
    }
    return t, nil
}

// CancelSeat removes the ticket occupying a seat and marks the seat free,
// atomically with respect to every other operation.  It returns the
// removed ticket.  Failure modes: ErrSeatNotFound for a seat the
// inventory has never heard of, ErrNoBooking for a seat that is free.
func (s *Service) CancelSeat(seatID string) (model.Ticket, error) {
    s.mu.Lock()
    defer s.mu.Unlock()

    if !s.inventory.Has(seatID) {
        return model.Ticket{}, fmt.Errorf("%w: %s", ErrSeatNotFound, seatID)
    }
    t, err := s.ledger.Remove(seatID)
    if err != nil {
        return model.Ticket{}, err
    }
    if err := s.inventory.MarkFree(seatID); err != nil {
        return model.Ticket{}, fmt.Errorf("%w: %w", ErrCorrupted, err)
    }
    return t, nil
}

// GetAvailability returns a snapshot of every seat of a coach class with
// its availability flag, in seat order.  It returns ErrUnknownCoach for a
// class code not in the catalog.
func (s *Service) GetAvailability(classCode string) ([]SeatStatus, error) {
    if _, ok := s.catalog.ClassByCode(classCode); !ok {
        return nil, fmt.Errorf("%w: %s", ErrUnknownCoach, classCode)
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.inventory.StatusByClass(classCode), nil
}

// ListTickets returns every issued ticket in issuance order.  The result
// is a snapshot taken under the lock.
func (s *Service) ListTickets() []model.Ticket {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.ledger.ListAll()
}

// ResetAll marks every seat free, clears the ledger and resets the
// ticket-ID counter to 1.  The reset is unconditional; any confirmation
// belongs to the caller.
func (s *Service) ResetAll() {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.inventory.FreeAll()
    s.ledger.Reset()
}
