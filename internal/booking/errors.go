// Package booking implements the seat inventory and ticket ledger behind
// the booking workflow.  This file defines the sentinel error values that
// the service returns to callers.  Handlers match on them with errors.Is
// to pick HTTP status codes; the core itself never formats user-facing
// messages.
package booking

import "errors"

// ErrInvalidRoute is returned when the origin and destination stations are
// equal, or when either is not part of the station enumeration.
var ErrInvalidRoute = errors.New("invalid route")

// ErrInvalidAge is returned when the passenger age is outside 0–120.
var ErrInvalidAge = errors.New("invalid age")

// ErrInvalidName is returned when the passenger name is empty or blank.
var ErrInvalidName = errors.New("invalid name")

// ErrUnknownCoach is returned when a coach class code is not part of the
// catalog.
var ErrUnknownCoach = errors.New("unknown coach class")

// ErrSeatNotFound is returned when a seat ID does not exist in the
// inventory at all.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatUnavailable is returned when a booking targets a seat that is
// already booked, or that does not belong to the requested coach class.
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrNoBooking is returned when a cancellation targets a seat that exists
// but has no ticket associated with it.
var ErrNoBooking = errors.New("no booking for seat")

// The following errors signal internal consistency violations.  Under
// correct orchestration they can never surface: the service validates
// availability before mutating state while holding its lock.  They are
// defensive checks against a caller bug, not user errors, and the service
// wraps them in ErrCorrupted rather than swallowing them.

// ErrDuplicateSeat is returned by the ledger when a ticket is recorded for
// a seat that already has an associated ticket.
var ErrDuplicateSeat = errors.New("seat already has a ticket")

// ErrAlreadyBooked is returned by the inventory when a seat is marked
// booked twice.
var ErrAlreadyBooked = errors.New("seat already booked")

// ErrAlreadyFree is returned by the inventory when a seat is marked free
// twice.
var ErrAlreadyFree = errors.New("seat already free")

// ErrCorrupted wraps any internal consistency violation detected during an
// operation.  It indicates a programming defect in the service itself and
// is fatal-class: callers should treat it as an internal error, never as
// bad user input.
var ErrCorrupted = errors.New("booking state corrupted")
