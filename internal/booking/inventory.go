package booking

import (
    "fmt"

    "github.com/iliyamo/railway-ticket-booking/internal/catalog"
)

// SeatStatus is one (seat ID, availability) pair of an availability
// snapshot.
type SeatStatus struct {
    SeatID    string `json:"seat_id"`
    Available bool   `json:"available"`
}

// SeatInventory tracks the availability flag of every seat.  Entries are
// created once from the catalog and live for the process lifetime; only
// the flag toggles.  The inventory performs no synchronization of its
// own — the owning Service serializes all access behind its lock.
type SeatInventory struct {
    available map[string]bool     // seat ID -> free?
    byClass   map[string][]string // class code -> ordered seat IDs
}

// NewSeatInventory seeds one availability entry per seat ID derived from
// the catalog's coach table.  All seats start free.  It fails only if the
// derivation produces a duplicate seat ID, which indicates an internally
// inconsistent catalog.
func NewSeatInventory(cat *catalog.Catalog) (*SeatInventory, error) {
    inv := &SeatInventory{
        available: make(map[string]bool),
        byClass:   make(map[string][]string),
    }
    for _, cc := range cat.Classes() {
        ids := cat.SeatIDs(cc)
        for _, id := range ids {
            if _, dup := inv.available[id]; dup {
                return nil, fmt.Errorf("inventory: duplicate seat ID %q", id)
            }
            inv.available[id] = true
        }
        inv.byClass[cc.Code] = ids
    }
    return inv, nil
}

// Has reports whether the seat ID exists in the inventory.
func (inv *SeatInventory) Has(seatID string) bool {
    _, ok := inv.available[seatID]
    return ok
}

// IsAvailable reports whether the seat is currently free.  It returns
// ErrSeatNotFound when the seat ID is unknown.
func (inv *SeatInventory) IsAvailable(seatID string) (bool, error) {
    free, ok := inv.available[seatID]
    if !ok {
        return false, fmt.Errorf("%w: %s", ErrSeatNotFound, seatID)
    }
    return free, nil
}

// ListAvailable returns the currently free seat IDs of a coach class in
// seat order.  The result is a snapshot taken at call time, not a live
// view; an unknown class code yields an empty slice.
func (inv *SeatInventory) ListAvailable(classCode string) []string {
    ids := inv.byClass[classCode]
    out := make([]string, 0, len(ids))
    for _, id := range ids {
        if inv.available[id] {
            out = append(out, id)
        }
    }
    return out
}

// StatusByClass returns a snapshot of every seat of a coach class with its
// availability flag, in seat order.  An unknown class yields an empty
// slice.
func (inv *SeatInventory) StatusByClass(classCode string) []SeatStatus {
    ids := inv.byClass[classCode]
    out := make([]SeatStatus, 0, len(ids))
    for _, id := range ids {
        out = append(out, SeatStatus{SeatID: id, Available: inv.available[id]})
    }
    return out
}

// MarkBooked flips a seat from free to booked.  It returns ErrSeatNotFound
// for an unknown seat and ErrAlreadyBooked if the seat is already booked;
// the latter signals a caller bug, since the service checks availability
// first under the same lock.
func (inv *SeatInventory) MarkBooked(seatID string) error {
    free, ok := inv.available[seatID]
    if !ok {
        return fmt.Errorf("%w: %s", ErrSeatNotFound, seatID)
    }
    if !free {
        return fmt.Errorf("%w: %s", ErrAlreadyBooked, seatID)
    }
    inv.available[seatID] = false
    return nil
}

// MarkFree flips a seat from booked to free.  It returns ErrSeatNotFound
// for an unknown seat and ErrAlreadyFree if the seat is already free.
func (inv *SeatInventory) MarkFree(seatID string) error {
    free, ok := inv.available[seatID]
    if !ok {
        return fmt.Errorf("%w: %s", ErrSeatNotFound, seatID)
    }
    if free {
        return fmt.Errorf("%w: %s", ErrAlreadyFree, seatID)
    }
    inv.available[seatID] = true
    return nil
}

// FreeAll marks every seat free.  Used by the administrative reset.
func (inv *SeatInventory) FreeAll() {
    for id := range inv.available {
        inv.available[id] = true
    }
}
