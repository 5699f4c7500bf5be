// Package catalog holds the fixed coach and station configuration of the
// railway.  The catalog is assembled once at startup and never mutated
// afterwards; every other component treats it as read-only.
package catalog

import (
    "fmt"
)

// CoachClass describes one fare/seat-count tier of the train.
//
// Fields:
//  Code      – class code used as the seat-ID prefix (e.g. "1AC", "GEN").
//  SeatCount – number of seats in the coach; fixed for the process lifetime.
//  BaseFare  – full adult fare in rupees for this class.
type CoachClass struct {
    Code      string  `json:"code"`
    SeatCount int     `json:"seat_count"`
    BaseFare  float64 `json:"base_fare"`
}

// Catalog is the immutable seat and station configuration.  Coach classes
// keep their declaration order so seat listings are deterministic.
type Catalog struct {
    classes  []CoachClass
    byCode   map[string]CoachClass
    stations []string
    byName   map[string]struct{}
}

// New validates the given coach classes and stations and builds a Catalog.
// It fails on duplicate class codes, non-positive seat counts or fares,
// duplicate stations, or fewer than two stations (a route needs two
// distinct endpoints).
func New(classes []CoachClass, stations []string) (*Catalog, error) {
    if len(classes) == 0 {
        return nil, fmt.Errorf("catalog: no coach classes defined")
    }
    if len(stations) < 2 {
        return nil, fmt.Errorf("catalog: need at least two stations, got %d", len(stations))
    }
    byCode := make(map[string]CoachClass, len(classes))
    for _, cc := range classes {
        if cc.Code == "" {
            return nil, fmt.Errorf("catalog: empty coach class code")
        }
        if _, dup := byCode[cc.Code]; dup {
            return nil, fmt.Errorf("catalog: duplicate coach class %q", cc.Code)
        }
        if cc.SeatCount <= 0 {
            return nil, fmt.Errorf("catalog: coach %q has invalid seat count %d", cc.Code, cc.SeatCount)
        }
        if cc.BaseFare <= 0 {
            return nil, fmt.Errorf("catalog: coach %q has invalid base fare %v", cc.Code, cc.BaseFare)
        }
        byCode[cc.Code] = cc
    }
    byName := make(map[string]struct{}, len(stations))
    for _, st := range stations {
        if st == "" {
            return nil, fmt.Errorf("catalog: empty station name")
        }
        if _, dup := byName[st]; dup {
            return nil, fmt.Errorf("catalog: duplicate station %q", st)
        }
        byName[st] = struct{}{}
    }
    return &Catalog{
        classes:  append([]CoachClass(nil), classes...),
        byCode:   byCode,
        stations: append([]string(nil), stations...),
        byName:   byName,
    }, nil
}

// Default returns the standard train configuration: four coach classes and
// six stations.
func Default() *Catalog {
    cat, err := New(
        []CoachClass{
            {Code: "1AC", SeatCount: 10, BaseFare: 4000},
            {Code: "2AC", SeatCount: 20, BaseFare: 2500},
            {Code: "3AC", SeatCount: 30, BaseFare: 1000},
            {Code: "GEN", SeatCount: 40, BaseFare: 500},
        },
        []string{"Bangalore", "Chennai", "Mumbai", "Hyderabad", "Delhi", "Kolkata"},
    )
    if err != nil {
        // The default tables are compile-time constants; New can only fail
        // on a programming error in this file.
        panic(err)
    }
    return cat
}

// SeatID derives the seat identifier for seat n of a coach class, e.g.
// SeatID("2AC", 5) == "2AC-S5".  Seat numbering starts at 1.
func SeatID(classCode string, n int) string {
    return fmt.Sprintf("%s-S%d", classCode, n)
}

// Classes returns the coach classes in declaration order.  The returned
// slice is a copy and safe for the caller to retain.
func (c *Catalog) Classes() []CoachClass {
    return append([]CoachClass(nil), c.classes...)
}

// ClassByCode looks up a coach class by its code.  The second return value
// reports whether the code is known.
func (c *Catalog) ClassByCode(code string) (CoachClass, bool) {
    cc, ok := c.byCode[code]
    return cc, ok
}

// SeatIDs returns the ordered seat identifiers of a coach class, seat 1
// through SeatCount.
func (c *Catalog) SeatIDs(cc CoachClass) []string {
    ids := make([]string, 0, cc.SeatCount)
    for i := 1; i <= cc.SeatCount; i++ {
        ids = append(ids, SeatID(cc.Code, i))
    }
    return ids
}

// Stations returns the station enumeration in declaration order.  The
// returned slice is a copy and safe for the caller to retain.
func (c *Catalog) Stations() []string {
    return append([]string(nil), c.stations...)
}

// IsStation reports whether name is part of the station enumeration.
func (c *Catalog) IsStation(name string) bool {
    _, ok := c.byName[name]
    return ok
}
