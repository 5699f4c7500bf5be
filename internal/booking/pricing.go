package booking

import (
    "math"

    "github.com/iliyamo/railway-ticket-booking/internal/catalog"
)

// ChildAgeLimit is the inclusive age up to which the half fare applies.
const ChildAgeLimit = 15

// fareScale fixes the currency precision at two decimal places.
const fareScale = 100

// Fare computes the fare for a passenger of the given age travelling in
// the given coach class: the full base fare, halved for passengers aged
// ChildAgeLimit or younger.  The half fare is rounded to the currency
// precision.  Fare is a pure function and holds no state.
func Fare(cc catalog.CoachClass, age int) float64 {
    if age <= ChildAgeLimit {
        return math.Round(cc.BaseFare/2*fareScale) / fareScale
    }
    return cc.BaseFare
}
