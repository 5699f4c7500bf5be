package booking

import (
	"testing"

	"github.com/iliyamo/railway-ticket-booking/internal/catalog"
)

func TestFare(t *testing.T) {
	t.Parallel()

	firstClass := catalog.CoachClass{Code: "1AC", SeatCount: 10, BaseFare: 4000}
	general := catalog.CoachClass{Code: "GEN", SeatCount: 40, BaseFare: 500}

	t.Run("full fare above the child age limit", func(t *testing.T) {
		for _, age := range []int{16, 40, 120} {
			if got := Fare(firstClass, age); got != 4000 {
				t.Fatalf("age %d: expected fare 4000, got %v", age, got)
			}
		}
	})

	t.Run("half fare up to and including the child age limit", func(t *testing.T) {
		for _, age := range []int{0, 10, 15} {
			if got := Fare(firstClass, age); got != 2000 {
				t.Fatalf("age %d: expected fare 2000, got %v", age, got)
			}
			if got := Fare(general, age); got != 250 {
				t.Fatalf("age %d: expected fare 250, got %v", age, got)
			}
		}
	})

	t.Run("half fare rounds to two decimals", func(t *testing.T) {
		odd := catalog.CoachClass{Code: "ODD", SeatCount: 1, BaseFare: 333.33}
		if got := Fare(odd, 10); got != 166.67 {
			t.Fatalf("expected rounded half fare 166.67, got %v", got)
		}
	})
}
