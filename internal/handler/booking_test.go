package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-booking/internal/booking"
	"github.com/iliyamo/railway-ticket-booking/internal/catalog"
	"github.com/iliyamo/railway-ticket-booking/internal/queue"
)

// eventRecorder captures published events so tests can assert on them
// without a running broker.
type eventRecorder struct {
	mu        sync.Mutex
	issued    []queue.TicketIssuedEvent
	cancelled []queue.TicketCancelledEvent
	wg        sync.WaitGroup
}

func (r *eventRecorder) recordIssued(_ context.Context, ev queue.TicketIssuedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued = append(r.issued, ev)
	r.wg.Done()
	return nil
}

func (r *eventRecorder) recordCancelled(_ context.Context, ev queue.TicketCancelledEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, ev)
	r.wg.Done()
	return nil
}

func newTestHandler(t *testing.T) (*BookingHandler, *eventRecorder) {
	t.Helper()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	svc, err := booking.NewService(catalog.Default(), booking.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("expected no error building service, got %v", err)
	}
	rec := &eventRecorder{}
	h := NewBookingHandler(svc)
	h.PublishIssued = rec.recordIssued
	h.PublishCancelled = rec.recordCancelled
	return h, rec
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newTestServer(t *testing.T) (*echo.Echo, *BookingHandler, *eventRecorder) {
	t.Helper()
	h, events := newTestHandler(t)
	e := echo.New()
	e.GET("/v1/stations", h.GetStations)
	e.GET("/v1/coaches", h.GetCoaches)
	e.GET("/v1/coaches/:code/seats", h.GetAvailability)
	e.POST("/v1/bookings", h.BookSeat)
	e.DELETE("/v1/bookings/:seatID", h.CancelSeat)
	e.GET("/v1/tickets", h.ListTickets)
	e.POST("/v1/admin/reset", h.ResetAll)
	return e, h, events
}

const aliceBody = `{"seat_id":"1AC-S1","coach":"1AC","from":"Bangalore","to":"Chennai","passenger_name":"Alice","passenger_age":10}`

func TestBookSeatEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("books a seat, returns 201 and publishes an event", func(t *testing.T) {
		e, _, events := newTestServer(t)
		events.wg.Add(1)

		rec := doJSON(e, http.MethodPost, "/v1/bookings", aliceBody)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
		}
		var resp struct {
			TicketID string  `json:"ticket_id"`
			Fare     float64 `json:"fare"`
			SeatID   string  `json:"seat_id"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("expected valid JSON, got %v", err)
		}
		if resp.TicketID != "T001" || resp.Fare != 2000 || resp.SeatID != "1AC-S1" {
			t.Fatalf("unexpected response: %+v", resp)
		}

		events.wg.Wait()
		events.mu.Lock()
		defer events.mu.Unlock()
		if len(events.issued) != 1 || events.issued[0].TicketID != "T001" {
			t.Fatalf("expected one issued event for T001, got %+v", events.issued)
		}
	})

	t.Run("double booking returns 409", func(t *testing.T) {
		e, _, events := newTestServer(t)
		events.wg.Add(1)
		if rec := doJSON(e, http.MethodPost, "/v1/bookings", aliceBody); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		events.wg.Wait()
		if rec := doJSON(e, http.MethodPost, "/v1/bookings", aliceBody); rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		e, _, _ := newTestServer(t)
		cases := map[string]string{
			"same stations": `{"seat_id":"1AC-S1","coach":"1AC","from":"Delhi","to":"Delhi","passenger_name":"Alice","passenger_age":10}`,
			"bad age":       `{"seat_id":"1AC-S1","coach":"1AC","from":"Delhi","to":"Kolkata","passenger_name":"Alice","passenger_age":130}`,
			"blank name":    `{"seat_id":"1AC-S1","coach":"1AC","from":"Delhi","to":"Kolkata","passenger_name":" ","passenger_age":10}`,
		}
		for name, body := range cases {
			if rec := doJSON(e, http.MethodPost, "/v1/bookings", body); rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d (%s)", name, rec.Code, rec.Body.String())
			}
		}
	})

	t.Run("unknown coach returns 404", func(t *testing.T) {
		e, _, _ := newTestServer(t)
		body := `{"seat_id":"9AC-S1","coach":"9AC","from":"Delhi","to":"Kolkata","passenger_name":"Alice","passenger_age":10}`
		if rec := doJSON(e, http.MethodPost, "/v1/bookings", body); rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d (%s)", rec.Code, rec.Body.String())
		}
	})
}

func TestCancelSeatEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("cancels a booked seat and publishes an event", func(t *testing.T) {
		e, _, events := newTestServer(t)
		events.wg.Add(2) // one issued, one cancelled
		if rec := doJSON(e, http.MethodPost, "/v1/bookings", aliceBody); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		rec := doJSON(e, http.MethodDelete, "/v1/bookings/1AC-S1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		var resp struct {
			TicketID string `json:"ticket_id"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("expected valid JSON, got %v", err)
		}
		if resp.TicketID != "T001" {
			t.Fatalf("expected the issued ticket back, got %+v", resp)
		}

		events.wg.Wait()
		events.mu.Lock()
		defer events.mu.Unlock()
		if len(events.cancelled) != 1 || events.cancelled[0].SeatID != "1AC-S1" {
			t.Fatalf("expected one cancelled event for 1AC-S1, got %+v", events.cancelled)
		}
	})

	t.Run("unknown seat returns 404", func(t *testing.T) {
		e, _, _ := newTestServer(t)
		if rec := doJSON(e, http.MethodDelete, "/v1/bookings/9AC-S1", ""); rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("free seat returns 404", func(t *testing.T) {
		e, _, _ := newTestServer(t)
		if rec := doJSON(e, http.MethodDelete, "/v1/bookings/1AC-S1", ""); rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAvailabilityEndpoint(t *testing.T) {
	t.Parallel()

	e, _, events := newTestServer(t)
	events.wg.Add(1)
	if rec := doJSON(e, http.MethodPost, "/v1/bookings", aliceBody); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	events.wg.Wait()

	rec := doJSON(e, http.MethodGet, "/v1/coaches/1AC/seats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Coach     string               `json:"coach"`
		Available int                  `json:"available"`
		Items     []booking.SeatStatus `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if resp.Coach != "1AC" || resp.Available != 9 || len(resp.Items) != 10 {
		t.Fatalf("unexpected availability response: coach=%s available=%d items=%d", resp.Coach, resp.Available, len(resp.Items))
	}
	if resp.Items[0].SeatID != "1AC-S1" || resp.Items[0].Available {
		t.Fatalf("expected 1AC-S1 to be reported booked, got %+v", resp.Items[0])
	}

	if rec := doJSON(e, http.MethodGet, "/v1/coaches/9AC/seats", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown coach, got %d", rec.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	t.Parallel()

	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/stations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stations struct {
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stations); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if len(stations.Items) != 6 || stations.Items[0] != "Bangalore" {
		t.Fatalf("unexpected stations: %v", stations.Items)
	}

	rec = doJSON(e, http.MethodGet, "/v1/coaches", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var coaches struct {
		Items []catalog.CoachClass `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &coaches); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if len(coaches.Items) != 4 || coaches.Items[0].Code != "1AC" || coaches.Items[0].BaseFare != 4000 {
		t.Fatalf("unexpected coaches: %+v", coaches.Items)
	}
}

func TestResetEndpoint(t *testing.T) {
	t.Parallel()

	e, _, events := newTestServer(t)
	events.wg.Add(1)
	if rec := doJSON(e, http.MethodPost, "/v1/bookings", aliceBody); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	events.wg.Wait()

	if rec := doJSON(e, http.MethodPost, "/v1/admin/reset", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/v1/tickets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var tickets struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tickets); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if len(tickets.Items) != 0 {
		t.Fatalf("expected no tickets after reset, got %d", len(tickets.Items))
	}

	// The counter restarts: the next booking gets T001 again.
	events.wg.Add(1)
	rec = doJSON(e, http.MethodPost, "/v1/bookings", aliceBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp struct {
		TicketID string `json:"ticket_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if resp.TicketID != "T001" {
		t.Fatalf("expected T001 after reset, got %s", resp.TicketID)
	}
	events.wg.Wait()
}
