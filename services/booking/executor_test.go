package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"seatwise/models"
)

// scriptedClient replays canned outcomes and records call order.
type scriptedClient struct {
	outcomes map[string]models.ReserveOutcome
	errs     map[string]error
	calls    []string
	onCall   func(seatID string)
}

func (c *scriptedClient) Reserve(ctx context.Context, email, date, startTime, endTime, seatID string) (models.ReserveOutcome, error) {
	c.calls = append(c.calls, seatID)
	if c.onCall != nil {
		c.onCall(seatID)
	}
	if err, ok := c.errs[seatID]; ok {
		return models.ReserveOutcome{}, err
	}
	if outcome, ok := c.outcomes[seatID]; ok {
		return outcome, nil
	}
	return models.ReserveOutcome{OK: true, Message: "booked"}, nil
}

func bookingFor(seatID string, start, end string) models.ConsolidatedBooking {
	return models.ConsolidatedBooking{
		SeatID:    seatID,
		SeatName:  "Seat " + seatID,
		Date:      "2026-09-01",
		StartTime: start,
		EndTime:   end,
	}
}

func TestExecute_OrderPreserved(t *testing.T) {
	client := &scriptedClient{outcomes: map[string]models.ReserveOutcome{}}
	executor := NewPacedBookingExecutor(client, time.Millisecond)

	bookings := []models.ConsolidatedBooking{
		bookingFor("b1", "09:00", "11:00"),
		bookingFor("b2", "11:00", "13:00"),
		bookingFor("b3", "13:00", "15:00"),
	}
	report := executor.Execute(context.Background(), bookings, "student@example.com")

	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	for i, r := range report.Results {
		if want := fmt.Sprintf("Seat b%d", i+1); r.SeatName != want {
			t.Fatalf("result %d out of order: got %q, want %q", i, r.SeatName, want)
		}
	}
	if !report.AllSucceeded {
		t.Fatal("expected AllSucceeded")
	}
	if report.RunID == "" {
		t.Fatal("expected a run id")
	}
}

func TestExecute_PartialFailureIsIsolated(t *testing.T) {
	client := &scriptedClient{
		outcomes: map[string]models.ReserveOutcome{
			"b2": {
				OK:        false,
				Message:   "Please confirm your email before booking",
				ErrorKind: models.ErrorKindEmailConfirmationRequired,
			},
		},
	}
	executor := NewPacedBookingExecutor(client, time.Millisecond)

	bookings := []models.ConsolidatedBooking{
		bookingFor("b1", "09:00", "11:00"),
		bookingFor("b2", "11:00", "13:00"),
		bookingFor("b3", "13:00", "15:00"),
	}
	report := executor.Execute(context.Background(), bookings, "student@example.com")

	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if len(client.calls) != 3 {
		t.Fatalf("a failed booking must not stop the sequence; %d calls made", len(client.calls))
	}
	if report.AllSucceeded {
		t.Fatal("AllSucceeded must be false on partial failure")
	}
	if !report.Results[0].Succeeded || !report.Results[2].Succeeded {
		t.Fatal("bookings 1 and 3 should succeed independently")
	}
	failed := report.Results[1]
	if failed.Succeeded || failed.ErrorKind != models.ErrorKindEmailConfirmationRequired {
		t.Fatalf("unexpected failed result: %+v", failed)
	}
}

func TestExecute_TransportErrorBecomesResult(t *testing.T) {
	client := &scriptedClient{errs: map[string]error{"b1": fmt.Errorf("connection reset")}}
	executor := NewPacedBookingExecutor(client, time.Millisecond)

	report := executor.Execute(context.Background(), []models.ConsolidatedBooking{
		bookingFor("b1", "09:00", "11:00"),
	}, "student@example.com")

	if len(report.Results) != 1 || report.Results[0].Succeeded {
		t.Fatalf("expected one failed result, got %+v", report.Results)
	}
	if report.Results[0].Message != "connection reset" {
		t.Fatalf("raw transport error should be surfaced, got %q", report.Results[0].Message)
	}
}

func TestExecute_CancellationStopsFurtherDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &scriptedClient{onCall: func(string) { cancel() }}
	executor := NewPacedBookingExecutor(client, time.Minute) // long pacing: next Wait must observe the cancel

	bookings := []models.ConsolidatedBooking{
		bookingFor("b1", "09:00", "11:00"),
		bookingFor("b2", "11:00", "13:00"),
		bookingFor("b3", "13:00", "15:00"),
	}
	report := executor.Execute(ctx, bookings, "student@example.com")

	if len(client.calls) != 1 {
		t.Fatalf("expected only the in-flight call to complete, got %d calls", len(client.calls))
	}
	// Every submitted booking still gets exactly one result.
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if !report.Results[0].Succeeded {
		t.Fatal("the dispatched call should have completed")
	}
	for _, r := range report.Results[1:] {
		if r.Succeeded {
			t.Fatal("undispatched bookings must not be marked successful")
		}
	}
	if report.AllSucceeded {
		t.Fatal("a cancelled run is not a full success")
	}
}

func TestExecute_EmptyRun(t *testing.T) {
	executor := NewPacedBookingExecutor(&scriptedClient{}, time.Millisecond)
	report := executor.Execute(context.Background(), nil, "student@example.com")
	if len(report.Results) != 0 || report.AllSucceeded {
		t.Fatalf("empty run should report nothing succeeded: %+v", report)
	}
}

// blockingClient simulates service latency and honors context
// cancellation the way a real HTTP client does.
type blockingClient struct {
	latency time.Duration
	calls   []string
	onCall  func(seatID string)
}

func (c *blockingClient) Reserve(ctx context.Context, email, date, startTime, endTime, seatID string) (models.ReserveOutcome, error) {
	c.calls = append(c.calls, seatID)
	if c.onCall != nil {
		c.onCall(seatID)
	}
	select {
	case <-ctx.Done():
		return models.ReserveOutcome{}, ctx.Err()
	case <-time.After(c.latency):
		return models.ReserveOutcome{OK: true, Message: "booked"}, nil
	}
}

func TestExecute_InFlightCallSurvivesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &blockingClient{latency: 30 * time.Millisecond}
	client.onCall = func(string) { cancel() } // cancel while the call is in flight
	executor := NewPacedBookingExecutor(client, time.Minute)

	bookings := []models.ConsolidatedBooking{
		bookingFor("b1", "09:00", "11:00"),
		bookingFor("b2", "11:00", "13:00"),
	}
	report := executor.Execute(ctx, bookings, "student@example.com")

	if len(client.calls) != 1 {
		t.Fatalf("expected exactly the in-flight call, got %d", len(client.calls))
	}
	if !report.Results[0].Succeeded {
		t.Fatalf("dispatched call must run to completion despite cancellation: %+v", report.Results[0])
	}
	if len(report.Results) != 2 || report.Results[1].Succeeded {
		t.Fatalf("second booking must be reported as not dispatched: %+v", report.Results)
	}
	if report.AllSucceeded {
		t.Fatal("a cancelled run is not a full success")
	}
}
