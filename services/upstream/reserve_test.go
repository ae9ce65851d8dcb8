package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"seatwise/models"
)

func testClient(server *httptest.Server) *Client {
	return &Client{
		http:            server.Client(),
		reservationBase: server.URL,
		directoryBase:   server.URL,
		logger:          zap.NewNop(),
	}
}

func TestReserve_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reserve/seat-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"successMessage":"Reservation confirmed"}`))
	}))
	defer server.Close()

	outcome, err := testClient(server).Reserve(context.Background(), "student@example.com", "2026-09-01", "09:00", "13:00", "seat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.OK || outcome.Message != "Reservation confirmed" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if gotBody["email"] != "student@example.com" || gotBody["start_time"] != "09:00" {
		t.Fatalf("unexpected request payload: %v", gotBody)
	}
	if gotBody["person_count"] != float64(1) {
		t.Fatalf("person_count must be 1, got %v", gotBody["person_count"])
	}
}

func TestReserve_ConfirmationRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errorMessage":"Email not verified: please confirm your email"}`))
	}))
	defer server.Close()

	outcome, err := testClient(server).Reserve(context.Background(), "student@example.com", "2026-09-01", "09:00", "13:00", "seat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.OK {
		t.Fatal("rejection must not be OK")
	}
	if outcome.ErrorKind != models.ErrorKindEmailConfirmationRequired {
		t.Fatalf("expected confirmation-required kind, got %q", outcome.ErrorKind)
	}
}

func TestReserve_GenericRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errorMessage":"Seat already taken"}`))
	}))
	defer server.Close()

	outcome, err := testClient(server).Reserve(context.Background(), "student@example.com", "2026-09-01", "09:00", "13:00", "seat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.OK || outcome.ErrorKind != "" || outcome.Message != "Seat already taken" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestIsEmailConfirmationMessage(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Email not verified", true},
		{"EMAIL HAS NOT BEEN CONFIRMED", true},
		{"Please verify your email address", true},
		{"please confirm your email to continue", true},
		{"Email validation required", true},
		{"Unverified email on file", true},
		{"Seat already taken", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsEmailConfirmationMessage(tt.message); got != tt.want {
			t.Fatalf("IsEmailConfirmationMessage(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
