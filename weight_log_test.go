package main

import (
	"net/http"
	"testing"

	"lg/nutrichef-api/internal/nutrition"
)

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{"valid", "2026-10-01", "2026-10-14", false},
		{"single day", "2026-10-05", "2026-10-05", false},
		{"missing start", "", "2026-10-14", true},
		{"missing end", "2026-10-01", "", true},
		{"invalid start", "10/01/2026", "2026-10-14", true},
		{"invalid end", "2026-10-01", "2026-13-01", true},
		{"start after end", "2026-10-14", "2026-10-01", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseDateRange(tc.start, tc.end); (got != "") != tc.wantErr {
				t.Errorf("parseDateRange(%q, %q) = %q, wantErr %v", tc.start, tc.end, got, tc.wantErr)
			}
		})
	}
}

// The handler tests below run with no database: every case is rejected
// before a query is issued.

func TestGetWeightLog_BadRange(t *testing.T) {
	h := &Handler{engine: nutrition.New()}
	paths := []string{
		"/api/weight-log",
		"/api/weight-log?start=2026-10-01",
		"/api/weight-log?start=bad&end=2026-10-14",
		"/api/weight-log?start=2026-10-01&end=bad",
		"/api/weight-log?start=2026-10-14&end=2026-10-01",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := serveAsUser(1, "GET", path, "/api/weight-log", "", h.getWeightLog)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpsertWeightEntry_Validation(t *testing.T) {
	h := &Handler{engine: nutrition.New()}
	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"weightKg":`},
		{"zero weight", `{"date":"2026-10-12","weightKg":0}`},
		{"negative weight", `{"date":"2026-10-12","weightKg":-4}`},
		{"too heavy", `{"date":"2026-10-12","weightKg":500.5}`},
		{"missing weight", `{"date":"2026-10-12"}`},
		{"bad date", `{"date":"12-10-2026","weightKg":72}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveAsUser(1, "POST", "/api/weight-log", "/api/weight-log", tc.body, h.upsertWeightEntry)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestDeleteWeightEntry_BadID(t *testing.T) {
	h := &Handler{engine: nutrition.New()}
	w := serveAsUser(1, "DELETE", "/api/weight-log/x1", "/api/weight-log/:id", "", h.deleteWeightEntry)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
