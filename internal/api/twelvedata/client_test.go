package twelvedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleResponse = `{
	"meta": {"symbol": "XAU/USD", "interval": "15min"},
	"values": [
		{"datetime": "2025-08-29 10:00:00", "open": "3400.10", "high": "3402.00", "low": "3399.50", "close": "3401.25"},
		{"datetime": "2025-08-29 10:30:00", "open": "3401.90", "high": "3405.00", "low": "3401.00", "close": "3404.75"},
		{"datetime": "2025-08-29 10:15:00", "open": "3401.25", "high": "3403.10", "low": "3400.80", "close": "3401.90"}
	],
	"status": "ok"
}`

func TestGetCandlesNewestFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "XAU/USD" {
			t.Errorf("symbol query = %q, want XAU/USD", got)
		}
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{APIKey: "test", BaseURL: srv.URL})

	candles, err := client.GetCandles(context.Background(), "XAU/USD", "15min", 3)
	if err != nil {
		t.Fatalf("GetCandles() error = %v", err)
	}
	if len(candles) != 3 {
		t.Fatalf("GetCandles() returned %d candles, want 3", len(candles))
	}

	// Index 0 must be the latest bar regardless of payload order.
	if candles[0].Datetime != "2025-08-29 10:30:00" {
		t.Errorf("candles[0].Datetime = %q, want the 10:30 bar", candles[0].Datetime)
	}
	if candles[0].Close != 3404.75 {
		t.Errorf("candles[0].Close = %v, want 3404.75", candles[0].Close)
	}
	if candles[2].Datetime != "2025-08-29 10:00:00" {
		t.Errorf("candles[2].Datetime = %q, want the 10:00 bar", candles[2].Datetime)
	}
}

func TestGetCandlesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"symbol not found"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{APIKey: "test", BaseURL: srv.URL})

	if _, err := client.GetCandles(context.Background(), "NOPE", "15min", 3); err == nil {
		t.Fatal("GetCandles() returned nil error for an error payload")
	}
}

func TestGetCandlesEmptySeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{},"values":[],"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{APIKey: "test", BaseURL: srv.URL})

	if _, err := client.GetCandles(context.Background(), "XAU/USD", "15min", 3); err == nil {
		t.Fatal("GetCandles() returned nil error for an empty series")
	}
}
