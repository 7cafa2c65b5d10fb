package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOpenMeteoFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latitude"); got == "" {
			t.Error("latitude query parameter missing")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"latitude": 52.52,
			"longitude": 13.41,
			"current": {
				"time": "2025-06-01T12:00",
				"pm2_5": 12.5,
				"pm10": 20.0,
				"nitrogen_dioxide": 15.0,
				"sulphur_dioxide": 3.0,
				"carbon_monoxide": 250.0,
				"ozone": 60.0
			}
		}`))
	}))
	defer srv.Close()

	f := NewOpenMeteoFetcher(srv.Client())
	f.baseURL = srv.URL

	reading, err := f.Fetch(context.Background(), 52.52, 13.41)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reading.PM25 != 12.5 {
		t.Errorf("expected pm2.5 12.5, got %v", reading.PM25)
	}
	if reading.CO != 0.25 {
		t.Errorf("expected co converted to 0.25 mg/m³, got %v", reading.CO)
	}
	want := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	if !reading.Timestamp.Equal(want) {
		t.Errorf("expected timestamp %v, got %v", want, reading.Timestamp)
	}
}

func TestOpenMeteoFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewOpenMeteoFetcher(srv.Client())
	f.baseURL = srv.URL

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := f.Fetch(ctx, 0, 0); err == nil {
		t.Fatal("expected error on 404 response")
	}
}
