// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
	}{
		{"generates when absent", ""},
		{"propagates upstream id", "upstream-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seenLogging, seenChi string
			var correlation string
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenLogging = logging.RequestIDFromContext(r.Context())
				seenChi = GetRequestID(r)
				correlation = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			echoed := rec.Header().Get(RequestIDHeader)
			if echoed == "" {
				t.Fatal("response missing X-Request-ID")
			}
			if tt.incoming != "" && echoed != tt.incoming {
				t.Errorf("X-Request-ID = %q, want %q", echoed, tt.incoming)
			}
			if seenLogging != echoed || seenChi != echoed {
				t.Errorf("context ids = %q/%q, want %q", seenLogging, seenChi, echoed)
			}
			if len(correlation) != 8 {
				t.Errorf("correlation id = %q, want 8 chars", correlation)
			}
		})
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/search/{query}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/search/{query}", "200")
	before := testutil.ToFloat64(counter)

	for _, q := range []string{"naruto", "bleach", "one%20piece"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search/"+q, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("api_requests_total{/search/{query}} delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != 0 {
		t.Errorf("api_active_requests = %v after requests finished, want 0", got)
	}
}

func TestPrometheusMetrics_RecordsStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Post("/recommend", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("POST", "/recommend", "400")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommend", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("api_requests_total{400} delta = %v, want 1", got)
	}
}

func TestRouteLabel_Unmatched(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched 404 delta = %v, want 1", got)
	}
}

func TestPerformanceMonitor_Window(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(3, time.Second)
	for i := 1; i <= 5; i++ {
		pm.Record(RequestSample{Route: "/health", Method: "GET", Duration: time.Duration(i) * time.Millisecond, StatusCode: 200})
	}

	if pm.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pm.Len())
	}
	stats := pm.Stats()
	if len(stats) != 1 {
		t.Fatalf("len(Stats()) = %d, want 1", len(stats))
	}
	s := stats[0]
	if s.RequestCount != 3 || s.MinMS != 3 || s.MaxMS != 5 || s.AvgMS != 4 {
		t.Errorf("stats = %+v, want count 3 min 3 max 5 avg 4", s)
	}
}

func TestPerformanceMonitor_StatsOrdering(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(100, time.Second)
	record := func(method, route string, n, status int) {
		for i := 0; i < n; i++ {
			pm.Record(RequestSample{Route: route, Method: method, Duration: time.Millisecond, StatusCode: status})
		}
	}
	record("GET", "/search/{query}", 2, 200)
	record("POST", "/recommend", 4, 200)
	record("GET", "/health", 2, 503)

	stats := pm.Stats()
	want := []string{"POST /recommend", "GET /health", "GET /search/{query}"}
	if len(stats) != len(want) {
		t.Fatalf("len(Stats()) = %d, want %d", len(stats), len(want))
	}
	for i, w := range want {
		if stats[i].Endpoint != w {
			t.Errorf("stats[%d] = %q, want %q", i, stats[i].Endpoint, w)
		}
	}
	if stats[1].ErrorCount != 2 {
		t.Errorf("GET /health errors = %d, want 2", stats[1].ErrorCount)
	}
}

func TestPerformanceMonitor_LogsSlowRequests(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })

	pm := NewPerformanceMonitor(10, time.Nanosecond)
	h := pm.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Millisecond)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))

	if pm.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pm.Len())
	}
	if !strings.Contains(buf.String(), "Slow request detected") {
		t.Errorf("slow request not logged: %s", buf.String())
	}
}

func TestCompression(t *testing.T) {
	t.Parallel()

	body := strings.Repeat(`{"anime_id":1,"title":"Cowboy Bebop"}`, 50)
	h := Compression(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))

	t.Run("gzip accepted", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/sample", nil)
		req.Header.Set("Accept-Encoding", "br, gzip;q=0.8")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Header().Get("Content-Encoding") != "gzip" {
			t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
		}
		zr, err := gzip.NewReader(rec.Body)
		if err != nil {
			t.Fatalf("gzip.NewReader() error = %v", err)
		}
		got, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("read gzip body: %v", err)
		}
		if string(got) != body {
			t.Error("decompressed body differs from original")
		}
	})

	t.Run("gzip not accepted", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/sample", nil))

		if rec.Header().Get("Content-Encoding") != "" {
			t.Errorf("Content-Encoding = %q, want none", rec.Header().Get("Content-Encoding"))
		}
		if rec.Body.String() != body {
			t.Error("plain body altered")
		}
	})
}

func TestCompression_NotModified(t *testing.T) {
	t.Parallel()

	h := Compression(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/stats", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rec.Code)
	}
	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("304 response carries Content-Encoding")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 body length = %d, want 0", rec.Body.Len())
	}
}
