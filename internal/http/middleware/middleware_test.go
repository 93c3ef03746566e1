package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"football-team-service/internal/logging"
	"football-team-service/internal/metrics"
)

func TestLoggingSetsRequestIDHeader(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Logging(logging.NewLogger(logging.Config{}), metrics.NewRecorder(), next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	got := rec.Header().Get("X-Request-ID")
	if got == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if seenID != got {
		t.Fatalf("expected context id %q to match header %q", seenID, got)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status to pass through, got %d", rec.Code)
	}
}

func TestLoggingKeepsValidIncomingRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Logging(nil, nil, next)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "client-id-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-id-42" {
		t.Fatalf("expected incoming id to be kept, got %s", got)
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/football-team":                "/football-team",
		"/football-team/":               "/football-team",
		"/football-team/Dallas-Cowboys": "/football-team/:teamName",
		"/health":                       "/health",
		"/ready":                        "/ready",
		"/other":                        "/other",
		"":                              "",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}
