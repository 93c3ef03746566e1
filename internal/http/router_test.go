package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterRejectsUnknownPaths(t *testing.T) {
	router, _ := newTestRouter(t)

	if w := getPath(t, router, "/nope"); w.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRouterRejectsWrongMethods(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(nethttp.MethodDelete, "/football-team/Patriots", nil))
	if w.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for DELETE, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(nethttp.MethodPut, "/football-team", nil))
	if w.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for PUT, got %d", w.Code)
	}
}
