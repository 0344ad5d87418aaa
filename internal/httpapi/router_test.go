package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hqzhou/webchat/internal/config"
)

func newRouterForTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(config.Config{AIProvider: "ollama"})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return r
}

func TestRouter_ServesIndexPage(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
	body := w.Body.String()
	for _, marker := range []string{"chat-form", "/chat?prompt=", "getReader"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("index page missing %q", marker)
		}
	}
}

func TestRouter_Ping(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get("X-Request-ID")
	if len(id) != 26 { // ULID
		t.Fatalf("unexpected request id %q", id)
	}
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "route not found") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/chat", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", w.Code)
	}
}
