package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chat-relay/internal/llm"
	"chat-relay/internal/service"
)

func setupFullRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	return NewRouter(
		logger,
		origins,
		NewRelayHandler(logger, testRelayService(llm.NewMockClient("ok"))),
		NewFeedbackHandler(logger, service.NewFeedbackService(service.NewMemoryFeedbackStore())),
		NewTicketsHandler(logger),
	)
}

func TestRouter_Health(t *testing.T) {
	r := setupFullRouter([]string{"*"})

	rec := performRequest(r, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got == "" {
		t.Fatalf("expected content-type header")
	}
}

func TestRouter_RelayRoundTrip(t *testing.T) {
	r := setupFullRouter([]string{"*"})

	rec := performRequest(r, http.MethodPost, "/relay", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["content"] != "ok" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRouter_Tickets(t *testing.T) {
	r := setupFullRouter(nil)

	rec := performRequest(r, http.MethodGet, "/tickets", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Hello from tickets API route!" {
		t.Fatalf("unexpected body %+v", body)
	}

	rec = performRequest(r, http.MethodPost, "/tickets", map[string]string{"subject": "login"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	if body["message"] != "POST request received" || !ok || data["subject"] != "login" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Run("origen permitido", func(t *testing.T) {
		r := setupFullRouter([]string{"http://ui.test"})
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "http://ui.test")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://ui.test" {
			t.Fatalf("expected allowed origin header, got %q", got)
		}
	})

	t.Run("origen rechazado", func(t *testing.T) {
		r := setupFullRouter([]string{"http://ui.test"})
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", rec.Code)
		}
	})

	t.Run("wildcard", func(t *testing.T) {
		r := setupFullRouter([]string{"*"})
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "http://anything.test")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("expected wildcard origin header, got %q", got)
		}
	})
}
