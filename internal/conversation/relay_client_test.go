package conversation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat-relay/internal/domain"
)

func TestHTTPRelayRelay_Success(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/relay" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"content":"hola"}`))
	}))
	defer srv.Close()

	relay := NewHTTPRelay(srv.URL+"/", 0)
	reply, err := relay.Relay(context.Background(), []domain.Message{
		{Role: domain.RoleUser, Content: "hi"},
		{Role: domain.RoleAssistant, Content: "hello", Rating: domain.RatingUp},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != domain.NewAssistantMessage("hola") {
		t.Fatalf("unexpected reply %+v", reply)
	}

	msgs, ok := raw["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("expected 2 messages on the wire, got %+v", raw)
	}
	second := msgs[1].(map[string]any)
	if _, hasRating := second["rating"]; hasRating {
		t.Fatalf("rating must not be forwarded, got %+v", second)
	}
}

func TestHTTPRelayRelay_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"An error occurred while processing your request"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPRelay(srv.URL, 0).Relay(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "500 Internal Server Error") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPRelayReport(t *testing.T) {
	var got struct {
		Rating  string `json:"rating"`
		Content string `json:"content"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feedback" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if err := NewHTTPRelay(srv.URL, 0).Report(context.Background(), domain.RatingDown, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Rating != "down" || got.Content != "hello" {
		t.Fatalf("unexpected payload %+v", got)
	}
}
