package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestComplete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Monday: rest"}},{"message":{"content":"ignored"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(Config{Endpoint: srv.URL, APIKey: "secret", Model: "test-model"}, srv.Client())
	text, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "Monday: rest" {
		t.Errorf("expected first choice content, got %q", text)
	}
	if got.Model != "test-model" {
		t.Errorf("expected model test-model, got %q", got.Model)
	}
	if got.Temperature != 0.7 || got.MaxTokens != 2000 {
		t.Errorf("expected temperature 0.7 and max_tokens 2000, got %v and %d", got.Temperature, got.MaxTokens)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "hi" {
		t.Errorf("unexpected messages %+v", got.Messages)
	}
}

func TestComplete_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"api error message", 401, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`, "Incorrect API key provided"},
		{"status text", 503, `upstream down`, "Service Unavailable"},
		{"malformed json", 200, `{"choices":`, "decode response"},
		{"no choices", 200, `{"choices":[]}`, "no completion returned"},
		{"error in success body", 200, `{"error":{"message":"quota exceeded"}}`, "quota exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewOpenAIClient(Config{Endpoint: srv.URL}, srv.Client())
			_, err := c.Complete(context.Background(), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestComplete_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewOpenAIClient(Config{Endpoint: srv.URL}, srv.Client())
	if _, err := c.Complete(ctx, nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "k"}.WithDefaults()
	if cfg.Endpoint != DefaultEndpoint || cfg.Model != DefaultModel {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Temperature != DefaultTemperature || cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	custom := Config{Endpoint: "http://localhost:11434/v1/chat/completions", Model: "llama3", MaxTokens: 500}.WithDefaults()
	if custom.Endpoint != "http://localhost:11434/v1/chat/completions" || custom.Model != "llama3" || custom.MaxTokens != 500 {
		t.Errorf("overrides lost: %+v", custom)
	}
}
