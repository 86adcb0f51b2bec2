package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// completionBody builds a provider response with the given choice texts.
func completionBody(texts ...string) map[string]any {
	choices := make([]map[string]any, len(texts))
	for i, text := range texts {
		choices[i] = map[string]any{
			"message": map[string]any{"role": "assistant", "content": text},
		}
	}
	return map[string]any{"choices": choices}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      any
		wantText  string
		wantErr   bool
		wantErrIs error
	}{
		{
			name:     "first choice returned",
			status:   http.StatusOK,
			body:     completionBody("Song: Blinding Lights, Artist: The Weeknd, Lighting: blue"),
			wantText: "Song: Blinding Lights, Artist: The Weeknd, Lighting: blue",
		},
		{
			name:     "extra choices ignored",
			status:   http.StatusOK,
			body:     completionBody("first", "second"),
			wantText: "first",
		},
		{
			name:      "empty choices",
			status:    http.StatusOK,
			body:      completionBody(),
			wantErr:   true,
			wantErrIs: ErrEmptyCompletion,
		},
		{
			name:    "auth failure",
			status:  http.StatusUnauthorized,
			body:    map[string]any{"error": map[string]any{"message": "invalid api key"}},
			wantErr: true,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    map[string]any{"error": map[string]any{"message": "overloaded"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := NewClient("test-key", server.URL, "test-model", zerolog.Nop())
			got, err := client.Complete(context.Background(), "system", "user")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Errorf("error = %v, want errors.Is(%v)", err, tt.wantErrIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantText {
				t.Errorf("Complete = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestCompleteSendsModelAndMessages(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer server.Close()

	client := NewClient("secret", server.URL, "llama-3.3-70b-versatile", zerolog.Nop())
	if _, err := client.Complete(context.Background(), "stay terse", "suggest a song"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
	if gotReq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("model = %q, want %q", gotReq.Model, "llama-3.3-70b-versatile")
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != "stay terse" {
		t.Errorf("system message = %+v", gotReq.Messages[0])
	}
	if gotReq.Messages[1].Role != "user" || gotReq.Messages[1].Content != "suggest a song" {
		t.Errorf("user message = %+v", gotReq.Messages[1])
	}
}

func TestCompleteTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient("key", server.URL, "test-model", zerolog.Nop())
	if _, err := client.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected transport error, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing primary key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("GROQ_API_KEY", "")
		if _, err := LoadConfig(); !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("LoadConfig error = %v, want ErrMissingAPIKey", err)
		}
	})

	t.Run("secondary key optional", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("GROQ_API_KEY", "")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OpenAIKey != "sk-test" || cfg.GroqKey != "" {
			t.Errorf("config = %+v", cfg)
		}
	})

	t.Run("both keys", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("GROQ_API_KEY", "gsk-test")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.GroqKey != "gsk-test" {
			t.Errorf("GroqKey = %q, want %q", cfg.GroqKey, "gsk-test")
		}
	})
}
