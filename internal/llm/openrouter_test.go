package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestProvider(serverURL string) *OpenRouterProvider {
	p := NewOpenRouterProvider("test-key", "openai/gpt-3.5-turbo", "https://openrouter.ai/", "AI Voice Interview Bot", 0)
	p.baseURL = serverURL
	return p
}

func TestOpenRouterCompleteSendsWireFormat(t *testing.T) {
	var got openRouterRequest
	var gotAuth, gotReferer, gotTitle string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"openai/gpt-3.5-turbo","choices":[{"message":{"role":"assistant","content":"  hello there  "},"finish_reason":"stop"}],"usage":{"prompt_tokens":5,"completion_tokens":7}}`))
	}))
	defer ts.Close()

	p := newTestProvider(ts.URL)
	resp, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "persona"},
			{Role: RoleUser, Content: "hi"},
		},
		MaxTokens:   500,
		Temperature: 0.7,
		Route:       "fallback",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization: got %q", gotAuth)
	}
	if gotReferer != "https://openrouter.ai/" {
		t.Errorf("HTTP-Referer: got %q", gotReferer)
	}
	if gotTitle != "AI Voice Interview Bot" {
		t.Errorf("X-Title: got %q", gotTitle)
	}
	if got.Model != "openai/gpt-3.5-turbo" {
		t.Errorf("model: got %q", got.Model)
	}
	if got.Route != "fallback" {
		t.Errorf("route: got %q, want fallback", got.Route)
	}
	if got.MaxTokens != 500 {
		t.Errorf("max_tokens: got %d", got.MaxTokens)
	}
	if got.Temperature != 0.7 {
		t.Errorf("temperature: got %v", got.Temperature)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Errorf("messages: got %+v", got.Messages)
	}

	// The provider returns content as-is; trimming belongs to the caller.
	if resp.Content != "  hello there  " {
		t.Errorf("content: got %q", resp.Content)
	}
	if resp.InputTokens != 5 || resp.OutputTokens != 7 {
		t.Errorf("usage: got %d/%d", resp.InputTokens, resp.OutputTokens)
	}
}

func TestOpenRouterCompleteNon200ReturnsAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer ts.Close()

	p := newTestProvider(ts.URL)
	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusTooManyRequests {
		t.Errorf("status: got %d", apiErr.Status)
	}
	if len(apiErr.Detail) == 0 {
		t.Error("expected provider detail to be captured")
	}
}

func TestOpenRouterCompleteMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	p := newTestProvider(ts.URL)
	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for malformed response body")
	}
}

func TestOpenRouterCompleteEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	p := newTestProvider(ts.URL)
	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error when response has no choices")
	}
}

func TestOpenRouterCompleteNetworkError(t *testing.T) {
	p := newTestProvider("http://127.0.0.1:1")
	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error when provider is unreachable")
	}
}
