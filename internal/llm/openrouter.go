package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider implements Provider against the OpenRouter chat
// completions API. It speaks the wire format directly rather than going
// through an OpenAI client so the request can carry OpenRouter's "route"
// field, which the standard client does not expose.
type OpenRouterProvider struct {
	apiKey     string
	baseURL    string
	model      string
	referer    string
	appTitle   string
	httpClient *http.Client
}

// NewOpenRouterProvider creates a new OpenRouter provider. timeout bounds
// each outbound call; zero means no client-side timeout.
func NewOpenRouterProvider(apiKey, model, referer, appTitle string, timeout time.Duration) *OpenRouterProvider {
	return &OpenRouterProvider{
		apiKey:   apiKey,
		baseURL:  openRouterBaseURL,
		model:    model,
		referer:  referer,
		appTitle: appTitle,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *OpenRouterProvider) Name() string {
	return "openrouter"
}

type openRouterRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	Route       string    `json:"route,omitempty"`
}

type openRouterResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (p *OpenRouterProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	body, err := json.Marshal(openRouterRequest{
		Model:       model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Route:       req.Route,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Authorization", "Bearer "+p.apiKey)
	hreq.Header.Set("HTTP-Referer", p.referer)
	hreq.Header.Set("X-Title", p.appTitle)

	resp, err := p.httpClient.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"model":  model,
		}).Error("OpenRouter API error")
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if json.Valid(respBody) {
			apiErr.Detail = json.RawMessage(respBody)
		}
		return nil, apiErr
	}

	var out openRouterResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("openrouter response contained no choices")
	}

	return &CompletionResponse{
		Content:      out.Choices[0].Message.Content,
		InputTokens:  out.Usage.PromptTokens,
		OutputTokens: out.Usage.CompletionTokens,
		Model:        out.Model,
		FinishReason: out.Choices[0].FinishReason,
	}, nil
}
