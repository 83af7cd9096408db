package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// openAIClient is the concrete ScriptGenerator backed by the OpenAI chat
// completions API. It is wired as the fallback behind Gemini.
type openAIClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIClient returns a ScriptGenerator that calls the OpenAI API.
//   - apiKey: your OPENAI_API_KEY
//   - model:  e.g. "gpt-4o-mini"
func NewOpenAIClient(apiKey, model string) ScriptGenerator {
	return &openAIClient{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ─── OPENAI API SHAPES ────────────────────────────────────────────────────────

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	MaxTokens      int             `json:"max_tokens"`
	Temperature    float32         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// responseFormat instructs the model to return valid JSON.
type responseFormat struct {
	Type string `json:"type"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// ─── IMPLEMENTATION ───────────────────────────────────────────────────────────

// GenerateScript calls the OpenAI API and returns a parsed episode script.
func (c *openAIClient) GenerateScript(ctx context.Context, brief Brief) (Script, error) {
	if len(brief.Items) == 0 {
		return Script{}, fmt.Errorf("openai: empty brief")
	}

	reqBody := openAIRequest{
		Model:       c.model,
		MaxTokens:   8192,
		Temperature: brief.Config.Creativity,
		// json_object mode guarantees the response is valid JSON.
		ResponseFormat: &responseFormat{Type: "json_object"},
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt(brief)},
			{Role: "user", Content: buildPrompt(brief)},
		},
	}

	raw, usage, err := c.call(ctx, reqBody)
	if err != nil {
		return Script{}, err
	}

	script, err := parseScript(raw)
	if err != nil {
		return Script{}, fmt.Errorf("openai: %w", err)
	}
	script.InputTokens = usage.PromptTokens
	script.OutputTokens = usage.CompletionTokens
	return script, nil
}

type openAIUsage struct {
	PromptTokens     int64
	CompletionTokens int64
}

// call sends one request to the chat completions endpoint and returns the
// text content of the first choice plus token usage.
func (c *openAIClient) call(ctx context.Context, reqBody openAIRequest) (string, openAIUsage, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", openAIUsage{}, fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.openai.com/v1/chat/completions",
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", openAIUsage{}, fmt.Errorf("openai: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", openAIUsage{}, fmt.Errorf("openai: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", openAIUsage{}, fmt.Errorf("openai: read response: %w", err)
	}

	var parsed openAIResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", openAIUsage{}, fmt.Errorf("openai: unmarshal response: %w", err)
	}

	if parsed.Error != nil {
		return "", openAIUsage{}, fmt.Errorf("openai: API error %s: %s", parsed.Error.Type, parsed.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", openAIUsage{}, fmt.Errorf("openai: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	if len(parsed.Choices) == 0 {
		return "", openAIUsage{}, fmt.Errorf("openai: no choices in response")
	}

	usage := openAIUsage{
		PromptTokens:     parsed.Usage.PromptTokens,
		CompletionTokens: parsed.Usage.CompletionTokens,
	}
	return parsed.Choices[0].Message.Content, usage, nil
}
