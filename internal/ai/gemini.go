package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// geminiClient is the concrete ScriptGenerator backed by the Gemini API.
type geminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiClient returns a ScriptGenerator that calls the Gemini API.
//   - apiKey: your GEMINI_API_KEY
//   - model:  e.g. "gemini-2.0-flash"
func NewGeminiClient(apiKey, model string) ScriptGenerator {
	return &geminiClient{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ─── GEMINI API SHAPES ────────────────────────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiGenConfig asks for JSON output directly; Gemini's
// responseMimeType is the equivalent of OpenAI's json_object mode.
type geminiGenConfig struct {
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int64 `json:"promptTokenCount"`
		CandidatesTokenCount int64 `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ─── IMPLEMENTATION ───────────────────────────────────────────────────────────

// GenerateScript calls the Gemini API and returns a parsed episode script.
func (c *geminiClient) GenerateScript(ctx context.Context, brief Brief) (Script, error) {
	if len(brief.Items) == 0 {
		return Script{}, fmt.Errorf("gemini: empty brief")
	}

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt(brief)}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: buildPrompt(brief)}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:      brief.Config.Creativity,
			MaxOutputTokens:  8192,
			ResponseMimeType: "application/json",
		},
	}

	raw, usage, err := c.call(ctx, reqBody)
	if err != nil {
		return Script{}, err
	}

	script, err := parseScript(raw)
	if err != nil {
		return Script{}, fmt.Errorf("gemini: %w", err)
	}
	script.InputTokens = usage.PromptTokenCount
	script.OutputTokens = usage.CandidatesTokenCount
	return script, nil
}

type geminiUsage struct {
	PromptTokenCount     int64
	CandidatesTokenCount int64
}

// call sends one request to the Gemini generateContent endpoint and returns
// the text of the first candidate plus the reported token usage.
func (c *geminiClient) call(ctx context.Context, reqBody geminiRequest) (string, geminiUsage, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", geminiUsage{}, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", geminiUsage{}, fmt.Errorf("gemini: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", geminiUsage{}, fmt.Errorf("gemini: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", geminiUsage{}, fmt.Errorf("gemini: read response: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", geminiUsage{}, fmt.Errorf("gemini: unmarshal response: %w", err)
	}

	if parsed.Error != nil {
		return "", geminiUsage{}, fmt.Errorf("gemini: API error %s: %s", parsed.Error.Status, parsed.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", geminiUsage{}, fmt.Errorf("gemini: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", geminiUsage{}, fmt.Errorf("gemini: no candidates in response")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	usage := geminiUsage{
		PromptTokenCount:     parsed.UsageMetadata.PromptTokenCount,
		CandidatesTokenCount: parsed.UsageMetadata.CandidatesTokenCount,
	}
	return sb.String(), usage, nil
}
