package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ─── SCRIPT JSON ──────────────────────────────────────────────────────────────
// Both providers are prompted to respond in this exact JSON shape so we can
// parse it without regex heuristics.

type scriptJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Lines       []struct {
		Speaker string `json:"speaker"`
		Text    string `json:"text"`
	} `json:"lines"`
}

// systemPrompt renders the podcast's voice into the model's instructions.
func systemPrompt(brief Brief) string {
	cfg := brief.Config
	var sb strings.Builder
	sb.WriteString("You are a podcast script writer.\n")
	fmt.Fprintf(&sb, "The podcast is created by %q", cfg.Creator)
	if cfg.Slogan != "" {
		fmt.Fprintf(&sb, " with the slogan %q", cfg.Slogan)
	}
	sb.WriteString(".\n")
	fmt.Fprintf(&sb, "Write the entire script in the language with code %q.\n", brief.Language)
	fmt.Fprintf(&sb, "The conversation style is: %s.\n", cfg.ConversationStyle)
	fmt.Fprintf(&sb, "There are exactly two speakers. Speaker 1 is the %s. Speaker 2 is the %s.\n",
		cfg.Speaker1Role, cfg.Speaker2Role)
	sb.WriteString(`You will receive a batch of recent source items. Write a natural two-speaker
conversation that covers the interesting items, with smooth transitions. Do not
read URLs aloud. Do not invent facts beyond the source items.

Respond ONLY with valid JSON matching this exact schema, no markdown fences, no preamble:
{
  "title": "episode title in the target language",
  "description": "1-2 sentence episode summary in the target language",
  "lines": [
    {"speaker": "Speaker 1", "text": "..."},
    {"speaker": "Speaker 2", "text": "..."}
  ]
}`)
	return sb.String()
}

// buildPrompt serialises the content items into a compact prompt string.
func buildPrompt(brief Brief) string {
	var sb strings.Builder
	sb.WriteString("Here are the source items to cover, newest first:\n\n")

	for i, it := range brief.Items {
		fmt.Fprintf(&sb, "item %d\n", i+1)
		if it.Title != "" {
			fmt.Fprintf(&sb, "title: %s\n", it.Title)
		}
		fmt.Fprintf(&sb, "published: %s\n", it.PublishedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(&sb, "text: %s\n", it.Text)
		sb.WriteString("---\n")
	}

	return sb.String()
}

// parseScript decodes the model's JSON output into a Script, stripping any
// accidental markdown fences first.
func parseScript(raw string) (Script, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var parsed scriptJSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Script{}, fmt.Errorf("parse response JSON: %w (raw: %.200s)", err, raw)
	}
	if parsed.Title == "" || len(parsed.Lines) == 0 {
		return Script{}, fmt.Errorf("incomplete script: title=%q lines=%d", parsed.Title, len(parsed.Lines))
	}

	script := Script{
		Title:       parsed.Title,
		Description: parsed.Description,
		Lines:       make([]ScriptLine, 0, len(parsed.Lines)),
	}
	for _, line := range parsed.Lines {
		script.Lines = append(script.Lines, ScriptLine{Speaker: line.Speaker, Text: line.Text})
	}
	return script, nil
}
