// Package ai defines the interface for AI-generated podcast scripts and
// provides Gemini and OpenAI-backed implementations.
package ai

import (
	"context"

	"github.com/podcasto/backend/internal/content"
	"github.com/podcasto/backend/internal/db"
)

// ScriptLine is one utterance in the generated conversation.
type ScriptLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Script is the structured output from a successful GenerateScript call.
type Script struct {
	// Title is the episode title the model chose for this batch of content.
	Title string `json:"title"`

	// Description is a 1–2 sentence episode summary, suitable for feed
	// listings and the notification email.
	Description string `json:"description"`

	// Lines is the full two-speaker conversation, in order.
	Lines []ScriptLine `json:"lines"`

	// InputTokens / OutputTokens report the provider's token usage for the
	// call. Used for cost attribution; zero when the provider does not
	// report usage.
	InputTokens  int64 `json:"-"`
	OutputTokens int64 `json:"-"`
}

// Brief is everything the generator needs to write one episode.
type Brief struct {
	// Config carries the podcast's voice: creator, slogan, conversation
	// style, the two speaker roles, and the creativity setting.
	Config db.PodcastConfig

	// Language is the target language of the script, e.g. "en" or "he".
	// Taken from the podcast, not the config, so each language variant of a
	// grouped podcast gets its own script.
	Language string

	// Items is the collected source content, newest first.
	Items []content.Item
}

// ScriptGenerator is the interface the worker uses to turn collected content
// into an episode script. The concrete implementations live in gemini.go and
// openai.go. Tests inject a stub that returns canned scripts.
type ScriptGenerator interface {
	// GenerateScript writes a two-speaker conversation covering the brief's
	// content items, in the brief's language.
	//
	// Implementations must be safe to call concurrently.
	// A non-nil error means the call failed entirely; the worker marks the
	// episode failed (after the fallback chain is exhausted).
	GenerateScript(ctx context.Context, brief Brief) (Script, error)
}
