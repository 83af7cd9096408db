package ai

import (
	"context"
	"fmt"
	"log/slog"
)

// fallbackGenerator wraps two ScriptGenerator implementations. It calls the
// primary first; if that returns an error it logs the failure and tries the
// secondary. This gives you Gemini as the default with OpenAI as the safety
// net (or vice versa — the choice is made in main.go).
type fallbackGenerator struct {
	primary   ScriptGenerator
	secondary ScriptGenerator
	logger    *slog.Logger
}

// NewFallbackGenerator returns a ScriptGenerator that calls primary and, on
// failure, falls back to secondary. Either argument may be nil — if primary
// is nil it goes straight to secondary; if secondary is nil and primary
// fails, the primary error is returned directly.
func NewFallbackGenerator(primary, secondary ScriptGenerator, logger *slog.Logger) ScriptGenerator {
	return &fallbackGenerator{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// GenerateScript tries the primary generator. If it fails and a secondary is
// configured, it logs the primary error and tries the secondary.
func (f *fallbackGenerator) GenerateScript(ctx context.Context, brief Brief) (Script, error) {
	if f.primary != nil {
		script, err := f.primary.GenerateScript(ctx, brief)
		if err == nil {
			return script, nil
		}
		f.logger.Warn("ai: primary generator failed, trying secondary",
			"error", err,
			"items", len(brief.Items),
		)
		if f.secondary == nil {
			return Script{}, fmt.Errorf("ai: primary failed and no secondary configured: %w", err)
		}
	}

	return f.secondary.GenerateScript(ctx, brief)
}
