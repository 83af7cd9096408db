// Package costs records raw billable operations as cost_events rows.
// Aggregation happens in SQL (the episode_costs / daily_cost_summary /
// monthly_cost_summary views), so recorded events are the single source of
// truth and summary totals can never drift from them.
package costs

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/podcasto/backend/internal/db"
	"github.com/sqlc-dev/pqtype"
)

// Unit prices in USD. Rough provider list prices; precise billing comes from
// the provider invoices — these exist so the admin dashboard can show
// per-episode and per-user cost orders of magnitude.
const (
	pricePerMillionInputTokens  = 0.10
	pricePerMillionOutputTokens = 0.40
	pricePerAudioInvocation     = 0.015
	pricePerStorageGB           = 0.023
	pricePerThousandEmails      = 0.10
)

// Recorder writes cost events. Recording failures are logged and swallowed:
// cost tracking must never fail the operation it is accounting for.
type Recorder struct {
	q      db.Querier
	logger *slog.Logger
}

// NewRecorder constructs a Recorder.
func NewRecorder(q db.Querier, logger *slog.Logger) *Recorder {
	return &Recorder{q: q, logger: logger}
}

// Attribution ties an event to the entities it was incurred for. Zero-value
// fields are stored as NULL.
type Attribution struct {
	EpisodeID uuid.UUID
	PodcastID uuid.UUID
	UserID    uuid.UUID
}

// ScriptGeneration records an AI script call from its token usage.
func (r *Recorder) ScriptGeneration(ctx context.Context, at Attribution, provider string, inputTokens, outputTokens int) {
	cost := float64(inputTokens)/1e6*pricePerMillionInputTokens +
		float64(outputTokens)/1e6*pricePerMillionOutputTokens

	meta, _ := json.Marshal(map[string]int{
		"input_tokens":  inputTokens,
		"output_tokens": outputTokens,
	})

	r.insert(ctx, at, db.CostOperationAiScript, provider,
		float64(inputTokens+outputTokens), "token", cost, meta)
}

// AudioInvocation records one async audio generation Lambda call.
func (r *Recorder) AudioInvocation(ctx context.Context, at Attribution) {
	r.insert(ctx, at, db.CostOperationAudioGeneration, "lambda", 1, "call", pricePerAudioInvocation, nil)
}

// StorageUpload records bytes written to the bucket.
func (r *Recorder) StorageUpload(ctx context.Context, at Attribution, bytes int64) {
	cost := float64(bytes) / (1 << 30) * pricePerStorageGB
	r.insert(ctx, at, db.CostOperationStorage, "s3", float64(bytes), "byte", cost, nil)
}

// EmailSend records a batch of notification emails.
func (r *Recorder) EmailSend(ctx context.Context, at Attribution, recipients int) {
	cost := float64(recipients) / 1000 * pricePerThousandEmails
	r.insert(ctx, at, db.CostOperationEmailSend, "ses", float64(recipients), "email", cost, nil)
}

func (r *Recorder) insert(ctx context.Context, at Attribution, op db.CostOperation, provider string, quantity float64, unit string, costUSD float64, meta []byte) {
	params := db.InsertCostEventParams{
		Operation: op,
		Provider:  provider,
		Quantity:  strconv.FormatFloat(quantity, 'f', 4, 64),
		Unit:      unit,
		CostUsd:   strconv.FormatFloat(costUSD, 'f', 6, 64),
	}
	if at.EpisodeID != uuid.Nil {
		params.EpisodeID = uuid.NullUUID{UUID: at.EpisodeID, Valid: true}
	}
	if at.PodcastID != uuid.Nil {
		params.PodcastID = uuid.NullUUID{UUID: at.PodcastID, Valid: true}
	}
	if at.UserID != uuid.Nil {
		params.UserID = uuid.NullUUID{UUID: at.UserID, Valid: true}
	}
	if len(meta) > 0 {
		params.Metadata = pqtype.NullRawMessage{RawMessage: meta, Valid: true}
	}

	if _, err := r.q.InsertCostEvent(ctx, params); err != nil {
		r.logger.Error("costs: record event failed",
			"operation", op,
			"episode_id", at.EpisodeID,
			"error", err,
		)
	}
}
