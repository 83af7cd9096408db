// Package worker contains the background pipeline that collects source
// content, generates the episode script, uploads it, and kicks off audio
// generation. It is intentionally decoupled from the HTTP layer: the api
// package holds a worker.Enqueuer interface and calls Enqueue — it never
// imports the concrete Runner or Job types.
package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bpradana/weave"
	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/podcasto/backend/internal/ai"
	"github.com/podcasto/backend/internal/audio"
	"github.com/podcasto/backend/internal/content"
	"github.com/podcasto/backend/internal/costs"
	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/storage"
)

// Job holds the dependencies for the collect-and-generate pipeline. The
// steps are wired as a weave task graph so their data flow is explicit and
// independent steps could be parallelised later without restructuring.
type Job struct {
	q          db.Querier
	collectors map[db.ContentSource]content.Collector
	generator  ai.ScriptGenerator
	bucket     storage.Client
	audio      audio.Invoker
	costs      *costs.Recorder
	logger     *slog.Logger
}

// NewJob constructs a Job with all required dependencies.
func NewJob(
	q db.Querier,
	collectors map[db.ContentSource]content.Collector,
	generator ai.ScriptGenerator,
	bucket storage.Client,
	invoker audio.Invoker,
	rec *costs.Recorder,
	logger *slog.Logger,
) *Job {
	return &Job{
		q:          q,
		collectors: collectors,
		generator:  generator,
		bucket:     bucket,
		audio:      invoker,
		costs:      rec,
		logger:     logger,
	}
}

// scriptDocument is the JSON object uploaded to S3 and consumed by the audio
// Lambda.
type scriptDocument struct {
	EpisodeID   uuid.UUID       `json:"episode_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Language    string          `json:"language"`
	Lines       []ai.ScriptLine `json:"lines"`
}

// Run executes the full pipeline for a single episode:
//
//  1. Collect source content (Telegram drops or RSS feeds).
//  2. Generate the two-speaker script via the AI fallback chain.
//  3. Upload the script to S3 and record title/description on the episode.
//  4. Invoke the audio Lambda and mark the episode generating_audio.
//
// Audio completion is asynchronous — the episode checker polls S3 for the
// output file. Any error is returned to the Runner, which retries up to
// MaxRetries times before calling store.MarkEpisodeFailed.
func (j *Job) Run(ctx context.Context, episodeID uuid.UUID) error {
	log := j.logger.With("episode_id", episodeID)
	log.Info("job: starting")

	episode, err := j.q.GetEpisodeByID(ctx, episodeID)
	if err != nil {
		return fmt.Errorf("job: get episode: %w", err)
	}
	if episode.Status == db.EpisodeStatusGeneratingAudio || episode.Status == db.EpisodeStatusCompleted {
		// Poller raced the checker; nothing left to do here.
		log.Debug("job: episode already past script stage", "status", episode.Status)
		return nil
	}

	podcast, err := j.q.GetPodcastByID(ctx, episode.PodcastID)
	if err != nil {
		return fmt.Errorf("job: get podcast: %w", err)
	}
	cfg, err := j.q.GetPodcastConfig(ctx, episode.PodcastID)
	if err != nil {
		return fmt.Errorf("job: get podcast config: %w", err)
	}

	collector, ok := j.collectors[cfg.ContentSource]
	if !ok {
		return fmt.Errorf("job: no collector for source %q", cfg.ContentSource)
	}

	graph := weave.NewGraph()

	collectTask, err := weave.AddTask(graph, "collect-content", func(ctx context.Context, _ weave.DependencyResolver) ([]content.Item, error) {
		if _, err := j.q.SetEpisodeStatus(ctx, db.SetEpisodeStatusParams{ID: episodeID, Status: db.EpisodeStatusCollecting}); err != nil {
			return nil, fmt.Errorf("mark collecting: %w", err)
		}
		items, err := collector.Collect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("collect %s content: %w", cfg.ContentSource, err)
		}
		log.Debug("job: collected content", "items", len(items))
		return items, nil
	})
	if err != nil {
		return fmt.Errorf("job: register collect task: %w", err)
	}

	scriptTask, err := weave.AddTask(graph, "generate-script", func(ctx context.Context, deps weave.DependencyResolver) (ai.Script, error) {
		items, err := collectTask.Value(deps)
		if err != nil {
			return ai.Script{}, err
		}
		script, err := j.generator.GenerateScript(ctx, ai.Brief{
			Config:   cfg,
			Language: episode.Language,
			Items:    items,
		})
		if err != nil {
			return ai.Script{}, fmt.Errorf("generate script: %w", err)
		}
		j.costs.ScriptGeneration(ctx, j.attribution(episode), "ai", int(script.InputTokens), int(script.OutputTokens))
		return script, nil
	}, weave.DependsOn(collectTask))
	if err != nil {
		return fmt.Errorf("job: register script task: %w", err)
	}

	storeTask, err := weave.AddTask(graph, "store-script", func(ctx context.Context, deps weave.DependencyResolver) (string, error) {
		script, err := scriptTask.Value(deps)
		if err != nil {
			return "", err
		}
		key := storage.ScriptKey(episode.PodcastID.String(), episodeID.String())
		written, err := j.bucket.PutJSON(ctx, key, scriptDocument{
			EpisodeID:   episodeID,
			Title:       script.Title,
			Description: script.Description,
			Language:    episode.Language,
			Lines:       script.Lines,
		})
		if err != nil {
			return "", fmt.Errorf("upload script: %w", err)
		}
		j.costs.StorageUpload(ctx, j.attribution(episode), written)

		meta, _ := json.Marshal(map[string]any{
			"lines":         len(script.Lines),
			"input_tokens":  script.InputTokens,
			"output_tokens": script.OutputTokens,
		})
		if _, err := j.q.SetEpisodeScript(ctx, db.SetEpisodeScriptParams{
			ID:          episodeID,
			Title:       script.Title,
			Description: script.Description,
			ScriptUrl:   sql.NullString{String: key, Valid: true},
			Metadata:    pqtype.NullRawMessage{RawMessage: meta, Valid: true},
		}); err != nil {
			return "", fmt.Errorf("record script: %w", err)
		}
		return key, nil
	}, weave.DependsOn(scriptTask))
	if err != nil {
		return fmt.Errorf("job: register store task: %w", err)
	}

	_, err = weave.AddTask(graph, "invoke-audio", func(ctx context.Context, deps weave.DependencyResolver) (struct{}, error) {
		scriptKey, err := storeTask.Value(deps)
		if err != nil {
			return struct{}{}, err
		}
		if err := j.audio.Generate(ctx, audio.GenerateParams{
			EpisodeID: episodeID,
			PodcastID: episode.PodcastID,
			ScriptKey: scriptKey,
			OutputKey: storage.AudioKey(episode.PodcastID.String(), episodeID.String()),
			Language:  episode.Language,
		}); err != nil {
			return struct{}{}, fmt.Errorf("invoke audio lambda: %w", err)
		}
		j.costs.AudioInvocation(ctx, j.attribution(episode))
		if _, err := j.q.SetEpisodeStatus(ctx, db.SetEpisodeStatusParams{ID: episodeID, Status: db.EpisodeStatusGeneratingAudio}); err != nil {
			return struct{}{}, fmt.Errorf("mark generating_audio: %w", err)
		}
		return struct{}{}, nil
	}, weave.DependsOn(storeTask))
	if err != nil {
		return fmt.Errorf("job: register audio task: %w", err)
	}

	if _, _, err := graph.Run(ctx); err != nil {
		return fmt.Errorf("job: %w", err)
	}

	log.Info("job: script stored, audio generation started", "podcast_id", podcast.ID)
	return nil
}

func (j *Job) attribution(episode db.Episode) costs.Attribution {
	at := costs.Attribution{EpisodeID: episode.ID, PodcastID: episode.PodcastID}
	if episode.CreatedBy.Valid {
		at.UserID = episode.CreatedBy.UUID
	}
	return at
}
