package worker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/email"
	"github.com/podcasto/backend/internal/storage"
	"github.com/podcasto/backend/internal/store"
)

// SchedulerSummary reports what one scheduler run did. Returned in the cron
// endpoint's response body.
type SchedulerSummary struct {
	Checked int `json:"checked"`
	Created int `json:"created"`
}

// CheckerSummary reports what one episode-checker run did.
type CheckerSummary struct {
	Checked   int `json:"checked"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Notified  int `json:"notified"`
}

// Cron holds the two scheduled entry points: the episode scheduler (creates
// episodes for podcasts whose frequency interval has elapsed) and the episode
// checker (reconciles asynchronous audio generation). Both are triggered over
// HTTP by an external scheduler; neither keeps its own timer.
type Cron struct {
	q          db.Querier
	store      *store.Store
	bucket     storage.Client
	dispatcher *email.Dispatcher
	enqueuer   Enqueuer
	logger     *slog.Logger

	// audioTimeout is how long an episode may sit in generating_audio before
	// the checker gives up on the Lambda and fails it.
	audioTimeout time.Duration

	now func() time.Time
}

// NewCron constructs the cron entry points.
func NewCron(
	q db.Querier,
	st *store.Store,
	bucket storage.Client,
	dispatcher *email.Dispatcher,
	enqueuer Enqueuer,
	audioTimeout time.Duration,
	logger *slog.Logger,
) *Cron {
	if audioTimeout <= 0 {
		audioTimeout = 30 * time.Minute
	}
	return &Cron{
		q:            q,
		store:        st,
		bucket:       bucket,
		dispatcher:   dispatcher,
		enqueuer:     enqueuer,
		logger:       logger,
		audioTimeout: audioTimeout,
		now:          time.Now,
	}
}

// RunScheduler creates a pending episode for every active podcast whose
// episode_frequency_days have elapsed since its last episode (or that has no
// episode yet), and hands each new episode to the worker queue.
func (c *Cron) RunScheduler(ctx context.Context) (SchedulerSummary, error) {
	var sum SchedulerSummary

	podcasts, err := c.q.ListDuePodcasts(ctx)
	if err != nil {
		return sum, fmt.Errorf("cron: list podcasts: %w", err)
	}
	sum.Checked = len(podcasts)

	now := c.now()
	for _, p := range podcasts {
		if !episodeDue(p, now) {
			continue
		}

		episode, err := c.q.CreateEpisode(ctx, db.CreateEpisodeParams{
			PodcastID: p.ID,
			Title:     fmt.Sprintf("%s: %s", p.Title, now.Format("January 2, 2006")),
			Language:  p.Language,
		})
		if err != nil {
			c.logger.Error("cron: create episode failed", "podcast_id", p.ID, "error", err)
			continue
		}
		sum.Created++

		if err := c.enqueuer.Enqueue(ctx, episode.ID); err != nil {
			// Not fatal: the runner's poller picks up pending episodes.
			c.logger.Warn("cron: enqueue failed", "episode_id", episode.ID, "error", err)
		}
	}

	c.logger.Info("cron: scheduler done", "checked", sum.Checked, "created", sum.Created)
	return sum, nil
}

// episodeDue reports whether the podcast's frequency interval has elapsed.
// A podcast with no episodes yet is always due.
func episodeDue(p db.ListDuePodcastsRow, now time.Time) bool {
	if !p.LastEpisodeAt.Valid {
		return true
	}
	freq := p.EpisodeFrequencyDays
	if freq <= 0 {
		freq = 1
	}
	return now.Sub(p.LastEpisodeAt.Time) >= time.Duration(freq)*24*time.Hour
}

// RunChecker reconciles episodes stuck in generating_audio. The audio Lambda
// works asynchronously and writes its output straight to S3, so completion is
// detected by polling for the audio object. Episodes whose audio has not
// appeared within audioTimeout are failed so they stop being checked.
func (c *Cron) RunChecker(ctx context.Context) (CheckerSummary, error) {
	var sum CheckerSummary

	episodes, err := c.q.ListGeneratingEpisodes(ctx)
	if err != nil {
		return sum, fmt.Errorf("cron: list generating episodes: %w", err)
	}
	sum.Checked = len(episodes)

	now := c.now()
	for _, ep := range episodes {
		key := storage.AudioKey(ep.PodcastID.String(), ep.ID.String())
		exists, err := c.bucket.Exists(ctx, key)
		if err != nil {
			c.logger.Error("cron: audio check failed", "episode_id", ep.ID, "error", err)
			continue
		}

		if exists {
			completed, err := c.q.CompleteEpisode(ctx, db.CompleteEpisodeParams{
				ID:       ep.ID,
				AudioUrl: sql.NullString{String: key, Valid: true},
			})
			if err != nil {
				c.logger.Error("cron: complete episode failed", "episode_id", ep.ID, "error", err)
				continue
			}
			sum.Completed++
			c.logger.Info("cron: episode completed", "episode_id", ep.ID)

			podcast, err := c.q.GetPodcastByID(ctx, ep.PodcastID)
			if err != nil {
				c.logger.Error("cron: load podcast for notification failed", "episode_id", ep.ID, "error", err)
				continue
			}
			// Notification failure must not roll back completion — the next
			// notifier run retries anyone not yet in sent_episodes.
			mailSum, err := c.dispatcher.NotifySubscribers(ctx, completed, podcast)
			if err != nil {
				c.logger.Error("cron: notify subscribers failed", "episode_id", ep.ID, "error", err)
			}
			sum.Notified += mailSum.Sent
			continue
		}

		if now.Sub(ep.UpdatedAt) > c.audioTimeout {
			reason := fmt.Sprintf("audio generation timed out after %s", c.audioTimeout)
			if _, err := c.store.MarkEpisodeFailed(ctx, ep.ID, reason); err != nil {
				c.logger.Error("cron: mark episode failed errored", "episode_id", ep.ID, "error", err)
				continue
			}
			sum.Failed++
			c.logger.Warn("cron: episode timed out waiting for audio", "episode_id", ep.ID)
		}
	}

	c.logger.Info("cron: checker done",
		"checked", sum.Checked,
		"completed", sum.Completed,
		"failed", sum.Failed,
		"notified", sum.Notified,
	)
	return sum, nil
}
