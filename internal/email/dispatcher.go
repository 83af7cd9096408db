package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/podcasto/backend/internal/costs"
	"github.com/podcasto/backend/internal/db"
)

const (
	retryBaseDelay = 1 * time.Second
	retryMaxDelay  = 10 * time.Second
)

// Summary reports what one NotifySubscribers run did, for logging and the
// cron response body.
type Summary struct {
	Subscribers int `json:"subscribers"`
	Skipped     int `json:"skipped"`
	Sent        int `json:"sent"`
	Failed      int `json:"failed"`
}

// Dispatcher turns "episode completed" into notification emails. It owns the
// filtering (already-notified, opted-out, missing address), the batch split,
// the send rate, and the retry policy. Delivery itself goes through Sender.
type Dispatcher struct {
	q           db.Querier
	sender      Sender
	limiter     *rate.Limiter
	costs       *costs.Recorder
	logger      *slog.Logger
	baseURL     string
	batchSize   int
	maxAttempts int

	// sleep is swapped out in tests so retry backoff doesn't wall-clock.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewDispatcher builds a Dispatcher. batchSize is capped by the provider at
// 50 recipients per call; sendRate is bulk calls per second.
func NewDispatcher(q db.Querier, sender Sender, rec *costs.Recorder, logger *slog.Logger, baseURL string, batchSize int, sendRate float64, maxAttempts int) *Dispatcher {
	if batchSize < 1 || batchSize > 50 {
		batchSize = 50
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Dispatcher{
		q:           q,
		sender:      sender,
		limiter:     rate.NewLimiter(rate.Limit(sendRate), 1),
		costs:       rec,
		logger:      logger,
		baseURL:     baseURL,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		sleep:       sleepCtx,
	}
}

// NotifySubscribers emails every subscriber of the episode's podcast who has
// notifications on, has an email address, and has not already been notified
// about this episode. Recipients who were delivered to are recorded before
// the next batch goes out, so a crash mid-run never causes duplicate email.
func (d *Dispatcher) NotifySubscribers(ctx context.Context, episode db.Episode, podcast db.Podcast) (Summary, error) {
	var sum Summary

	subscriberIDs, err := d.q.ListSubscriberIDs(ctx, podcast.ID)
	if err != nil {
		return sum, fmt.Errorf("email: list subscribers: %w", err)
	}
	sum.Subscribers = len(subscriberIDs)
	if len(subscriberIDs) == 0 {
		return sum, nil
	}

	sentIDs, err := d.q.ListSentUserIDs(ctx, episode.ID)
	if err != nil {
		return sum, fmt.Errorf("email: list sent users: %w", err)
	}
	alreadySent := make(map[uuid.UUID]bool, len(sentIDs))
	for _, id := range sentIDs {
		alreadySent[id] = true
	}

	pending := make([]uuid.UUID, 0, len(subscriberIDs))
	for _, id := range subscriberIDs {
		if !alreadySent[id] {
			pending = append(pending, id)
		}
	}
	sum.Skipped = sum.Subscribers - len(pending)
	if len(pending) == 0 {
		return sum, nil
	}

	users, err := d.q.ListUsersByIDs(ctx, pending)
	if err != nil {
		return sum, fmt.Errorf("email: load users: %w", err)
	}

	recipients := make([]Recipient, 0, len(users))
	for _, u := range users {
		if !u.EmailNotifications || u.Email == "" {
			sum.Skipped++
			continue
		}
		recipients = append(recipients, Recipient{UserID: u.ID, Email: u.Email, Name: u.DisplayName})
	}
	if len(recipients) == 0 {
		return sum, nil
	}

	params := EpisodeParams{
		PodcastTitle: podcast.Title,
		EpisodeTitle: episode.Title,
		Description:  episode.Description,
		EpisodeURL:   fmt.Sprintf("%s/podcasts/%s/episodes/%s", d.baseURL, podcast.ID, episode.ID),
	}

	for start := 0; start < len(recipients); start += d.batchSize {
		end := start + d.batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		batch := recipients[start:end]

		results, err := d.sendWithRetry(ctx, params, batch)
		if err != nil {
			// This batch is lost but the rest still deserve their email.
			d.logger.Error("email batch failed",
				"episode_id", episode.ID,
				"batch_size", len(batch),
				"error", err,
			)
			sum.Failed += len(batch)
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			continue
		}

		delivered := make([]uuid.UUID, 0, len(results))
		for _, r := range results {
			if r.Delivered {
				delivered = append(delivered, r.UserID)
			} else {
				d.logger.Warn("recipient rejected", "email", r.Email, "status", r.Status)
				sum.Failed++
			}
		}
		if len(delivered) > 0 {
			if err := d.q.InsertSentEpisodes(ctx, db.InsertSentEpisodesParams{
				EpisodeID: episode.ID,
				UserIds:   delivered,
			}); err != nil {
				return sum, fmt.Errorf("email: record sent episodes: %w", err)
			}
			sum.Sent += len(delivered)
		}
	}

	if d.costs != nil && sum.Sent > 0 {
		d.costs.EmailSend(ctx, costs.Attribution{
			EpisodeID: episode.ID,
			PodcastID: podcast.ID,
		}, sum.Sent)
	}

	return sum, nil
}

// sendWithRetry sends one batch, retrying transient failures with
// exponential backoff. Permanent failures return immediately: resending a
// rejected batch only hits the same rejection.
func (d *Dispatcher) sendWithRetry(ctx context.Context, p EpisodeParams, batch []Recipient) ([]Result, error) {
	var lastErr error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		results, err := d.sender.SendEpisodeBatch(ctx, p, batch)
		if err == nil {
			return results, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return nil, err
		}
		if attempt == d.maxAttempts {
			break
		}

		delay := backoffDelay(attempt)
		d.logger.Warn("transient send failure, backing off",
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)
		if err := d.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("email: batch failed after %d attempts: %w", d.maxAttempts, lastErr)
}

// backoffDelay returns the delay before retrying after the given attempt:
// 1s, 2s, 4s, ... capped at 10s.
func backoffDelay(attempt int) time.Duration {
	d := retryBaseDelay << (attempt - 1)
	if d > retryMaxDelay {
		return retryMaxDelay
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
