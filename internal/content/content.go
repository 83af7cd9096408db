// Package content gathers the raw source material an episode is generated
// from: posts from a Telegram channel (dropped into S3 by the collector
// Lambda) or entries from one or more RSS feeds.
package content

import (
	"context"
	"errors"
	"time"

	"github.com/podcasto/backend/internal/db"
)

// Item is one piece of source content, normalised across sources.
type Item struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// ErrNoContent is returned when the source yielded no items inside the
// content window. The worker fails the episode with a descriptive message
// rather than generating an empty-script episode.
var ErrNoContent = errors.New("content: no items in content window")

// Collector fetches source items according to a podcast's config. The
// concrete collector is chosen by config.content_source.
type Collector interface {
	Collect(ctx context.Context, cfg db.PodcastConfig) ([]Item, error)
}

// window returns the cutoff for the config's content window. Items published
// before the cutoff are discarded.
func window(cfg db.PodcastConfig, now time.Time) time.Time {
	hours := cfg.ContentWindowHours
	if hours <= 0 {
		hours = 24
	}
	return now.Add(-time.Duration(hours) * time.Hour)
}
