package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/storage"
)

// telegramDrop is the JSON document the collector Lambda writes for each
// batch of channel messages it scrapes.
type telegramDrop struct {
	Channel  string `json:"channel"`
	Messages []struct {
		ID       int64     `json:"id"`
		Text     string    `json:"text"`
		URL      string    `json:"url"`
		PostedAt time.Time `json:"posted_at"`
	} `json:"messages"`
}

// TelegramCollector reads channel message drops from S3. The Lambda that
// scrapes Telegram runs on its own schedule and writes one JSON object per
// batch under telegram/<channel>/.
type TelegramCollector struct {
	store  storage.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewTelegramCollector(store storage.Client, logger *slog.Logger) *TelegramCollector {
	return &TelegramCollector{store: store, logger: logger, now: time.Now}
}

func (c *TelegramCollector) Collect(ctx context.Context, cfg db.PodcastConfig) ([]Item, error) {
	if !cfg.TelegramChannel.Valid || cfg.TelegramChannel.String == "" {
		return nil, fmt.Errorf("podcast config %s has no telegram channel", cfg.PodcastID)
	}

	channel := cfg.TelegramChannel.String
	cutoff := window(cfg, c.now())

	objects, err := c.store.List(ctx, storage.TelegramPrefix(channel))
	if err != nil {
		return nil, fmt.Errorf("listing telegram drops for %s: %w", channel, err)
	}

	var items []Item
	for _, obj := range objects {
		// Drops older than the window can only contain messages older than
		// the window; skip the fetch entirely.
		if obj.LastModified.Before(cutoff) {
			continue
		}
		var drop telegramDrop
		if err := c.store.GetJSON(ctx, obj.Key, &drop); err != nil {
			c.logger.Warn("telegram drop unreadable", "key", obj.Key, "error", err)
			continue
		}
		for _, msg := range drop.Messages {
			if msg.PostedAt.Before(cutoff) || msg.Text == "" {
				continue
			}
			items = append(items, Item{
				Text:        msg.Text,
				URL:         msg.URL,
				PublishedAt: msg.PostedAt,
			})
		}
	}
	if len(items) == 0 {
		return nil, ErrNoContent
	}
	return items, nil
}
