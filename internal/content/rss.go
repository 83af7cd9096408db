package content

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/podcasto/backend/internal/db"
)

const maxItemsPerFeed = 30

// RSSCollector fetches and merges the config's RSS feeds, keeping only
// entries published inside the content window.
type RSSCollector struct {
	parser *gofeed.Parser
	logger *slog.Logger
	now    func() time.Time
}

func NewRSSCollector(httpClient *http.Client, logger *slog.Logger) *RSSCollector {
	p := gofeed.NewParser()
	if httpClient != nil {
		p.Client = httpClient
	}
	return &RSSCollector{parser: p, logger: logger, now: time.Now}
}

func (c *RSSCollector) Collect(ctx context.Context, cfg db.PodcastConfig) ([]Item, error) {
	if len(cfg.RssUrls) == 0 {
		return nil, fmt.Errorf("podcast config %s has no rss urls", cfg.PodcastID)
	}

	cutoff := window(cfg, c.now())

	var items []Item
	var failed int
	for _, url := range cfg.RssUrls {
		feed, err := c.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			// One dead feed must not sink the episode; collect from the rest.
			c.logger.Warn("rss feed fetch failed", "url", url, "error", err)
			failed++
			continue
		}
		items = append(items, feedItems(feed, cutoff)...)
	}
	if failed == len(cfg.RssUrls) {
		return nil, fmt.Errorf("all %d rss feeds failed for podcast %s", failed, cfg.PodcastID)
	}
	if len(items) == 0 {
		return nil, ErrNoContent
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

func feedItems(feed *gofeed.Feed, cutoff time.Time) []Item {
	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		published := itemTime(it)
		if published.Before(cutoff) {
			continue
		}
		text := it.Content
		if text == "" {
			text = it.Description
		}
		items = append(items, Item{
			Title:       strings.TrimSpace(it.Title),
			Text:        strings.TrimSpace(text),
			URL:         it.Link,
			PublishedAt: published,
		})
		if len(items) == maxItemsPerFeed {
			break
		}
	}
	return items
}

func itemTime(it *gofeed.Item) time.Time {
	if it.PublishedParsed != nil {
		return *it.PublishedParsed
	}
	if it.UpdatedParsed != nil {
		return *it.UpdatedParsed
	}
	return time.Time{}
}
