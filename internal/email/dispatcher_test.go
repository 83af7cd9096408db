package email

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/podcasto/backend/internal/db"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

// stubQuerier implements the db.Querier methods the dispatcher touches.
// Everything else panics via the embedded interface.
type stubQuerier struct {
	db.Querier

	subscriberIDs []uuid.UUID
	sentIDs       []uuid.UUID
	users         []db.User

	inserted [][]uuid.UUID
}

func (s *stubQuerier) ListSubscriberIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return s.subscriberIDs, nil
}

func (s *stubQuerier) ListSentUserIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return s.sentIDs, nil
}

func (s *stubQuerier) ListUsersByIDs(_ context.Context, ids []uuid.UUID) ([]db.User, error) {
	byID := make(map[uuid.UUID]db.User, len(s.users))
	for _, u := range s.users {
		byID[u.ID] = u
	}
	var out []db.User
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubQuerier) InsertSentEpisodes(_ context.Context, arg db.InsertSentEpisodesParams) error {
	s.inserted = append(s.inserted, arg.UserIds)
	return nil
}

// stubSender records every batch it was asked to send and can fail the first
// N calls with a configurable error.
type stubSender struct {
	batches  [][]Recipient
	failures int
	err      error
}

func (s *stubSender) SendEpisodeBatch(_ context.Context, _ EpisodeParams, recipients []Recipient) ([]Result, error) {
	s.batches = append(s.batches, recipients)
	if s.failures > 0 {
		s.failures--
		return nil, s.err
	}
	results := make([]Result, len(recipients))
	for i, r := range recipients {
		results[i] = Result{UserID: r.UserID, Email: r.Email, Delivered: true}
	}
	return results, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUsers(n int) ([]db.User, []uuid.UUID) {
	users := make([]db.User, n)
	ids := make([]uuid.UUID, n)
	for i := range users {
		id := uuid.New()
		users[i] = db.User{
			ID:                 id,
			Email:              fmt.Sprintf("user%d@example.com", i),
			DisplayName:        fmt.Sprintf("User %d", i),
			EmailNotifications: true,
		}
		ids[i] = id
	}
	return users, ids
}

func newTestDispatcher(q db.Querier, sender Sender) *Dispatcher {
	d := NewDispatcher(q, sender, nil, discardLogger(), "https://podcasto.example", 50, 1000, 3)
	d.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return d
}

func testEpisode() (db.Episode, db.Podcast) {
	podcast := db.Podcast{ID: uuid.New(), Title: "Daily Tech"}
	episode := db.Episode{ID: uuid.New(), PodcastID: podcast.ID, Title: "Episode 1"}
	return episode, podcast
}

// ─── BATCHING ─────────────────────────────────────────────────────────────────

func TestNotifySubscribers_SplitsIntoBatchesOfAtMost50(t *testing.T) {
	users, ids := seedUsers(120)
	q := &stubQuerier{subscriberIDs: ids, users: users}
	sender := &stubSender{}

	episode, podcast := testEpisode()
	sum, err := newTestDispatcher(q, sender).NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.batches) != 3 {
		t.Fatalf("expected 3 batches for 120 recipients, got %d", len(sender.batches))
	}
	for i, want := range []int{50, 50, 20} {
		if len(sender.batches[i]) != want {
			t.Errorf("batch %d: expected %d recipients, got %d", i, want, len(sender.batches[i]))
		}
	}
	if sum.Sent != 120 {
		t.Errorf("expected 120 sent, got %d", sum.Sent)
	}
}

func TestNotifySubscribers_RecordsEachBatchBeforeTheNext(t *testing.T) {
	users, ids := seedUsers(60)
	q := &stubQuerier{subscriberIDs: ids, users: users}
	sender := &stubSender{}

	episode, podcast := testEpisode()
	_, err := newTestDispatcher(q, sender).NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(q.inserted) != 2 {
		t.Fatalf("expected 2 sent_episodes inserts (one per batch), got %d", len(q.inserted))
	}
	if len(q.inserted[0]) != 50 || len(q.inserted[1]) != 10 {
		t.Errorf("unexpected insert sizes: %d, %d", len(q.inserted[0]), len(q.inserted[1]))
	}
}

// ─── FILTERING ────────────────────────────────────────────────────────────────

func TestNotifySubscribers_SkipsAlreadyNotified(t *testing.T) {
	users, ids := seedUsers(10)
	q := &stubQuerier{subscriberIDs: ids, users: users, sentIDs: ids[:4]}
	sender := &stubSender{}

	episode, podcast := testEpisode()
	sum, err := newTestDispatcher(q, sender).NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Sent != 6 {
		t.Errorf("expected 6 sent, got %d", sum.Sent)
	}
	if sum.Skipped != 4 {
		t.Errorf("expected 4 skipped, got %d", sum.Skipped)
	}
	for _, batch := range sender.batches {
		for _, r := range batch {
			for _, sent := range ids[:4] {
				if r.UserID == sent {
					t.Errorf("user %s was notified twice", sent)
				}
			}
		}
	}
}

func TestNotifySubscribers_SkipsOptedOutAndMissingEmail(t *testing.T) {
	users, ids := seedUsers(5)
	users[1].EmailNotifications = false
	users[3].Email = ""
	q := &stubQuerier{subscriberIDs: ids, users: users}
	sender := &stubSender{}

	episode, podcast := testEpisode()
	sum, err := newTestDispatcher(q, sender).NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Sent != 3 {
		t.Errorf("expected 3 sent, got %d", sum.Sent)
	}
	if sum.Skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", sum.Skipped)
	}
}

func TestNotifySubscribers_NoSubscribers_NoSends(t *testing.T) {
	q := &stubQuerier{}
	sender := &stubSender{}

	episode, podcast := testEpisode()
	sum, err := newTestDispatcher(q, sender).NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.batches) != 0 {
		t.Errorf("expected no sends, got %d", len(sender.batches))
	}
	if sum.Sent != 0 || sum.Failed != 0 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}

// ─── RETRY POLICY ─────────────────────────────────────────────────────────────

func TestNotifySubscribers_TransientFailure_RetriedWithBackoff(t *testing.T) {
	users, ids := seedUsers(10)
	q := &stubQuerier{subscriberIDs: ids, users: users}
	sender := &stubSender{
		failures: 2,
		err:      &TransientError{Err: errors.New("throttled")},
	}

	var delays []time.Duration
	d := newTestDispatcher(q, sender)
	d.sleep = func(_ context.Context, delay time.Duration) error {
		delays = append(delays, delay)
		return nil
	}

	episode, podcast := testEpisode()
	sum, err := d.NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.batches) != 3 {
		t.Errorf("expected 3 attempts (2 failures + 1 success), got %d", len(sender.batches))
	}
	if sum.Sent != 10 {
		t.Errorf("expected 10 sent after retry, got %d", sum.Sent)
	}
	want := []time.Duration{1 * time.Second, 2 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("expected %d backoff sleeps, got %d", len(want), len(delays))
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("sleep %d: expected %v, got %v", i, want[i], delays[i])
		}
	}
}

func TestNotifySubscribers_TransientFailure_GivesUpAfterMaxAttempts(t *testing.T) {
	users, ids := seedUsers(10)
	q := &stubQuerier{subscriberIDs: ids, users: users}
	sender := &stubSender{
		failures: 99,
		err:      &TransientError{Err: errors.New("throttled")},
	}

	episode, podcast := testEpisode()
	sum, err := newTestDispatcher(q, sender).NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("batch exhaustion should not fail the run: %v", err)
	}

	if len(sender.batches) != 3 {
		t.Errorf("expected exactly maxAttempts=3 attempts, got %d", len(sender.batches))
	}
	if sum.Failed != 10 {
		t.Errorf("expected 10 failed, got %d", sum.Failed)
	}
	if len(q.inserted) != 0 {
		t.Errorf("failed batch must not be recorded as sent")
	}
}

func TestNotifySubscribers_PermanentFailure_NotRetried(t *testing.T) {
	users, ids := seedUsers(60)
	q := &stubQuerier{subscriberIDs: ids, users: users}
	sender := &stubSender{
		failures: 1,
		err:      errors.New("MessageRejected: address not verified"),
	}

	episode, podcast := testEpisode()
	sum, err := newTestDispatcher(q, sender).NotifySubscribers(context.Background(), episode, podcast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First batch fails once and is abandoned; second batch still goes out.
	if len(sender.batches) != 2 {
		t.Errorf("expected 2 send calls (no retry of the permanent failure), got %d", len(sender.batches))
	}
	if sum.Failed != 50 {
		t.Errorf("expected 50 failed, got %d", sum.Failed)
	}
	if sum.Sent != 10 {
		t.Errorf("expected 10 sent, got %d", sum.Sent)
	}
}

func TestBackoffDelay_DoublesAndCaps(t *testing.T) {
	want := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
	}
	for i, w := range want {
		if got := backoffDelay(i + 1); got != w {
			t.Errorf("attempt %d: expected %v, got %v", i+1, w, got)
		}
	}
}
