package store_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/store"
)

// ─── TEST INFRASTRUCTURE ──────────────────────────────────────────────────────

// openTestDB returns a *sql.DB from DATABASE_URL. Skips if the env var is
// not set so the test suite still passes in CI without a Postgres instance.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set — skipping store integration tests")
	}
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if err := pool.PingContext(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

// seedUser inserts a user and registers cleanup for every table a test can
// touch through that user.
func seedUser(t *testing.T, ctx context.Context, pool *sql.DB, q db.Querier) db.User {
	t.Helper()
	u, err := q.CreateUser(ctx, db.CreateUserParams{
		Email:       fmt.Sprintf("%s@example.com", uuid.New()),
		DisplayName: "Test Listener",
		ApiToken:    "tok_" + uuid.New().String(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM episodes WHERE created_by=$1", u.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM credit_transactions WHERE user_id=$1", u.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM user_credits WHERE user_id=$1", u.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM users WHERE id=$1", u.ID)
	})
	return u
}

// seedPodcast inserts a podcast and registers its cleanup.
func seedPodcast(t *testing.T, ctx context.Context, pool *sql.DB, q db.Querier, title string) db.Podcast {
	t.Helper()
	p, err := q.CreatePodcast(ctx, db.CreatePodcastParams{
		Title:    title + " " + t.Name(),
		Language: "en",
	})
	if err != nil {
		t.Fatalf("seed podcast: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM episodes WHERE podcast_id=$1", p.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM podcast_languages WHERE podcast_id=$1", p.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM podcasts WHERE id=$1", p.ID)
	})
	return p
}

// ─── GrantPurchasedCredits ────────────────────────────────────────────────────

func TestGrantPurchasedCredits_FirstGrantBumpsBalance(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)

	credit, err := st.GrantPurchasedCredits(ctx, store.GrantPurchasedCreditsParams{
		UserID:              user.ID,
		Credits:             10,
		StripePaymentIntent: "pi_grant_" + uuid.New().String(),
		Description:         "credit pack purchase",
	})
	if err != nil {
		t.Fatalf("GrantPurchasedCredits: %v", err)
	}
	if credit.Balance != 10 {
		t.Errorf("balance: got %d, want 10", credit.Balance)
	}

	transactions, err := q.ListCreditTransactions(ctx, db.ListCreditTransactionsParams{
		UserID: user.ID,
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("ListCreditTransactions: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}
	if transactions[0].Reason != db.CreditReasonPurchase || transactions[0].Amount != 10 {
		t.Errorf("transaction: %+v", transactions[0])
	}
}

func TestGrantPurchasedCredits_DuplicateDeliveryReturnsSentinel(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)

	params := store.GrantPurchasedCreditsParams{
		UserID:              user.ID,
		Credits:             10,
		StripePaymentIntent: "pi_dup_" + uuid.New().String(),
		Description:         "credit pack purchase",
	}

	if _, err := st.GrantPurchasedCredits(ctx, params); err != nil {
		t.Fatalf("first grant: %v", err)
	}

	// A replayed webhook delivery carries the same payment intent.
	_, err := st.GrantPurchasedCredits(ctx, params)
	if !errors.Is(err, store.ErrCreditsAlreadyGranted) {
		t.Errorf("expected ErrCreditsAlreadyGranted, got: %v", err)
	}

	// The balance must reflect exactly one grant.
	credit, err := q.GetUserCredits(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserCredits: %v", err)
	}
	if credit.Balance != 10 {
		t.Errorf("balance after duplicate: got %d, want 10", credit.Balance)
	}
}

// ─── CreateUserEpisode ────────────────────────────────────────────────────────

func TestCreateUserEpisode_DebitsOneCreditAndCreatesPendingEpisode(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	podcast := seedPodcast(t, ctx, pool, q, "Tech Daily")

	if _, err := st.GrantPurchasedCredits(ctx, store.GrantPurchasedCreditsParams{
		UserID:              user.ID,
		Credits:             2,
		StripePaymentIntent: "pi_episode_" + uuid.New().String(),
		Description:         "credit pack purchase",
	}); err != nil {
		t.Fatalf("grant credits: %v", err)
	}

	episode, err := st.CreateUserEpisode(ctx, store.CreateUserEpisodeParams{
		UserID:    user.ID,
		PodcastID: podcast.ID,
		Title:     "On-demand episode",
		Language:  podcast.Language,
	})
	if err != nil {
		t.Fatalf("CreateUserEpisode: %v", err)
	}
	if episode.Status != db.EpisodeStatusPending {
		t.Errorf("status: got %s, want pending", episode.Status)
	}
	if !episode.CreatedBy.Valid || episode.CreatedBy.UUID != user.ID {
		t.Errorf("created_by: %+v", episode.CreatedBy)
	}

	credit, err := q.GetUserCredits(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserCredits: %v", err)
	}
	if credit.Balance != 1 {
		t.Errorf("balance: got %d, want 1", credit.Balance)
	}
}

func TestCreateUserEpisode_InsufficientCreditsRollsBackEverything(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	podcast := seedPodcast(t, ctx, pool, q, "Tech Daily")

	// No credits granted — the debit must fail and take the episode insert
	// down with it.
	_, err := st.CreateUserEpisode(ctx, store.CreateUserEpisodeParams{
		UserID:    user.ID,
		PodcastID: podcast.ID,
		Title:     "should not exist",
		Language:  podcast.Language,
	})
	if !errors.Is(err, store.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got: %v", err)
	}

	episodes, err := q.ListEpisodesByPodcast(ctx, podcast.ID)
	if err != nil {
		t.Fatalf("ListEpisodesByPodcast: %v", err)
	}
	if len(episodes) != 0 {
		t.Errorf("expected no episodes, got %d", len(episodes))
	}

	transactions, err := q.ListCreditTransactions(ctx, db.ListCreditTransactionsParams{
		UserID: user.ID,
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("ListCreditTransactions: %v", err)
	}
	if len(transactions) != 0 {
		t.Errorf("expected no transactions, got %d", len(transactions))
	}
}

// ─── MarkEpisodeFailed ────────────────────────────────────────────────────────

func TestMarkEpisodeFailed_SetsStatusAndMessage(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	podcast := seedPodcast(t, ctx, pool, q, "Tech Daily")
	episode, err := q.CreateEpisode(ctx, db.CreateEpisodeParams{
		PodcastID: podcast.ID,
		Title:     "doomed run",
		Language:  podcast.Language,
	})
	if err != nil {
		t.Fatalf("create episode: %v", err)
	}

	failed, err := st.MarkEpisodeFailed(ctx, episode.ID, "audio generation timed out")
	if err != nil {
		t.Fatalf("MarkEpisodeFailed: %v", err)
	}
	if failed.Status != db.EpisodeStatusFailed {
		t.Errorf("status: got %s, want failed", failed.Status)
	}
	if !failed.ErrorMessage.Valid || failed.ErrorMessage.String != "audio generation timed out" {
		t.Errorf("error message: %+v", failed.ErrorMessage)
	}
}

// ─── SetPrimaryLanguage ───────────────────────────────────────────────────────

func TestSetPrimaryLanguage_MovesPrimaryFlag(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	en := seedPodcast(t, ctx, pool, q, "World News EN")
	es := seedPodcast(t, ctx, pool, q, "World News ES")

	group, err := q.CreatePodcastGroup(ctx, "World News "+t.Name())
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM podcast_languages WHERE group_id=$1", group.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM podcast_groups WHERE id=$1", group.ID)
	})

	if _, err := q.AttachPodcastLanguage(ctx, db.AttachPodcastLanguageParams{
		GroupID:   group.ID,
		PodcastID: en.ID,
		Language:  "en",
		IsPrimary: true,
	}); err != nil {
		t.Fatalf("attach en: %v", err)
	}
	if _, err := q.AttachPodcastLanguage(ctx, db.AttachPodcastLanguageParams{
		GroupID:   group.ID,
		PodcastID: es.ID,
		Language:  "es",
	}); err != nil {
		t.Fatalf("attach es: %v", err)
	}

	lang, err := st.SetPrimaryLanguage(ctx, group.ID, es.ID)
	if err != nil {
		t.Fatalf("SetPrimaryLanguage: %v", err)
	}
	if !lang.IsPrimary || lang.PodcastID != es.ID {
		t.Errorf("returned language: %+v", lang)
	}

	// Exactly one primary, and it is the Spanish variant.
	rows, err := q.ListGroupLanguages(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListGroupLanguages: %v", err)
	}
	var primaries int
	for _, row := range rows {
		if row.IsPrimary {
			primaries++
			if row.PodcastID != es.ID {
				t.Errorf("primary is %s, want %s", row.PodcastID, es.ID)
			}
		}
	}
	if primaries != 1 {
		t.Errorf("expected exactly 1 primary, got %d", primaries)
	}
}

func TestSetPrimaryLanguage_PodcastOutsideGroupReturnsSentinel(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	en := seedPodcast(t, ctx, pool, q, "World News EN")
	outsider := seedPodcast(t, ctx, pool, q, "Unrelated Show")

	group, err := q.CreatePodcastGroup(ctx, "World News "+t.Name())
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM podcast_languages WHERE group_id=$1", group.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM podcast_groups WHERE id=$1", group.ID)
	})

	if _, err := q.AttachPodcastLanguage(ctx, db.AttachPodcastLanguageParams{
		GroupID:   group.ID,
		PodcastID: en.ID,
		Language:  "en",
		IsPrimary: true,
	}); err != nil {
		t.Fatalf("attach en: %v", err)
	}

	_, err = st.SetPrimaryLanguage(ctx, group.ID, outsider.ID)
	if !errors.Is(err, store.ErrPodcastNotInGroup) {
		t.Errorf("expected ErrPodcastNotInGroup, got: %v", err)
	}

	// The English variant must still be primary after the rollback.
	rows, err := q.ListGroupLanguages(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListGroupLanguages: %v", err)
	}
	if len(rows) != 1 || !rows[0].IsPrimary {
		t.Errorf("group languages after failed move: %+v", rows)
	}
}
