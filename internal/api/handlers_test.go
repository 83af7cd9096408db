package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/podcasto/backend/internal/api"
	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/storage"
	stripeinternal "github.com/podcasto/backend/internal/stripe"
	"github.com/podcasto/backend/internal/worker"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

// stubQuerier implements the subset of db.Querier the handlers touch.
// The embedded interface panics on anything unimplemented, which is exactly
// what we want: a handler reaching for an unstubbed query is a test bug.
type stubQuerier struct {
	db.Querier

	usersByToken   map[string]db.User
	podcasts       map[uuid.UUID]db.Podcast
	groups         map[uuid.UUID]db.PodcastGroup
	groupLanguages map[uuid.UUID][]db.ListGroupLanguagesRow
	episodes       map[uuid.UUID]db.Episode
	credits        map[uuid.UUID]db.UserCredit
	transactions   map[uuid.UUID][]db.CreditTransaction

	subscriptions map[string]bool // "userID/podcastID"
	unsubscribed  []string

	seenEvents      map[string]bool
	processedEvents []string
	failedEvents    []string
}

func newStubQuerier() *stubQuerier {
	return &stubQuerier{
		usersByToken:   map[string]db.User{},
		podcasts:       map[uuid.UUID]db.Podcast{},
		groups:         map[uuid.UUID]db.PodcastGroup{},
		groupLanguages: map[uuid.UUID][]db.ListGroupLanguagesRow{},
		episodes:       map[uuid.UUID]db.Episode{},
		credits:        map[uuid.UUID]db.UserCredit{},
		transactions:   map[uuid.UUID][]db.CreditTransaction{},
		subscriptions:  map[string]bool{},
		seenEvents:     map[string]bool{},
	}
}

func (q *stubQuerier) GetUserByAPIToken(_ context.Context, token string) (db.User, error) {
	u, ok := q.usersByToken[token]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (q *stubQuerier) ListPodcasts(_ context.Context) ([]db.Podcast, error) {
	out := make([]db.Podcast, 0, len(q.podcasts))
	for _, p := range q.podcasts {
		out = append(out, p)
	}
	return out, nil
}

func (q *stubQuerier) GetPodcastByID(_ context.Context, id uuid.UUID) (db.Podcast, error) {
	p, ok := q.podcasts[id]
	if !ok {
		return db.Podcast{}, sql.ErrNoRows
	}
	return p, nil
}

func (q *stubQuerier) GetPodcastGroupByID(_ context.Context, id uuid.UUID) (db.PodcastGroup, error) {
	g, ok := q.groups[id]
	if !ok {
		return db.PodcastGroup{}, sql.ErrNoRows
	}
	return g, nil
}

func (q *stubQuerier) ListGroupLanguages(_ context.Context, groupID uuid.UUID) ([]db.ListGroupLanguagesRow, error) {
	return q.groupLanguages[groupID], nil
}

func (q *stubQuerier) GetEpisodeByID(_ context.Context, id uuid.UUID) (db.Episode, error) {
	e, ok := q.episodes[id]
	if !ok {
		return db.Episode{}, sql.ErrNoRows
	}
	return e, nil
}

func (q *stubQuerier) ListEpisodesByPodcast(_ context.Context, podcastID uuid.UUID) ([]db.Episode, error) {
	var out []db.Episode
	for _, e := range q.episodes {
		if e.PodcastID == podcastID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (q *stubQuerier) ListEpisodesByStatus(_ context.Context, status db.EpisodeStatus) ([]db.Episode, error) {
	var out []db.Episode
	for _, e := range q.episodes {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (q *stubQuerier) SetEpisodeStatus(_ context.Context, p db.SetEpisodeStatusParams) (db.Episode, error) {
	e, ok := q.episodes[p.ID]
	if !ok {
		return db.Episode{}, sql.ErrNoRows
	}
	e.Status = p.Status
	q.episodes[p.ID] = e
	return e, nil
}

func (q *stubQuerier) CreateSubscription(_ context.Context, p db.CreateSubscriptionParams) (db.Subscription, error) {
	key := p.UserID.String() + "/" + p.PodcastID.String()
	if q.subscriptions[key] {
		// ON CONFLICT DO NOTHING surfaces as no row returned.
		return db.Subscription{}, sql.ErrNoRows
	}
	q.subscriptions[key] = true
	return db.Subscription{UserID: p.UserID, PodcastID: p.PodcastID}, nil
}

func (q *stubQuerier) DeleteSubscription(_ context.Context, p db.DeleteSubscriptionParams) error {
	key := p.UserID.String() + "/" + p.PodcastID.String()
	delete(q.subscriptions, key)
	q.unsubscribed = append(q.unsubscribed, key)
	return nil
}

func (q *stubQuerier) GetUserCredits(_ context.Context, userID uuid.UUID) (db.UserCredit, error) {
	c, ok := q.credits[userID]
	if !ok {
		return db.UserCredit{}, sql.ErrNoRows
	}
	return c, nil
}

func (q *stubQuerier) ListCreditTransactions(_ context.Context, p db.ListCreditTransactionsParams) ([]db.CreditTransaction, error) {
	return q.transactions[p.UserID], nil
}

func (q *stubQuerier) UpsertStripeEvent(_ context.Context, p db.UpsertStripeEventParams) (db.StripeEvent, error) {
	if q.seenEvents[p.StripeEventID] {
		return db.StripeEvent{}, sql.ErrNoRows
	}
	q.seenEvents[p.StripeEventID] = true
	return db.StripeEvent{StripeEventID: p.StripeEventID, Type: p.Type}, nil
}

func (q *stubQuerier) MarkStripeEventProcessed(_ context.Context, eventID string) (db.StripeEvent, error) {
	q.processedEvents = append(q.processedEvents, eventID)
	return db.StripeEvent{StripeEventID: eventID}, nil
}

func (q *stubQuerier) MarkStripeEventFailed(_ context.Context, p db.MarkStripeEventFailedParams) (db.StripeEvent, error) {
	q.failedEvents = append(q.failedEvents, p.StripeEventID)
	return db.StripeEvent{StripeEventID: p.StripeEventID}, nil
}

func (q *stubQuerier) ListDuePodcasts(_ context.Context) ([]db.ListDuePodcastsRow, error) {
	return nil, nil
}

func (q *stubQuerier) ListGeneratingEpisodes(_ context.Context) ([]db.Episode, error) {
	return nil, nil
}

// stubBucket satisfies storage.Client with canned answers.
type stubBucket struct {
	objects    []storage.Object
	presignErr error
	deleted    []string
}

func (b *stubBucket) List(_ context.Context, _ string) ([]storage.Object, error) {
	return b.objects, nil
}

func (b *stubBucket) Exists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (b *stubBucket) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	if b.presignErr != nil {
		return "", b.presignErr
	}
	return "https://signed.example.com/" + key, nil
}

func (b *stubBucket) Delete(_ context.Context, key string) error {
	b.deleted = append(b.deleted, key)
	return nil
}

func (b *stubBucket) GetJSON(_ context.Context, _ string, _ any) error {
	return nil
}

func (b *stubBucket) PutJSON(_ context.Context, _ string, _ any) (int64, error) {
	return 0, nil
}

// stubStripe is a controllable Stripe client.
type stubStripe struct {
	pi          stripeinternal.PaymentIntent
	createErr   error
	verifyEvent stripeinternal.Event
	verifyErr   error
}

func (s *stubStripe) CreatePaymentIntent(_ context.Context, _ stripeinternal.CreatePaymentIntentParams) (stripeinternal.PaymentIntent, error) {
	return s.pi, s.createErr
}

func (s *stubStripe) VerifyWebhook(_ []byte, _ string, _ string) (stripeinternal.Event, error) {
	return s.verifyEvent, s.verifyErr
}

// stubWorker records enqueued episodes.
type stubWorker struct {
	enqueued []uuid.UUID
	err      error
}

func (w *stubWorker) Enqueue(_ context.Context, id uuid.UUID) error {
	w.enqueued = append(w.enqueued, id)
	return w.err
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

type testDeps struct {
	q       *stubQuerier
	bucket  *stubBucket
	stripe  *stubStripe
	worker  *stubWorker
	handler http.Handler
}

func newTestServer(t *testing.T, cfgOverrides ...func(*api.Config)) *testDeps {
	t.Helper()

	q := newStubQuerier()
	bucket := &stubBucket{}
	strp := &stubStripe{
		pi: stripeinternal.PaymentIntent{ID: "pi_test", ClientSecret: "cs_test"},
	}
	wk := &stubWorker{}

	cfg := api.Config{
		Env:                 "development",
		BaseURL:             "http://localhost:8080",
		StripeWebhookSecret: "whsec_test",
		CronSecret:          "cron_test",
		CreditPackSize:      10,
		CreditPackCents:     500,
	}
	for _, fn := range cfgOverrides {
		fn(&cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// The cron endpoints only need the list queries; both stubs return empty.
	cron := worker.NewCron(q, nil, bucket, nil, wk, 0, logger)

	handler := api.NewServer(q, nil, bucket, strp, wk, cron, cfg, logger)

	return &testDeps{
		q:       q,
		bucket:  bucket,
		stripe:  strp,
		worker:  wk,
		handler: handler,
	}
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v (raw: %s)", err, rr.Body.String())
	}
}

// userWithToken seeds a user and returns their ID and API token.
func userWithToken(deps *testDeps, admin bool) (uuid.UUID, string) {
	id := uuid.New()
	token := "tok_" + id.String()
	deps.q.usersByToken[token] = db.User{
		ID:       id,
		Email:    fmt.Sprintf("%s@example.com", id),
		IsAdmin:  admin,
		ApiToken: token,
	}
	return id, token
}

func seedPodcast(deps *testDeps, title string) db.Podcast {
	p := db.Podcast{
		ID:       uuid.New(),
		Title:    title,
		Language: "en",
		Status:   db.PodcastStatusActive,
	}
	deps.q.podcasts[p.ID] = p
	return p
}

// ─── GET /healthz ─────────────────────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodGet, "/healthz", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// ─── GET /api/podcasts ────────────────────────────────────────────────────────

func TestListPodcasts_ReturnsCatalog(t *testing.T) {
	deps := newTestServer(t)
	seedPodcast(deps, "Tech Daily")
	seedPodcast(deps, "Markets Weekly")

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/podcasts", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Podcasts []struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"podcasts"`
	}
	decodeJSON(t, rr, &resp)
	if len(resp.Podcasts) != 2 {
		t.Fatalf("expected 2 podcasts, got %d", len(resp.Podcasts))
	}
	if resp.Podcasts[0].Status != "active" {
		t.Errorf("status: got %q", resp.Podcasts[0].Status)
	}
}

func TestGetPodcast_NotFoundReturns404(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodGet, "/api/podcasts/"+uuid.New().String(), nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGetPodcast_BadUUIDReturns400(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodGet, "/api/podcasts/not-a-uuid", nil, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

// ─── GET /api/groups/{groupID} ───────────────────────────────────────────────

func TestGetGroup_ReturnsLanguagesPrimaryFirst(t *testing.T) {
	deps := newTestServer(t)
	g := db.PodcastGroup{ID: uuid.New(), BaseTitle: "World News"}
	deps.q.groups[g.ID] = g

	en := seedPodcast(deps, "World News")
	es := seedPodcast(deps, "Noticias del Mundo")
	deps.q.groupLanguages[g.ID] = []db.ListGroupLanguagesRow{
		{GroupID: g.ID, PodcastID: en.ID, Language: "en", IsPrimary: true, Title: en.Title, Status: db.PodcastStatusActive},
		{GroupID: g.ID, PodcastID: es.ID, Language: "es", IsPrimary: false, Title: es.Title, Status: db.PodcastStatusActive},
	}

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/groups/"+g.ID.String(), nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		BaseTitle string `json:"base_title"`
		Languages []struct {
			Language  string `json:"language"`
			IsPrimary bool   `json:"is_primary"`
		} `json:"languages"`
	}
	decodeJSON(t, rr, &resp)
	if resp.BaseTitle != "World News" {
		t.Errorf("base_title: got %q", resp.BaseTitle)
	}
	if len(resp.Languages) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(resp.Languages))
	}
	if !resp.Languages[0].IsPrimary {
		t.Error("first language should be the primary")
	}
}

func TestGetGroup_NotFoundReturns404(t *testing.T) {
	deps := newTestServer(t)
	rr := doRequest(t, deps.handler, http.MethodGet, "/api/groups/"+uuid.New().String(), nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

// ─── AUTH ─────────────────────────────────────────────────────────────────────

func TestSubscribe_MissingTokenReturns401(t *testing.T) {
	deps := newTestServer(t)
	p := seedPodcast(deps, "Tech Daily")

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/podcasts/"+p.ID.String()+"/subscribe", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestSubscribe_InvalidTokenReturns401(t *testing.T) {
	deps := newTestServer(t)
	p := seedPodcast(deps, "Tech Daily")

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/podcasts/"+p.ID.String()+"/subscribe", nil,
		map[string]string{"X-Api-Token": "totally_fake"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAdminRoute_NonAdminReturns403(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, false)

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/admin/episodes?status=failed", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestCronRoute_AcceptsSharedSecret(t *testing.T) {
	deps := newTestServer(t)

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/admin/cron/podcast-scheduler", nil,
		map[string]string{"X-Cron-Secret": "cron_test"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestCronRoute_WrongSecretWithoutTokenReturns401(t *testing.T) {
	deps := newTestServer(t)

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/admin/cron/episode-checker", nil,
		map[string]string{"X-Cron-Secret": "wrong"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

// ─── POST /api/podcasts/{podcastID}/subscribe ────────────────────────────────

func TestSubscribe_IsIdempotent(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, false)
	p := seedPodcast(deps, "Tech Daily")

	headers := map[string]string{"X-Api-Token": token}
	path := "/api/podcasts/" + p.ID.String() + "/subscribe"

	for i := 0; i < 2; i++ {
		rr := doRequest(t, deps.handler, http.MethodPost, path, nil, headers)
		if rr.Code != http.StatusOK {
			t.Fatalf("subscribe %d: expected 200, got %d: %s", i+1, rr.Code, rr.Body.String())
		}
	}
	if len(deps.q.subscriptions) != 1 {
		t.Errorf("expected 1 subscription row, got %d", len(deps.q.subscriptions))
	}
}

func TestSubscribe_UnknownPodcastReturns404(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, false)

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/podcasts/"+uuid.New().String()+"/subscribe", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestUnsubscribe_RemovesSubscription(t *testing.T) {
	deps := newTestServer(t)
	userID, token := userWithToken(deps, false)
	p := seedPodcast(deps, "Tech Daily")
	deps.q.subscriptions[userID.String()+"/"+p.ID.String()] = true

	rr := doRequest(t, deps.handler, http.MethodDelete, "/api/podcasts/"+p.ID.String()+"/subscribe", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(deps.q.subscriptions) != 0 {
		t.Error("subscription should have been removed")
	}
}

// ─── GET /api/me/credits ──────────────────────────────────────────────────────

func TestGetCredits_NoRowMeansZeroBalance(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, false)

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/me/credits", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Balance      int32             `json:"balance"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Balance != 0 {
		t.Errorf("balance: got %d, want 0", resp.Balance)
	}
	if resp.Transactions == nil {
		t.Error("transactions should be an empty array, not null")
	}
}

func TestGetCredits_ReturnsBalanceAndHistory(t *testing.T) {
	deps := newTestServer(t)
	userID, token := userWithToken(deps, false)
	deps.q.credits[userID] = db.UserCredit{UserID: userID, Balance: 7}
	deps.q.transactions[userID] = []db.CreditTransaction{
		{UserID: userID, Amount: 10, Reason: db.CreditReasonPurchase, Description: "credit pack purchase"},
		{UserID: userID, Amount: -3, Reason: db.CreditReasonEpisodeGeneration, Description: "on-demand episode"},
	}

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/me/credits", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Balance      int32 `json:"balance"`
		Transactions []struct {
			Amount int32  `json:"amount"`
			Reason string `json:"reason"`
		} `json:"transactions"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Balance != 7 {
		t.Errorf("balance: got %d, want 7", resp.Balance)
	}
	if len(resp.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(resp.Transactions))
	}
	if resp.Transactions[0].Reason != "purchase" {
		t.Errorf("reason: got %q", resp.Transactions[0].Reason)
	}
}

// ─── POST /api/me/checkout ────────────────────────────────────────────────────

func TestCreateCheckout_ReturnsClientSecret(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, false)

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/me/checkout", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		ClientSecret string `json:"client_secret"`
		AmountCents  int64  `json:"amount_cents"`
		Credits      int32  `json:"credits"`
	}
	decodeJSON(t, rr, &resp)
	if resp.ClientSecret != "cs_test" {
		t.Errorf("client_secret: got %q", resp.ClientSecret)
	}
	if resp.AmountCents != 500 || resp.Credits != 10 {
		t.Errorf("pack: got %d cents / %d credits", resp.AmountCents, resp.Credits)
	}
}

// ─── POST /api/webhooks/stripe ────────────────────────────────────────────────

func TestStripeWebhook_InvalidSignatureReturns400(t *testing.T) {
	deps := newTestServer(t)
	deps.stripe.verifyErr = fmt.Errorf("signature mismatch")

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/webhooks/stripe",
		map[string]string{"anything": "at all"}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestStripeWebhook_UnhandledEventTypeIsAcked(t *testing.T) {
	deps := newTestServer(t)
	deps.stripe.verifyEvent = stripeinternal.Event{ID: "evt_1", Type: "charge.refunded"}

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/webhooks/stripe",
		map[string]string{}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(deps.q.processedEvents) != 1 || deps.q.processedEvents[0] != "evt_1" {
		t.Errorf("processed events: got %v", deps.q.processedEvents)
	}
}

func TestStripeWebhook_DuplicateDeliveryReturns200(t *testing.T) {
	deps := newTestServer(t)
	deps.stripe.verifyEvent = stripeinternal.Event{ID: "evt_dup", Type: "charge.refunded"}

	for i := 0; i < 2; i++ {
		rr := doRequest(t, deps.handler, http.MethodPost, "/api/webhooks/stripe",
			map[string]string{}, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("delivery %d: expected 200, got %d", i+1, rr.Code)
		}
	}
	// Only the first delivery reaches the processed mark; the replay short-
	// circuits at the event upsert.
	if len(deps.q.processedEvents) != 1 {
		t.Errorf("expected 1 processed event, got %d", len(deps.q.processedEvents))
	}
}

// ─── EPISODES ─────────────────────────────────────────────────────────────────

func TestGetEpisode_CompletedEpisodeGetsPresignedAudioURL(t *testing.T) {
	deps := newTestServer(t)
	p := seedPodcast(deps, "Tech Daily")
	e := db.Episode{
		ID:        uuid.New(),
		PodcastID: p.ID,
		Title:     "Tech Daily: August 30, 2026",
		Language:  "en",
		Status:    db.EpisodeStatusCompleted,
		AudioUrl:  sql.NullString{String: "audio/" + p.ID.String() + "/ep.mp3", Valid: true},
	}
	deps.q.episodes[e.ID] = e

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/episodes/"+e.ID.String(), nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		AudioURL string `json:"audio_url"`
	}
	decodeJSON(t, rr, &resp)
	if resp.AudioURL != "https://signed.example.com/"+e.AudioUrl.String {
		t.Errorf("audio_url: got %q", resp.AudioURL)
	}
}

func TestGetEpisode_PendingEpisodeHasNoAudioURL(t *testing.T) {
	deps := newTestServer(t)
	p := seedPodcast(deps, "Tech Daily")
	e := db.Episode{
		ID:        uuid.New(),
		PodcastID: p.ID,
		Title:     "in progress",
		Status:    db.EpisodeStatusPending,
		AudioUrl:  sql.NullString{String: "audio/stale.mp3", Valid: true},
	}
	deps.q.episodes[e.ID] = e

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/episodes/"+e.ID.String(), nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		AudioURL string `json:"audio_url"`
	}
	decodeJSON(t, rr, &resp)
	if resp.AudioURL != "" {
		t.Errorf("audio_url should be empty for a pending episode, got %q", resp.AudioURL)
	}
}

func TestListEpisodesByStatus_UnknownStatusReturns400(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, true)

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/admin/episodes?status=exploded", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRetryEpisode_ResetsFailedEpisodeAndEnqueues(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, true)
	p := seedPodcast(deps, "Tech Daily")
	e := db.Episode{
		ID:           uuid.New(),
		PodcastID:    p.ID,
		Title:        "broken run",
		Status:       db.EpisodeStatusFailed,
		ErrorMessage: sql.NullString{String: "generation timed out", Valid: true},
	}
	deps.q.episodes[e.ID] = e

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/admin/episodes/"+e.ID.String()+"/retry", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	if got := deps.q.episodes[e.ID].Status; got != db.EpisodeStatusPending {
		t.Errorf("status after retry: got %q, want pending", got)
	}
	if len(deps.worker.enqueued) != 1 || deps.worker.enqueued[0] != e.ID {
		t.Errorf("enqueued: got %v", deps.worker.enqueued)
	}
}

func TestRetryEpisode_NonFailedEpisodeReturns409(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, true)
	p := seedPodcast(deps, "Tech Daily")
	e := db.Episode{ID: uuid.New(), PodcastID: p.ID, Status: db.EpisodeStatusCompleted}
	deps.q.episodes[e.ID] = e

	rr := doRequest(t, deps.handler, http.MethodPost, "/api/admin/episodes/"+e.ID.String()+"/retry", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(deps.worker.enqueued) != 0 {
		t.Error("nothing should have been enqueued")
	}
}

// ─── ADMIN STORAGE ────────────────────────────────────────────────────────────

func TestPresignStorage_MissingKeyReturns400(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, true)

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/admin/storage/url", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListStorage_ReturnsObjects(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, true)
	deps.bucket.objects = []storage.Object{
		{Key: "telegram/channel_a/2026-08-29.json", Size: 2048, LastModified: time.Now()},
	}

	rr := doRequest(t, deps.handler, http.MethodGet, "/api/admin/storage?prefix=telegram/", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Objects []struct {
			Key  string `json:"key"`
			Size int64  `json:"size"`
		} `json:"objects"`
	}
	decodeJSON(t, rr, &resp)
	if len(resp.Objects) != 1 || resp.Objects[0].Size != 2048 {
		t.Errorf("objects: got %+v", resp.Objects)
	}
}

// ─── ADMIN COSTS ──────────────────────────────────────────────────────────────

func TestDailyCosts_ToBeforeFromReturns400(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, true)

	rr := doRequest(t, deps.handler, http.MethodGet,
		"/api/admin/costs/daily?from=2026-08-20&to=2026-08-01", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestDailyCosts_MalformedDateReturns400(t *testing.T) {
	deps := newTestServer(t)
	_, token := userWithToken(deps, true)

	rr := doRequest(t, deps.handler, http.MethodGet,
		"/api/admin/costs/daily?from=20-08-2026", nil,
		map[string]string{"X-Api-Token": token})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
