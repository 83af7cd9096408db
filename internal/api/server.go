// Package api implements the HTTP layer for Podcasto. Handlers are methods
// on *Server. Each handler file is responsible for one resource group and
// only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/storage"
	"github.com/podcasto/backend/internal/store"
	stripeinternal "github.com/podcasto/backend/internal/stripe"
	"github.com/podcasto/backend/internal/worker"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// BaseURL is used to construct episode links in notification emails and
	// API responses. e.g. "https://app.podcasto.fm"
	BaseURL string

	// StripeWebhookSecret is the signing secret from the Stripe dashboard.
	StripeWebhookSecret string

	// CronSecret authorizes the external scheduler to hit the cron endpoints
	// without a user token.
	CronSecret string

	// CreditPackSize is the number of credits one purchase grants.
	CreditPackSize int32

	// CreditPackCents is the Stripe charge for one credit pack.
	CreditPackCents int64

	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// q handles all single-query reads. Injected directly — no repo wrapper.
	q db.Querier

	// store handles multi-step atomic writes (credits, episode creation).
	store *store.Store

	// bucket serves the admin storage browser and presigned audio links.
	bucket storage.Client

	// stripe creates PaymentIntents and verifies webhook signatures.
	stripe stripeinternal.Client

	// worker enqueues episode generation jobs.
	worker worker.Enqueuer

	// cron exposes the scheduler and checker entry points over HTTP.
	cron *worker.Cron

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	q db.Querier,
	st *store.Store,
	bucket storage.Client,
	stripeClient stripeinternal.Client,
	enqueuer worker.Enqueuer,
	cron *worker.Cron,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		q:      q,
		store:  st,
		bucket: bucket,
		stripe: stripeClient,
		worker: enqueuer,
		cron:   cron,
		cfg:    cfg,
		logger: logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 ────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Public catalog — no auth required.
		r.Get("/podcasts", s.handleListPodcasts)
		r.Get("/podcasts/{podcastID}", s.handleGetPodcast)
		r.Get("/podcasts/{podcastID}/episodes", s.handleListEpisodes)
		r.Get("/episodes/{episodeID}", s.handleGetEpisode)
		r.Get("/groups/{groupID}", s.handleGetGroup)

		// User routes — require valid X-Api-Token.
		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)
			r.Post("/podcasts/{podcastID}/subscribe", s.handleSubscribe)
			r.Delete("/podcasts/{podcastID}/subscribe", s.handleUnsubscribe)
			r.Post("/podcasts/{podcastID}/episodes", s.handleCreateUserEpisode)
			r.Get("/me/credits", s.handleGetCredits)
			r.Post("/me/checkout", s.handleCreateCheckout)
		})

		// Stripe webhook — no auth (signature verification inside handler).
		r.Post("/webhooks/stripe", s.handleStripeWebhook)

		// Admin routes — require X-Api-Token of an is_admin user.
		r.Route("/admin", func(r chi.Router) {
			// Cron triggers also accept X-Cron-Secret from the external
			// scheduler, so they get their own auth middleware.
			r.Group(func(r chi.Router) {
				r.Use(s.requireCron)
				r.Post("/cron/podcast-scheduler", s.handleRunScheduler)
				r.Post("/cron/episode-checker", s.handleRunChecker)
			})

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)

				r.Post("/podcasts", s.handleCreatePodcast)
				r.Patch("/podcasts/{podcastID}", s.handleUpdatePodcast)
				r.Delete("/podcasts/{podcastID}", s.handleDeletePodcast)
				r.Put("/podcasts/{podcastID}/config", s.handleUpsertConfig)

				r.Post("/groups", s.handleCreateGroup)
				r.Post("/groups/{groupID}/languages", s.handleAttachLanguage)
				r.Patch("/groups/{groupID}/primary", s.handleSetPrimaryLanguage)

				r.Get("/episodes", s.handleListEpisodesByStatus)
				r.Delete("/episodes/{episodeID}", s.handleDeleteEpisode)
				r.Post("/episodes/{episodeID}/retry", s.handleRetryEpisode)

				r.Get("/storage", s.handleListStorage)
				r.Get("/storage/url", s.handlePresignStorage)
				r.Delete("/storage", s.handleDeleteStorage)

				r.Get("/costs/episodes/{episodeID}", s.handleEpisodeCosts)
				r.Get("/costs/daily", s.handleDailyCosts)
				r.Get("/costs/monthly", s.handleMonthlyCosts)
				r.Get("/costs/users/{userID}", s.handleUserCosts)
			})
		})
	})

	return r
}
