package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/podcasto/backend/internal/db"
)

// ─── POST /api/podcasts/{podcastID}/subscribe ─────────────────────────────────

// handleSubscribe subscribes the authenticated user to a podcast.
// Subscribing twice is a no-op that still returns 200 — the operation is
// idempotent by the unique (user_id, podcast_id) constraint.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())

	podcastID, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	if _, err := s.q.GetPodcastByID(r.Context(), podcastID); errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "podcast not found")
		return
	} else if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get podcast: %w", err))
		return
	}

	_, err = s.q.CreateSubscription(r.Context(), db.CreateSubscriptionParams{
		UserID:    user.ID,
		PodcastID: podcastID,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		// sql.ErrNoRows is the ON CONFLICT DO NOTHING path: already subscribed.
		s.respondInternalErr(w, r, fmt.Errorf("create subscription: %w", err))
		return
	}

	respond(w, http.StatusOK, map[string]string{
		"podcast_id": podcastID.String(),
		"status":     "subscribed",
	})
}

// ─── DELETE /api/podcasts/{podcastID}/subscribe ───────────────────────────────

func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())

	podcastID, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	if err := s.q.DeleteSubscription(r.Context(), db.DeleteSubscriptionParams{
		UserID:    user.ID,
		PodcastID: podcastID,
	}); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete subscription: %w", err))
		return
	}

	respond(w, http.StatusOK, map[string]string{
		"podcast_id": podcastID.String(),
		"status":     "unsubscribed",
	})
}
