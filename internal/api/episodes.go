package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/storage"
	"github.com/podcasto/backend/internal/store"
)

// presignExpiry bounds how long a shared audio link stays valid.
const presignExpiry = 24 * time.Hour

// ─── DTOs ─────────────────────────────────────────────────────────────────────

type episodeResponse struct {
	ID              string     `json:"id"`
	PodcastID       string     `json:"podcast_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Language        string     `json:"language"`
	Status          string     `json:"status"`
	AudioURL        string     `json:"audio_url,omitempty"`
	DurationSeconds int32      `json:"duration_seconds,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	ErrorMessage    string     `json:"error_message,omitempty"`
}

func toEpisodeResponse(e db.Episode) episodeResponse {
	resp := episodeResponse{
		ID:              e.ID.String(),
		PodcastID:       e.PodcastID.String(),
		Title:           e.Title,
		Description:     e.Description,
		Language:        e.Language,
		Status:          string(e.Status),
		DurationSeconds: e.DurationSeconds.Int32,
		ErrorMessage:    e.ErrorMessage.String,
	}
	if e.PublishedAt.Valid {
		t := e.PublishedAt.Time
		resp.PublishedAt = &t
	}
	return resp
}

// ─── GET /api/podcasts/{podcastID}/episodes ───────────────────────────────────

func (s *Server) handleListEpisodes(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	episodes, err := s.q.ListEpisodesByPodcast(r.Context(), id)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list episodes: %w", err))
		return
	}

	out := make([]episodeResponse, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, s.withAudioURL(r, toEpisodeResponse(e), e))
	}
	respond(w, http.StatusOK, map[string]any{"episodes": out})
}

// ─── GET /api/episodes/{episodeID} ────────────────────────────────────────────

func (s *Server) handleGetEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "episodeID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid episode id")
		return
	}

	episode, err := s.q.GetEpisodeByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "episode not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get episode: %w", err))
		return
	}

	respond(w, http.StatusOK, s.withAudioURL(r, toEpisodeResponse(episode), episode))
}

// withAudioURL swaps the stored S3 key for a presigned download URL. Presign
// failures degrade to an empty audio_url rather than failing the listing.
func (s *Server) withAudioURL(r *http.Request, resp episodeResponse, e db.Episode) episodeResponse {
	if !e.AudioUrl.Valid || e.Status != db.EpisodeStatusCompleted {
		return resp
	}
	url, err := s.bucket.PresignGet(r.Context(), e.AudioUrl.String, presignExpiry)
	if err != nil {
		s.logger.Warn("presign audio failed", "episode_id", e.ID, "error", err, logField(r))
		return resp
	}
	resp.AudioURL = url
	return resp
}

// ─── POST /api/podcasts/{podcastID}/episodes ──────────────────────────────────

// handleCreateUserEpisode lets an authenticated user pay one credit for an
// on-demand episode. The credit consumption and episode creation commit
// atomically; an insufficient balance surfaces as 402.
func (s *Server) handleCreateUserEpisode(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())

	podcastID, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	podcast, err := s.q.GetPodcastByID(r.Context(), podcastID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "podcast not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get podcast: %w", err))
		return
	}

	episode, err := s.store.CreateUserEpisode(r.Context(), store.CreateUserEpisodeParams{
		UserID:    user.ID,
		PodcastID: podcast.ID,
		Title:     fmt.Sprintf("%s: %s", podcast.Title, time.Now().Format("January 2, 2006")),
		Language:  podcast.Language,
	})
	if errors.Is(err, store.ErrInsufficientCredits) {
		respondErr(w, http.StatusPaymentRequired, "insufficient credits")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create user episode: %w", err))
		return
	}

	if err := s.worker.Enqueue(r.Context(), episode.ID); err != nil {
		// Not fatal: the runner's poller picks up pending episodes.
		s.logger.Warn("enqueue failed, poller will pick it up",
			"episode_id", episode.ID, "error", err, logField(r))
	}

	respond(w, http.StatusCreated, toEpisodeResponse(episode))
}

// ─── GET /api/admin/episodes?status= ──────────────────────────────────────────

func (s *Server) handleListEpisodesByStatus(w http.ResponseWriter, r *http.Request) {
	status := db.EpisodeStatus(r.URL.Query().Get("status"))
	switch status {
	case db.EpisodeStatusPending, db.EpisodeStatusCollecting, db.EpisodeStatusScriptGenerated,
		db.EpisodeStatusGeneratingAudio, db.EpisodeStatusCompleted, db.EpisodeStatusFailed:
	default:
		respondErr(w, http.StatusBadRequest, "unknown status")
		return
	}

	episodes, err := s.q.ListEpisodesByStatus(r.Context(), status)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list episodes by status: %w", err))
		return
	}

	out := make([]episodeResponse, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, toEpisodeResponse(e))
	}
	respond(w, http.StatusOK, map[string]any{"episodes": out})
}

// ─── DELETE /api/admin/episodes/{episodeID} ───────────────────────────────────

// handleDeleteEpisode removes the episode row and its S3 objects. Object
// deletion is best-effort: an orphaned file costs cents, a failed delete
// should not block the admin.
func (s *Server) handleDeleteEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "episodeID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid episode id")
		return
	}

	episode, err := s.q.GetEpisodeByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "episode not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get episode: %w", err))
		return
	}

	if err := s.q.DeleteEpisode(r.Context(), id); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete episode: %w", err))
		return
	}

	for _, key := range []string{
		storage.ScriptKey(episode.PodcastID.String(), id.String()),
		storage.AudioKey(episode.PodcastID.String(), id.String()),
	} {
		if err := s.bucket.Delete(r.Context(), key); err != nil {
			s.logger.Warn("delete episode object failed", "key", key, "error", err, logField(r))
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── POST /api/admin/episodes/{episodeID}/retry ───────────────────────────────

// handleRetryEpisode resets a failed episode to pending and re-enqueues it.
func (s *Server) handleRetryEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "episodeID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid episode id")
		return
	}

	episode, err := s.q.GetEpisodeByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "episode not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get episode: %w", err))
		return
	}
	if episode.Status != db.EpisodeStatusFailed {
		respondErr(w, http.StatusConflict, "only failed episodes can be retried")
		return
	}

	episode, err = s.q.SetEpisodeStatus(r.Context(), db.SetEpisodeStatusParams{
		ID:     id,
		Status: db.EpisodeStatusPending,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("reset episode: %w", err))
		return
	}

	if err := s.worker.Enqueue(r.Context(), episode.ID); err != nil {
		s.logger.Warn("enqueue failed, poller will pick it up",
			"episode_id", episode.ID, "error", err, logField(r))
	}

	respond(w, http.StatusOK, toEpisodeResponse(episode))
}
