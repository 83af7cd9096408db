package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/podcasto/backend/internal/db"
)

// ─── DTOs ─────────────────────────────────────────────────────────────────────

type podcastResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	Status        string `json:"status"`
}

func toPodcastResponse(p db.Podcast) podcastResponse {
	return podcastResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Description:   p.Description,
		Language:      p.Language,
		CoverImageURL: p.CoverImageUrl.String,
		Status:        string(p.Status),
	}
}

// ─── GET /api/podcasts ────────────────────────────────────────────────────────

func (s *Server) handleListPodcasts(w http.ResponseWriter, r *http.Request) {
	podcasts, err := s.q.ListPodcasts(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list podcasts: %w", err))
		return
	}

	out := make([]podcastResponse, 0, len(podcasts))
	for _, p := range podcasts {
		out = append(out, toPodcastResponse(p))
	}
	respond(w, http.StatusOK, map[string]any{"podcasts": out})
}

// ─── GET /api/podcasts/{podcastID} ────────────────────────────────────────────

func (s *Server) handleGetPodcast(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	podcast, err := s.q.GetPodcastByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "podcast not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get podcast: %w", err))
		return
	}

	respond(w, http.StatusOK, toPodcastResponse(podcast))
}

// ─── POST /api/admin/podcasts ─────────────────────────────────────────────────

type createPodcastRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	CoverImageURL string `json:"cover_image_url"`
}

func (s *Server) handleCreatePodcast(w http.ResponseWriter, r *http.Request) {
	var req createPodcastRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Title == "" || req.Language == "" {
		respondErr(w, http.StatusBadRequest, "title and language are required")
		return
	}

	podcast, err := s.q.CreatePodcast(r.Context(), db.CreatePodcastParams{
		Title:         req.Title,
		Description:   req.Description,
		Language:      req.Language,
		CoverImageUrl: sql.NullString{String: req.CoverImageURL, Valid: req.CoverImageURL != ""},
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create podcast: %w", err))
		return
	}

	respond(w, http.StatusCreated, toPodcastResponse(podcast))
}

// ─── PATCH /api/admin/podcasts/{podcastID} ────────────────────────────────────

type updatePodcastRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Language      *string `json:"language"`
	CoverImageURL *string `json:"cover_image_url"`
	Status        *string `json:"status"`
}

func (s *Server) handleUpdatePodcast(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	var req updatePodcastRequest
	if !decode(w, r, &req) {
		return
	}

	// Read-modify-write: PATCH semantics over a full-row update query.
	current, err := s.q.GetPodcastByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "podcast not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get podcast: %w", err))
		return
	}

	params := db.UpdatePodcastParams{
		ID:            id,
		Title:         current.Title,
		Description:   current.Description,
		Language:      current.Language,
		CoverImageUrl: current.CoverImageUrl,
		Status:        current.Status,
	}
	if req.Title != nil {
		params.Title = *req.Title
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Language != nil {
		params.Language = *req.Language
	}
	if req.CoverImageURL != nil {
		params.CoverImageUrl = sql.NullString{String: *req.CoverImageURL, Valid: *req.CoverImageURL != ""}
	}
	if req.Status != nil {
		status := db.PodcastStatus(*req.Status)
		if status != db.PodcastStatusActive && status != db.PodcastStatusPaused {
			respondErr(w, http.StatusBadRequest, "invalid status")
			return
		}
		params.Status = status
	}

	podcast, err := s.q.UpdatePodcast(r.Context(), params)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("update podcast: %w", err))
		return
	}

	respond(w, http.StatusOK, toPodcastResponse(podcast))
}

// ─── DELETE /api/admin/podcasts/{podcastID} ───────────────────────────────────

func (s *Server) handleDeletePodcast(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	if err := s.q.DeletePodcast(r.Context(), id); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete podcast: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── PUT /api/admin/podcasts/{podcastID}/config ───────────────────────────────

type upsertConfigRequest struct {
	ContentSource        string   `json:"content_source"`
	TelegramChannel      string   `json:"telegram_channel"`
	ContentWindowHours   int32    `json:"content_window_hours"`
	RSSUrls              []string `json:"rss_urls"`
	Creator              string   `json:"creator"`
	Slogan               string   `json:"slogan"`
	Creativity           float32  `json:"creativity"`
	ConversationStyle    string   `json:"conversation_style"`
	Speaker1Role         string   `json:"speaker1_role"`
	Speaker2Role         string   `json:"speaker2_role"`
	EpisodeFrequencyDays int32    `json:"episode_frequency_days"`
}

func (s *Server) handleUpsertConfig(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "podcastID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast id")
		return
	}

	var req upsertConfigRequest
	if !decode(w, r, &req) {
		return
	}

	source := db.ContentSource(req.ContentSource)
	switch source {
	case db.ContentSourceTelegram:
		if req.TelegramChannel == "" {
			respondErr(w, http.StatusBadRequest, "telegram_channel is required for the telegram source")
			return
		}
	case db.ContentSourceRss:
		if len(req.RSSUrls) == 0 {
			respondErr(w, http.StatusBadRequest, "rss_urls is required for the rss source")
			return
		}
	default:
		respondErr(w, http.StatusBadRequest, "content_source must be telegram or rss")
		return
	}
	if req.Creativity < 0 || req.Creativity > 1 {
		respondErr(w, http.StatusBadRequest, "creativity must be between 0 and 1")
		return
	}

	cfg, err := s.q.UpsertPodcastConfig(r.Context(), db.UpsertPodcastConfigParams{
		PodcastID:            id,
		ContentSource:        source,
		TelegramChannel:      sql.NullString{String: req.TelegramChannel, Valid: req.TelegramChannel != ""},
		ContentWindowHours:   req.ContentWindowHours,
		RssUrls:              req.RSSUrls,
		Creator:              req.Creator,
		Slogan:               req.Slogan,
		Creativity:           req.Creativity,
		ConversationStyle:    req.ConversationStyle,
		Speaker1Role:         req.Speaker1Role,
		Speaker2Role:         req.Speaker2Role,
		EpisodeFrequencyDays: req.EpisodeFrequencyDays,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("upsert config: %w", err))
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"podcast_id":     cfg.PodcastID.String(),
		"content_source": string(cfg.ContentSource),
	})
}
