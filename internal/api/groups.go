package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/podcasto/backend/internal/db"
	"github.com/podcasto/backend/internal/store"
)

// ─── DTOs ─────────────────────────────────────────────────────────────────────

type groupLanguageResponse struct {
	PodcastID     string `json:"podcast_id"`
	Language      string `json:"language"`
	IsPrimary     bool   `json:"is_primary"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	Status        string `json:"status"`
}

type groupResponse struct {
	ID        string                  `json:"id"`
	BaseTitle string                  `json:"base_title"`
	Languages []groupLanguageResponse `json:"languages"`
}

// ─── GET /api/groups/{groupID} ────────────────────────────────────────────────

// handleGetGroup returns a podcast group with all its language variants,
// primary language first.
func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid group id")
		return
	}

	group, err := s.q.GetPodcastGroupByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "group not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get group: %w", err))
		return
	}

	languages, err := s.q.ListGroupLanguages(r.Context(), id)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list group languages: %w", err))
		return
	}

	resp := groupResponse{
		ID:        group.ID.String(),
		BaseTitle: group.BaseTitle,
		Languages: make([]groupLanguageResponse, 0, len(languages)),
	}
	for _, l := range languages {
		resp.Languages = append(resp.Languages, groupLanguageResponse{
			PodcastID:     l.PodcastID.String(),
			Language:      l.Language,
			IsPrimary:     l.IsPrimary,
			Title:         l.Title,
			Description:   l.Description,
			CoverImageURL: l.CoverImageUrl.String,
			Status:        string(l.Status),
		})
	}

	respond(w, http.StatusOK, resp)
}

// ─── POST /api/admin/groups ───────────────────────────────────────────────────

type createGroupRequest struct {
	BaseTitle string `json:"base_title"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if !decode(w, r, &req) {
		return
	}
	if req.BaseTitle == "" {
		respondErr(w, http.StatusBadRequest, "base_title is required")
		return
	}

	group, err := s.q.CreatePodcastGroup(r.Context(), req.BaseTitle)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create group: %w", err))
		return
	}

	respond(w, http.StatusCreated, map[string]string{
		"id":         group.ID.String(),
		"base_title": group.BaseTitle,
	})
}

// ─── POST /api/admin/groups/{groupID}/languages ───────────────────────────────

type attachLanguageRequest struct {
	PodcastID string `json:"podcast_id"`
	IsPrimary bool   `json:"is_primary"`
}

// handleAttachLanguage adds a podcast to a group as one language variant.
// The podcast's own language column is the variant language; a podcast can
// belong to at most one group.
func (s *Server) handleAttachLanguage(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuidParse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req attachLanguageRequest
	if !decode(w, r, &req) {
		return
	}
	podcastID, err := uuidParse(req.PodcastID)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast_id")
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

	lang, err := s.q.AttachPodcastLanguage(r.Context(), db.AttachPodcastLanguageParams{
		GroupID:   groupID,
		PodcastID: podcastID,
		Language:  podcast.Language,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		// Unique violations (language already in group, podcast already
		// grouped, second primary) all surface here.
		respondErr(w, http.StatusConflict, "podcast or language already attached to a group")
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"group_id":   lang.GroupID.String(),
		"podcast_id": lang.PodcastID.String(),
		"language":   lang.Language,
		"is_primary": lang.IsPrimary,
	})
}

// ─── PATCH /api/admin/groups/{groupID}/primary ────────────────────────────────

type setPrimaryRequest struct {
	PodcastID string `json:"podcast_id"`
}

// handleSetPrimaryLanguage moves the primary flag to another variant. The
// clear-then-set runs in one serializable transaction so the group never has
// two primaries, nor none, at commit.
func (s *Server) handleSetPrimaryLanguage(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuidParse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req setPrimaryRequest
	if !decode(w, r, &req) {
		return
	}
	podcastID, err := uuidParse(req.PodcastID)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid podcast_id")
		return
	}

	lang, err := s.store.SetPrimaryLanguage(r.Context(), groupID, podcastID)
	if errors.Is(err, store.ErrPodcastNotInGroup) {
		respondErr(w, http.StatusNotFound, "podcast is not in this group")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("set primary language: %w", err))
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"group_id":   lang.GroupID.String(),
		"podcast_id": lang.PodcastID.String(),
		"language":   lang.Language,
		"is_primary": lang.IsPrimary,
	})
}
