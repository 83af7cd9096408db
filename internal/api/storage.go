package api

import (
	"fmt"
	"net/http"
	"time"
)

// The storage endpoints give admins a window into the bucket: browse what
// the pipeline and the collector Lambda have written, mint download links,
// and clean up orphans.

// ─── GET /api/admin/storage?prefix= ───────────────────────────────────────────

type storageObjectResponse struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

func (s *Server) handleListStorage(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	objects, err := s.bucket.List(r.Context(), prefix)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list storage: %w", err))
		return
	}

	out := make([]storageObjectResponse, 0, len(objects))
	for _, o := range objects {
		out = append(out, storageObjectResponse{
			Key:          o.Key,
			Size:         o.Size,
			LastModified: o.LastModified,
		})
	}
	respond(w, http.StatusOK, map[string]any{"objects": out})
}

// ─── GET /api/admin/storage/url?key= ──────────────────────────────────────────

func (s *Server) handlePresignStorage(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondErr(w, http.StatusBadRequest, "key query parameter is required")
		return
	}

	url, err := s.bucket.PresignGet(r.Context(), key, presignExpiry)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("presign %s: %w", key, err))
		return
	}

	respond(w, http.StatusOK, map[string]string{"url": url})
}

// ─── DELETE /api/admin/storage?key= ───────────────────────────────────────────

func (s *Server) handleDeleteStorage(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondErr(w, http.StatusBadRequest, "key query parameter is required")
		return
	}

	if err := s.bucket.Delete(r.Context(), key); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete %s: %w", key, err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
