package api

import (
	"fmt"
	"net/http"
)

// The cron endpoints are thin wrappers: an external scheduler (EventBridge,
// Cloud Scheduler, plain crontab + curl) POSTs here on its own cadence and
// the typed summary goes back in the response body.

// ─── POST /api/admin/cron/podcast-scheduler ───────────────────────────────────

func (s *Server) handleRunScheduler(w http.ResponseWriter, r *http.Request) {
	sum, err := s.cron.RunScheduler(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("run scheduler: %w", err))
		return
	}
	respond(w, http.StatusOK, sum)
}

// ─── POST /api/admin/cron/episode-checker ─────────────────────────────────────

func (s *Server) handleRunChecker(w http.ResponseWriter, r *http.Request) {
	sum, err := s.cron.RunChecker(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("run checker: %w", err))
		return
	}
	respond(w, http.StatusOK, sum)
}
