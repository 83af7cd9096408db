package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/podcasto/backend/internal/db"
)

// Cost figures come straight from the SQL views over cost_events, so every
// total shown here is the sum of the raw rows by construction.

// ─── GET /api/admin/costs/episodes/{episodeID} ────────────────────────────────

type costEventResponse struct {
	Operation string    `json:"operation"`
	Provider  string    `json:"provider"`
	Quantity  string    `json:"quantity"`
	Unit      string    `json:"unit"`
	CostUSD   string    `json:"cost_usd"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleEpisodeCosts(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "episodeID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid episode id")
		return
	}
	episodeID := uuid.NullUUID{UUID: id, Valid: true}

	totals, err := s.q.GetEpisodeCosts(r.Context(), episodeID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get episode costs: %w", err))
		return
	}

	events, err := s.q.ListEpisodeCostEvents(r.Context(), episodeID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list episode cost events: %w", err))
		return
	}

	out := make([]costEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, costEventResponse{
			Operation: string(e.Operation),
			Provider:  e.Provider,
			Quantity:  e.Quantity,
			Unit:      e.Unit,
			CostUSD:   e.CostUsd,
			CreatedAt: e.CreatedAt,
		})
	}

	respond(w, http.StatusOK, map[string]any{
		"episode_id":     id.String(),
		"event_count":    totals.EventCount,
		"total_cost_usd": totals.TotalCostUsd,
		"events":         out,
	})
}

// ─── GET /api/admin/costs/daily?from=&to= ─────────────────────────────────────

func (s *Server) handleDailyCosts(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	rows, err := s.q.ListDailyCostSummary(r.Context(), db.ListDailyCostSummaryParams{
		FromDay: from,
		ToDay:   to,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list daily costs: %w", err))
		return
	}

	type dailyRow struct {
		Day          string `json:"day"`
		Operation    string `json:"operation"`
		EventCount   int64  `json:"event_count"`
		TotalCostUSD string `json:"total_cost_usd"`
	}
	out := make([]dailyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dailyRow{
			Day:          row.Day.Format("2006-01-02"),
			Operation:    string(row.Operation),
			EventCount:   row.EventCount,
			TotalCostUSD: row.TotalCostUsd,
		})
	}
	respond(w, http.StatusOK, map[string]any{"days": out})
}

// parseDateRange reads from/to query params (YYYY-MM-DD), defaulting to the
// last 30 days. Writes the 400 itself so callers can just return on false.
func parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		to = t
	}
	if to.Before(from) {
		respondErr(w, http.StatusBadRequest, "to must not be before from")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// ─── GET /api/admin/costs/monthly ─────────────────────────────────────────────

func (s *Server) handleMonthlyCosts(w http.ResponseWriter, r *http.Request) {
	rows, err := s.q.ListMonthlyCostSummary(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list monthly costs: %w", err))
		return
	}

	type monthlyRow struct {
		Month        string `json:"month"`
		Operation    string `json:"operation"`
		EventCount   int64  `json:"event_count"`
		TotalCostUSD string `json:"total_cost_usd"`
	}
	out := make([]monthlyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, monthlyRow{
			Month:        row.Month.Format("2006-01"),
			Operation:    string(row.Operation),
			EventCount:   row.EventCount,
			TotalCostUSD: row.TotalCostUsd,
		})
	}
	respond(w, http.StatusOK, map[string]any{"months": out})
}

// ─── GET /api/admin/costs/users/{userID} ──────────────────────────────────────

func (s *Server) handleUserCosts(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParse(chi.URLParam(r, "userID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid user id")
		return
	}

	summary, err := s.q.GetUserCostSummary(r.Context(), uuid.NullUUID{UUID: id, Valid: true})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get user cost summary: %w", err))
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"user_id":        id.String(),
		"event_count":    summary.EventCount,
		"total_cost_usd": summary.TotalCostUsd,
	})
}
