package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/podcasto/backend/internal/db"
	stripeinternal "github.com/podcasto/backend/internal/stripe"
)

// ─── GET /api/me/credits ──────────────────────────────────────────────────────

type creditTransactionResponse struct {
	Amount      int32     `json:"amount"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Server) handleGetCredits(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())

	credit, err := s.q.GetUserCredits(r.Context(), user.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// No credits row yet means zero balance, not an error.
		credit = db.UserCredit{UserID: user.ID}
	} else if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get credits: %w", err))
		return
	}

	transactions, err := s.q.ListCreditTransactions(r.Context(), db.ListCreditTransactionsParams{
		UserID: user.ID,
		Limit:  20,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list transactions: %w", err))
		return
	}

	out := make([]creditTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, creditTransactionResponse{
			Amount:      t.Amount,
			Reason:      string(t.Reason),
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}

	respond(w, http.StatusOK, map[string]any{
		"balance":      credit.Balance,
		"transactions": out,
	})
}

// ─── POST /api/me/checkout ────────────────────────────────────────────────────

// handleCreateCheckout creates a Stripe PaymentIntent for one credit pack.
// The user_id travels in the PI metadata so the webhook handler knows whose
// balance to credit when the payment succeeds.
func (s *Server) handleCreateCheckout(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())

	pi, err := s.stripe.CreatePaymentIntent(r.Context(), stripeinternal.CreatePaymentIntentParams{
		AmountCents: s.cfg.CreditPackCents,
		Currency:    "usd",
		Email:       user.Email,
		Metadata: map[string]string{
			"user_id": user.ID.String(),
			"credits": fmt.Sprintf("%d", s.cfg.CreditPackSize),
		},
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("create payment intent: %w", err))
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"client_secret": pi.ClientSecret,
		"amount_cents":  s.cfg.CreditPackCents,
		"credits":       s.cfg.CreditPackSize,
	})
}
