package api

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/podcasto/backend/internal/store"
	stripeinternal "github.com/podcasto/backend/internal/stripe"
)

// ─── POST /api/webhooks/stripe ────────────────────────────────────────────────

// handleStripeWebhook is the entry point for all Stripe webhook deliveries.
//
// Stripe delivers events at-least-once and may retry on non-2xx responses.
// The handler must be idempotent: the event row uses insert-or-ignore, and
// the credit grant is keyed by the unique stripe_payment_intent column, so
// replays are safe end to end.
//
// The only events we act on are:
//   - payment_intent.succeeded      → grant the purchased credit pack
//   - payment_intent.payment_failed → logged (informational)
func (s *Server) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	// Stripe recommends reading the raw body before any other processing so
	// the signature check runs against the exact bytes Stripe signed.
	r.Body = http.MaxBytesReader(w, r.Body, 65536) // 64 KB — generous for any Stripe event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "could not read request body")
		return
	}

	sig := r.Header.Get("Stripe-Signature")
	event, err := s.stripe.VerifyWebhook(payload, sig, s.cfg.StripeWebhookSecret)
	if err != nil {
		s.logger.Warn("webhook: invalid signature", "error", err, logField(r))
		respondErr(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	// Idempotency: record the event, skip if already seen. UpsertStripeEvent
	// uses ON CONFLICT DO NOTHING; a duplicate event_id surfaces as
	// sql.ErrNoRows, which we treat as success so Stripe stops retrying.
	_, err = s.q.UpsertStripeEvent(r.Context(), stripeinternal.ToUpsertParams(event, payload))
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("webhook: duplicate event, skipping", "event_id", event.ID, logField(r))
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("upsert stripe event: %w", err))
		return
	}

	var handlerErr error

	switch event.Type {
	case "payment_intent.succeeded":
		handlerErr = s.onPaymentSucceeded(r, event)

	case "payment_intent.payment_failed":
		s.logger.Info("webhook: payment failed", "event_id", event.ID, logField(r))

	default:
		// Unknown event type — ack immediately so Stripe stops retrying.
		s.logger.Debug("webhook: unhandled event type", "type", event.Type, logField(r))
	}

	if handlerErr != nil {
		s.logger.Error("webhook: handler error",
			"event_id", event.ID,
			"type", event.Type,
			"error", handlerErr,
			logField(r),
		)
		// Record the failure in stripe_events so an operator can investigate.
		_, _ = s.q.MarkStripeEventFailed(r.Context(), stripeinternal.ToMarkFailedParams(event.ID, handlerErr))
		// Return 500 so Stripe retries delivery.
		respondErr(w, http.StatusInternalServerError, "webhook handler failed")
		return
	}

	_, _ = s.q.MarkStripeEventProcessed(r.Context(), event.ID)
	w.WriteHeader(http.StatusOK)
}

// ─── EVENT HANDLERS ───────────────────────────────────────────────────────────

func (s *Server) onPaymentSucceeded(r *http.Request, event stripeinternal.Event) error {
	piID, _, userID, err := stripeinternal.ExtractPayment(event)
	if err != nil {
		return fmt.Errorf("onPaymentSucceeded: %w", err)
	}

	// GrantPurchasedCredits atomically records the transaction and bumps the
	// balance. ErrCreditsAlreadyGranted means a duplicate delivery that raced
	// past the event-level check — still a success.
	credit, err := s.store.GrantPurchasedCredits(r.Context(), store.GrantPurchasedCreditsParams{
		UserID:              userID,
		Credits:             s.cfg.CreditPackSize,
		StripePaymentIntent: piID,
		Description:         fmt.Sprintf("credit pack purchase (%s)", piID),
	})
	if errors.Is(err, store.ErrCreditsAlreadyGranted) {
		s.logger.Debug("webhook: credits already granted", "payment_intent", piID, logField(r))
		return nil
	}
	if err != nil {
		return fmt.Errorf("onPaymentSucceeded: grant credits: %w", err)
	}

	s.logger.Info("webhook: credits granted",
		"user_id", userID,
		"credits", s.cfg.CreditPackSize,
		"balance", credit.Balance,
		logField(r),
	)
	return nil
}
