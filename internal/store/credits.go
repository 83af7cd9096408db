package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/podcasto/backend/internal/db"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// GrantPurchasedCreditsParams groups the fields written together when a
// Stripe payment for a credit pack succeeds.
type GrantPurchasedCreditsParams struct {
	UserID              uuid.UUID
	Credits             int32
	StripePaymentIntent string
	Description         string
}

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrCreditsAlreadyGranted is returned when a credit transaction already
// exists for the given Stripe PaymentIntent. The webhook handler should treat
// this as idempotent success — a duplicate delivery of
// payment_intent.succeeded must not grant the pack twice.
var ErrCreditsAlreadyGranted = errors.New("store: credits already granted for payment intent")

// ErrInsufficientCredits is returned by ConsumeCredit when the user's balance
// is zero. The handler should map this to HTTP 402.
var ErrInsufficientCredits = errors.New("store: insufficient credits")

// ─── METHODS ─────────────────────────────────────────────────────────────────

// GrantPurchasedCredits atomically records a purchase transaction and bumps
// the user's balance. The unique constraint on
// credit_transactions.stripe_payment_intent is the hard guard against double
// grants; the in-transaction existence check turns the common duplicate
// delivery into the clean ErrCreditsAlreadyGranted sentinel instead of a
// constraint violation.
func (s *Store) GrantPurchasedCredits(ctx context.Context, p GrantPurchasedCreditsParams) (db.UserCredit, error) {
	var credit db.UserCredit

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		pi := sql.NullString{String: p.StripePaymentIntent, Valid: true}

		_, err := q.GetCreditTransactionByPaymentIntent(ctx, pi)
		if err == nil {
			return ErrCreditsAlreadyGranted
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("GrantPurchasedCredits: check existing transaction: %w", err)
		}

		if _, err := q.InsertCreditTransaction(ctx, db.InsertCreditTransactionParams{
			UserID:              p.UserID,
			Amount:              p.Credits,
			Reason:              db.CreditReasonPurchase,
			StripePaymentIntent: pi,
			Description:         p.Description,
		}); err != nil {
			return fmt.Errorf("GrantPurchasedCredits: insert transaction: %w", err)
		}

		updated, err := q.UpsertUserCreditsDelta(ctx, db.UpsertUserCreditsDeltaParams{
			UserID: p.UserID,
			Delta:  p.Credits,
		})
		if err != nil {
			return fmt.Errorf("GrantPurchasedCredits: update balance: %w", err)
		}

		credit = updated
		return nil
	})

	if errors.Is(err, ErrCreditsAlreadyGranted) {
		return credit, ErrCreditsAlreadyGranted
	}
	if err != nil {
		return db.UserCredit{}, err
	}

	return credit, nil
}

// consumeCredit debits one credit inside an existing transaction. Kept
// separate so CreateUserEpisode can compose it with the episode insert.
//
// The balance invariant holds because the read, the transaction row, and the
// balance write all commit together under serializable isolation: two
// concurrent consumers of a 1-credit balance cannot both pass the check.
func consumeCredit(ctx context.Context, q db.Querier, userID uuid.UUID, description string) error {
	credit, err := q.GetUserCredits(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInsufficientCredits
	}
	if err != nil {
		return fmt.Errorf("consumeCredit: get balance: %w", err)
	}
	if credit.Balance < 1 {
		return ErrInsufficientCredits
	}

	if _, err := q.InsertCreditTransaction(ctx, db.InsertCreditTransactionParams{
		UserID:      userID,
		Amount:      -1,
		Reason:      db.CreditReasonEpisodeGeneration,
		Description: description,
	}); err != nil {
		return fmt.Errorf("consumeCredit: insert transaction: %w", err)
	}

	if _, err := q.UpsertUserCreditsDelta(ctx, db.UpsertUserCreditsDeltaParams{
		UserID: userID,
		Delta:  -1,
	}); err != nil {
		return fmt.Errorf("consumeCredit: update balance: %w", err)
	}

	return nil
}
