package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/podcasto/backend/internal/db"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// CreateUserEpisodeParams groups the fields for a user-initiated episode.
type CreateUserEpisodeParams struct {
	UserID    uuid.UUID
	PodcastID uuid.UUID
	Title     string
	Language  string
}

// ─── METHODS ─────────────────────────────────────────────────────────────────

// CreateUserEpisode atomically debits one credit and creates a pending
// episode attributed to the user. If the user's balance is zero the whole
// transaction rolls back and ErrInsufficientCredits is returned — no episode
// row, no dangling debit.
func (s *Store) CreateUserEpisode(ctx context.Context, p CreateUserEpisodeParams) (db.Episode, error) {
	var episode db.Episode

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		if err := consumeCredit(ctx, q, p.UserID, fmt.Sprintf("episode for podcast %s", p.PodcastID)); err != nil {
			return err
		}

		created, err := q.CreateEpisode(ctx, db.CreateEpisodeParams{
			PodcastID: p.PodcastID,
			Title:     p.Title,
			Language:  p.Language,
			CreatedBy: uuid.NullUUID{UUID: p.UserID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("CreateUserEpisode: create episode: %w", err)
		}

		episode = created
		return nil
	})
	if err != nil {
		return db.Episode{}, err
	}

	return episode, nil
}

// MarkEpisodeFailed sets the episode status to failed with a descriptive
// message. Called by the worker when generation fails permanently (i.e. after
// exhausting retries) and by the episode checker when audio generation times
// out. A single-query write — no transaction needed — but it lives here
// because it is logically part of the episode lifecycle and the worker should
// not call db.Querier directly for this.
func (s *Store) MarkEpisodeFailed(ctx context.Context, episodeID uuid.UUID, reason string) (db.Episode, error) {
	episode, err := s.q.MarkEpisodeFailed(ctx, db.MarkEpisodeFailedParams{
		ID: episodeID,
		ErrorMessage: sql.NullString{
			String: reason,
			Valid:  true,
		},
	})
	if err != nil {
		return db.Episode{}, fmt.Errorf("MarkEpisodeFailed: %w", err)
	}
	return episode, nil
}
