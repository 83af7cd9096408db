package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/podcasto/backend/internal/db"
)

// ErrPodcastNotInGroup is returned by SetPrimaryLanguage when the podcast is
// not a language variant of the group.
var ErrPodcastNotInGroup = errors.New("store: podcast is not a member of the group")

// SetPrimaryLanguage atomically moves the primary flag of a podcast group to
// another language variant. The clear and set must commit together: a partial
// update would leave the group with no primary, and the partial unique index
// (one primary per group) would reject the set half on its own if the old
// flag were still in place.
func (s *Store) SetPrimaryLanguage(ctx context.Context, groupID, podcastID uuid.UUID) (db.PodcastLanguage, error) {
	var lang db.PodcastLanguage

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		if err := q.ClearGroupPrimary(ctx, groupID); err != nil {
			return fmt.Errorf("SetPrimaryLanguage: clear primary: %w", err)
		}

		updated, err := q.SetGroupPrimary(ctx, db.SetGroupPrimaryParams{
			GroupID:   groupID,
			PodcastID: podcastID,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPodcastNotInGroup
		}
		if err != nil {
			return fmt.Errorf("SetPrimaryLanguage: set primary: %w", err)
		}

		lang = updated
		return nil
	})

	if errors.Is(err, ErrPodcastNotInGroup) {
		return db.PodcastLanguage{}, ErrPodcastNotInGroup
	}
	if err != nil {
		return db.PodcastLanguage{}, err
	}

	return lang, nil
}
