// Package email defines the interface for bulk episode notification delivery
// and provides an SES-backed implementation, plus the dispatcher that decides
// who gets notified.
package email

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Recipient is one addressee of a bulk send.
type Recipient struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// EpisodeParams holds the template data shared by every recipient of one
// episode notification.
type EpisodeParams struct {
	PodcastTitle string `json:"podcast_title"`
	EpisodeTitle string `json:"episode_title"`
	Description  string `json:"description"`
	EpisodeURL   string `json:"episode_url"`
}

// Result reports the per-recipient outcome of a bulk send. The provider
// accepts or rejects each recipient independently, so a single call can
// partially succeed.
type Result struct {
	UserID    uuid.UUID
	Email     string
	Delivered bool
	Status    string // provider status code for rejected recipients
}

// Sender is the interface the dispatcher uses to send one batch of episode
// notifications. Tests inject a stub that records calls without hitting the
// network.
type Sender interface {
	// SendEpisodeBatch sends the episode-published template to every
	// recipient in one provider call. The returned slice has one Result per
	// recipient, in recipient order. A non-nil error means the whole call
	// failed and no Result can be trusted; wrap transient failures in
	// *TransientError so the dispatcher knows to retry.
	SendEpisodeBatch(ctx context.Context, p EpisodeParams, recipients []Recipient) ([]Result, error)
}

// TransientError marks a whole-call failure that is worth retrying:
// throttling, timeouts, network errors, provider 5xx. Anything else is
// treated as permanent and the batch is not retried.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err (anywhere in its chain) is a
// *TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
