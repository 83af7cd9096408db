package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
)

// sesSender is the concrete Sender backed by the SES v2 bulk templated email
// API. The "episode-published" template lives in SES; we only feed it data.
type sesSender struct {
	client   *sesv2.Client
	fromAddr string
	fromName string
	template string
}

// NewSESSender returns a Sender that delivers email via SES bulk sends.
func NewSESSender(client *sesv2.Client, fromAddr, fromName, template string) Sender {
	return &sesSender{
		client:   client,
		fromAddr: fromAddr,
		fromName: fromName,
		template: template,
	}
}

// recipientData is the per-recipient template substitution block.
type recipientData struct {
	Name string `json:"name"`
}

// SendEpisodeBatch sends the episode template to every recipient in one
// SendBulkEmail call and maps the per-entry results back onto the
// recipients.
func (s *sesSender) SendEpisodeBatch(ctx context.Context, p EpisodeParams, recipients []Recipient) ([]Result, error) {
	if len(recipients) == 0 {
		return nil, nil
	}

	defaultData, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("email: marshal template data: %w", err)
	}

	entries := make([]types.BulkEmailEntry, 0, len(recipients))
	for _, r := range recipients {
		perRecipient, err := json.Marshal(recipientData{Name: r.Name})
		if err != nil {
			return nil, fmt.Errorf("email: marshal recipient data: %w", err)
		}
		entries = append(entries, types.BulkEmailEntry{
			Destination: &types.Destination{
				ToAddresses: []string{r.Email},
			},
			ReplacementEmailContent: &types.ReplacementEmailContent{
				ReplacementTemplate: &types.ReplacementTemplate{
					ReplacementTemplateData: aws.String(string(perRecipient)),
				},
			},
		})
	}

	out, err := s.client.SendBulkEmail(ctx, &sesv2.SendBulkEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromAddr)),
		DefaultContent: &types.BulkEmailContent{
			Template: &types.Template{
				TemplateName: aws.String(s.template),
				TemplateData: aws.String(string(defaultData)),
			},
		},
		BulkEmailEntries: entries,
	})
	if err != nil {
		if isTransientSESError(err) {
			return nil, &TransientError{Err: fmt.Errorf("email: bulk send: %w", err)}
		}
		return nil, fmt.Errorf("email: bulk send: %w", err)
	}

	results := make([]Result, len(recipients))
	for i, r := range recipients {
		results[i] = Result{UserID: r.UserID, Email: r.Email}
		if i >= len(out.BulkEmailEntryResults) {
			results[i].Status = "MISSING_RESULT"
			continue
		}
		entry := out.BulkEmailEntryResults[i]
		if entry.Status == types.BulkEmailStatusSuccess {
			results[i].Delivered = true
		} else {
			results[i].Status = string(entry.Status)
		}
	}
	return results, nil
}

// throttleCodes are SES error codes worth retrying. Account-level rejections
// like SendingPausedException are deliberately absent — retrying those only
// burns attempts.
var throttleCodes = map[string]bool{
	"TooManyRequestsException": true,
	"ThrottlingException":      true,
	"LimitExceededException":   true,
}

func isTransientSESError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if throttleCodes[apiErr.ErrorCode()] {
			return true
		}
		return apiErr.ErrorFault() == smithy.FaultServer
	}
	// Bare transport errors (connection reset, DNS) arrive without an API
	// error code.
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
