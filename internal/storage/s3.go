// Package storage wraps the S3 bucket that holds generated audio, episode
// scripts, and the content drops written by the Telegram collector Lambda.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// Object describes one stored object, as listed by the admin storage browser.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Client is the interface the api, worker, and content packages use for all
// bucket access. Tests inject a stub.
type Client interface {
	// List returns objects under the given key prefix, lexicographic order.
	List(ctx context.Context, prefix string) ([]Object, error)

	// Exists reports whether an object exists at key. Used by the episode
	// checker to detect finished audio files.
	Exists(ctx context.Context, key string) (bool, error)

	// PresignGet returns a time-limited download URL for key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error

	// GetJSON reads the object at key and JSON-decodes it into v.
	GetJSON(ctx context.Context, key string, v any) error

	// PutJSON JSON-encodes v and writes it to key. Returns the number of
	// bytes written so callers can record storage costs.
	PutJSON(ctx context.Context, key string, v any) (int64, error)
}

// s3Client is the concrete Client backed by the AWS SDK.
type s3Client struct {
	bucket  string
	api     *s3.Client
	presign *s3.PresignClient
}

// NewS3Client returns a Client for the given bucket.
func NewS3Client(api *s3.Client, bucket string) Client {
	return &s3Client{
		bucket:  bucket,
		api:     api,
		presign: s3.NewPresignClient(api),
	}
}

func (c *s3Client) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object

	paginator := s3.NewListObjectsV2Paginator(c.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("storage: list %q: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, Object{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return objects, nil
}

func (c *s3Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return false, nil
		}
		return false, fmt.Errorf("storage: head %q: %w", key, err)
	}
	return true, nil
}

func (c *s3Client) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("storage: presign %q: %w", key, err)
	}
	return req.URL, nil
}

func (c *s3Client) Delete(ctx context.Context, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %q: %w", key, err)
	}
	return nil
}

func (c *s3Client) GetJSON(ctx context.Context, key string, v any) error {
	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: get %q: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(io.LimitReader(out.Body, 16<<20)) // 16 MB cap
	if err != nil {
		return fmt.Errorf("storage: read %q: %w", key, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("storage: decode %q: %w", key, err)
	}
	return nil
}

func (c *s3Client) PutJSON(ctx context.Context, key string, v any) (int64, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("storage: encode %q: %w", key, err)
	}

	_, err = c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return 0, fmt.Errorf("storage: put %q: %w", key, err)
	}
	return int64(len(body)), nil
}

// ─── KEY LAYOUT ──────────────────────────────────────────────────────────────

// Key builders keep the bucket layout in one place. The audio key is the
// contract with the audio generation Lambda: it writes its output there and
// the episode checker polls for it.

func ScriptKey(podcastID, episodeID string) string {
	return fmt.Sprintf("podcasts/%s/%s/script.json", podcastID, episodeID)
}

func AudioKey(podcastID, episodeID string) string {
	return fmt.Sprintf("podcasts/%s/%s/audio.mp3", podcastID, episodeID)
}

// TelegramPrefix is where the collector Lambda drops channel content JSON.
func TelegramPrefix(channel string) string {
	return fmt.Sprintf("telegram/%s/", channel)
}
