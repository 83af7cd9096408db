// Package audio invokes the external audio generation Lambda. The Lambda
// renders the multi-speaker script to an mp3 and writes it to the agreed S3
// key; this process never sees the audio bytes itself.
package audio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/google/uuid"
)

// GenerateParams is the payload contract with the audio Lambda.
type GenerateParams struct {
	EpisodeID uuid.UUID `json:"episode_id"`
	PodcastID uuid.UUID `json:"podcast_id"`
	ScriptKey string    `json:"script_key"`
	OutputKey string    `json:"output_key"`
	Language  string    `json:"language"`
}

// Invoker is the interface the worker uses to start audio generation.
// Tests inject a stub.
type Invoker interface {
	// Generate starts audio generation asynchronously. A nil error means the
	// invocation was accepted, not that audio exists — the episode checker
	// polls S3 for the output.
	Generate(ctx context.Context, p GenerateParams) error
}

type lambdaInvoker struct {
	api      *lambda.Client
	function string
}

// NewLambdaInvoker returns an Invoker that calls the named Lambda function.
func NewLambdaInvoker(api *lambda.Client, function string) Invoker {
	return &lambdaInvoker{api: api, function: function}
}

func (i *lambdaInvoker) Generate(ctx context.Context, p GenerateParams) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("audio: marshal payload: %w", err)
	}

	out, err := i.api.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(i.function),
		InvocationType: types.InvocationTypeEvent, // async — don't wait for audio
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("audio: invoke %s: %w", i.function, err)
	}
	if out.StatusCode != 202 {
		return fmt.Errorf("audio: invoke %s: unexpected status %d", i.function, out.StatusCode)
	}
	return nil
}
