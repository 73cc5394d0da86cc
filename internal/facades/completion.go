package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/metrics"
)

// ErrEmptyCompletion is returned when the provider answers without choices.
var ErrEmptyCompletion = errors.New("completion has no choices")

// ChatCompletionFacade talks to an OpenAI-compatible chat completion API.
type ChatCompletionFacade struct {
	client *openai.Client
	model  string
}

// NewChatCompletionFacade creates a facade for the given endpoint and model.
func NewChatCompletionFacade(apiKey, baseURL, model string) *ChatCompletionFacade {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &ChatCompletionFacade{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (f *ChatCompletionFacade) request(system, user string, temperature float32) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
	}
}

// Complete issues one non-streaming completion and returns the text of the first choice.
func (f *ChatCompletionFacade) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	start := time.Now()
	resp, err := f.client.CreateChatCompletion(ctx, f.request(system, user, temperature))
	f.observe("complete", start, err)
	if err != nil {
		logger.FromContext(ctx).Errorw("chat completion failed", "model", f.model, "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	logger.FromContext(ctx).Infow("chat completion",
		"model", f.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)
	return resp.Choices[0].Message.Content, nil
}

// Stream issues a streaming completion and passes every non-empty delta to emit.
// It stops at the end of the stream, on ctx cancellation or when emit fails.
func (f *ChatCompletionFacade) Stream(ctx context.Context, system, user string, temperature float32, emit func(string) error) (err error) {
	start := time.Now()
	defer func() { f.observe("stream", start, err) }()

	req := f.request(system, user, temperature)
	req.Stream = true

	stream, err := f.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Errorw("chat completion stream failed", "model", f.model, "error", err)
		return err
	}
	defer stream.Close()

	chunks := 0
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			logger.FromContext(ctx).Infow("chat completion stream finished", "model", f.model, "chunks", chunks)
			return nil
		}
		if err != nil {
			logger.FromContext(ctx).Errorw("chat completion stream interrupted", "model", f.model, "chunks", chunks, "error", err)
			return err
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
			continue
		}
		chunks++
		if err := emit(resp.Choices[0].Delta.Content); err != nil {
			return fmt.Errorf("emit chunk: %w", err)
		}
	}
}

func (f *ChatCompletionFacade) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.AIRequestsTotal.WithLabelValues(operation, f.model, status).Inc()
	metrics.AIRequestDuration.WithLabelValues(operation, f.model).Observe(time.Since(start).Seconds())
}
