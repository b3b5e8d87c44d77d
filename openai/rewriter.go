// Package openai implements newsdesk.Rewriter against OpenAI-compatible chat
// completion APIs. DeepSeek is the default target.
package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/newsdesk"
	openai "github.com/sashabaranov/go-openai"
)

// DeepSeek defaults.
const (
	DefaultBaseURL     = "https://api.deepseek.com/v1"
	DefaultModel       = "deepseek-chat"
	DefaultTemperature = 0.7
)

// service names the remote in error details.
const service = "deepseek"

// ChatClient is the subset of *openai.Client used by Rewriter.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure Rewriter implements newsdesk.Rewriter at compile time.
var _ newsdesk.Rewriter = (*Rewriter)(nil)

// Rewriter sends a prompt as a single user message and returns the first
// choice. Each call is made exactly once.
type Rewriter struct {
	client      ChatClient
	model       string
	temperature float32
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(r *Rewriter) {
		r.model = model
	}
}

// WithTemperature overrides DefaultTemperature.
func WithTemperature(t float32) Option {
	return func(r *Rewriter) {
		r.temperature = t
	}
}

// NewRewriter creates a Rewriter using the given chat client.
func NewRewriter(client ChatClient, opts ...Option) *Rewriter {
	r := &Rewriter{
		client:      client,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewClient builds a go-openai client for apiKey. An empty baseURL selects
// DefaultBaseURL.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultBaseURL
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(cfg)
}

// Rewrite returns the model reply to prompt.
func (r *Rewriter) Rewrite(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "prompt is required")
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: r.temperature,
	})
	if err != nil {
		return "", upstreamError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: service, Status: 200}, "completion has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// upstreamError converts go-openai errors into EUPSTREAM errors carrying the
// remote status and message.
func upstreamError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return newsdesk.UpstreamErrorf(newsdesk.Upstream{
			Service: service,
			Status:  apiErr.HTTPStatusCode,
			Body:    apiErr.Message,
		}, "rewrite request failed: %s", apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		up := newsdesk.Upstream{Service: service, Status: reqErr.HTTPStatusCode}
		if reqErr.Err != nil {
			up.Body = reqErr.Err.Error()
		}
		return newsdesk.UpstreamErrorf(up, "rewrite request failed with status %d", reqErr.HTTPStatusCode)
	}

	return newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: service}, "rewrite request failed: %v", err)
}
