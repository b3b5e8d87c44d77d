// Package gemini implements the rewriting and illustration services on top
// of the Google Gen AI SDK.
package gemini

import (
	"context"
	"errors"

	"github.com/fwojciec/newsdesk"
	"google.golang.org/genai"
)

// NewClient creates a Gemini API client for apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "gemini API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// upstreamError converts SDK errors into EUPSTREAM errors for service.
func upstreamError(ctx context.Context, service, op string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return newsdesk.UpstreamErrorf(newsdesk.Upstream{
			Service: service,
			Status:  apiErr.Code,
			Body:    apiErr.Message,
		}, "%s failed: %s", op, apiErr.Message)
	}

	return newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: service}, "%s failed: %v", op, err)
}
