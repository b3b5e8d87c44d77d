package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/newsdesk"
	"google.golang.org/genai"
)

// DefaultTextModel is the model used for rewriting.
const DefaultTextModel = "gemini-2.5-flash"

// DefaultTemperature matches the sampling used for the DeepSeek rewriter.
const DefaultTemperature = 0.7

// Ensure Rewriter implements newsdesk.Rewriter at compile time.
var _ newsdesk.Rewriter = (*Rewriter)(nil)

// Rewriter implements newsdesk.Rewriter using Google Gemini.
type Rewriter struct {
	client *genai.Client
	model  string
}

// RewriterOption configures a Rewriter.
type RewriterOption func(*Rewriter)

// WithTextModel overrides DefaultTextModel.
func WithTextModel(model string) RewriterOption {
	return func(r *Rewriter) {
		r.model = model
	}
}

// NewRewriter creates a new Rewriter.
func NewRewriter(client *genai.Client, opts ...RewriterOption) *Rewriter {
	r := &Rewriter{client: client, model: DefaultTextModel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite returns the model reply to prompt.
func (r *Rewriter) Rewrite(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "prompt is required")
	}

	result, err := r.client.Models.GenerateContent(ctx, r.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", upstreamError(ctx, "gemini", "rewrite request", err)
	}
	if result == nil {
		return "", newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: "gemini"}, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for rewrite calls.
// The whole instruction travels in the user prompt, so no system
// instruction is set.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(DefaultTemperature)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
