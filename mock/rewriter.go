package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of newsdesk.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, prompt string) (string, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, prompt string) (string, error) {
	return r.RewriteFn(ctx, prompt)
}

var _ newsdesk.StoryService = (*StoryService)(nil)

// StoryService is a mock implementation of newsdesk.StoryService.
type StoryService struct {
	FromURLFn    func(ctx context.Context, url string) (*newsdesk.Story, error)
	FromTextFn   func(ctx context.Context, text string) (*newsdesk.Story, error)
	IllustrateFn func(ctx context.Context, prompt, hint string) (*newsdesk.Illustration, error)
}

func (s *StoryService) FromURL(ctx context.Context, url string) (*newsdesk.Story, error) {
	return s.FromURLFn(ctx, url)
}

func (s *StoryService) FromText(ctx context.Context, text string) (*newsdesk.Story, error) {
	return s.FromTextFn(ctx, text)
}

func (s *StoryService) Illustrate(ctx context.Context, prompt, hint string) (*newsdesk.Illustration, error) {
	return s.IllustrateFn(ctx, prompt, hint)
}
