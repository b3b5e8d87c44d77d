package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingRewriter implements newsdesk.Rewriter.
var _ newsdesk.Rewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a Rewriter with logging. Prompt and reply text are
// not logged, only their sizes.
type LoggingRewriter struct {
	next   newsdesk.Rewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next newsdesk.Rewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter.
func (r *LoggingRewriter) Rewrite(ctx context.Context, prompt string) (reply string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"prompt_bytes", len(prompt),
			"reply_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		}
		if up := newsdesk.UpstreamOf(err); up != nil {
			attrs = append(attrs, "upstream", up.Service, "status", up.Status)
		}
		r.logger.Info("rewrite", attrs...)
	}(time.Now())
	return r.next.Rewrite(ctx, prompt)
}
