package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingIllustrator implements newsdesk.Illustrator.
var _ newsdesk.Illustrator = (*LoggingIllustrator)(nil)

// LoggingIllustrator wraps an Illustrator with logging.
type LoggingIllustrator struct {
	next   newsdesk.Illustrator
	logger *slog.Logger
}

// NewLoggingIllustrator creates a new LoggingIllustrator.
func NewLoggingIllustrator(next newsdesk.Illustrator, logger *slog.Logger) *LoggingIllustrator {
	return &LoggingIllustrator{next: next, logger: logger}
}

// Illustrate delegates to the wrapped illustrator.
func (il *LoggingIllustrator) Illustrate(ctx context.Context, prompt string, opts newsdesk.ImageOptions) (img *newsdesk.Image, err error) {
	defer func(begin time.Time) {
		attrs := []any{"prompt", prompt, "aspect_ratio", opts.AspectRatio}
		if img != nil {
			attrs = append(attrs, "mime_type", img.MIMEType, "base64_bytes", len(img.Base64))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		il.logger.Info("illustrate", attrs...)
	}(time.Now())
	return il.next.Illustrate(ctx, prompt, opts)
}
