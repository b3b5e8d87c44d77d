package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingImageStore implements newsdesk.ImageStore.
var _ newsdesk.ImageStore = (*LoggingImageStore)(nil)

// LoggingImageStore wraps an ImageStore with logging.
type LoggingImageStore struct {
	next   newsdesk.ImageStore
	logger *slog.Logger
}

// NewLoggingImageStore creates a new LoggingImageStore.
func NewLoggingImageStore(next newsdesk.ImageStore, logger *slog.Logger) *LoggingImageStore {
	return &LoggingImageStore{next: next, logger: logger}
}

// SaveImage delegates to the wrapped store.
func (s *LoggingImageStore) SaveImage(ctx context.Context, payload string, hint string) (img *newsdesk.StoredImage, err error) {
	defer func(begin time.Time) {
		attrs := []any{"payload_bytes", len(payload)}
		if img != nil {
			attrs = append(attrs, "path", img.Path, "url", img.URL)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("save image", attrs...)
	}(time.Now())
	return s.next.SaveImage(ctx, payload, hint)
}
