package slog

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingExtractor implements newsdesk.Extractor.
var _ newsdesk.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. The extracted body is
// identified by its xxhash so repeated sources can be spotted in logs.
type LoggingExtractor struct {
	next   newsdesk.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsdesk.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (result *newsdesk.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{"html_bytes", len(html)}
		if result != nil {
			attrs = append(attrs,
				"title", result.Title,
				"body_bytes", len(result.Body),
				"content_hash", ContentHash(result.Body),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}

// ContentHash returns the hex xxhash of s.
func ContentHash(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
