package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/frontpage"
)

// Ensure LoggingExtractor implements frontpage.Extractor.
var _ frontpage.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   frontpage.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next frontpage.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (items []frontpage.NewsItem, err error) {
	defer func(begin time.Time) {
		e.logger.Info("news extraction",
			"bytes", len(html),
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
