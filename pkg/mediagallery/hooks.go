package mediagallery

import (
	"context"
	"log/slog"
)

// NoopEventSink discards all events.
type NoopEventSink struct{}

// NewNoopEventSink creates an event sink that does nothing.
func NewNoopEventSink() *NoopEventSink { return &NoopEventSink{} }

func (s *NoopEventSink) MediaUploaded(ctx context.Context, media *Media) {}
func (s *NoopEventSink) MediaDeleted(ctx context.Context, media *Media)  {}

// SlogEventSink logs media lifecycle events with slog.
type SlogEventSink struct {
	logger *slog.Logger
}

// NewSlogEventSink creates an event sink backed by the given logger.
// A nil logger falls back to slog.Default().
func NewSlogEventSink(logger *slog.Logger) *SlogEventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogEventSink{logger: logger}
}

func (s *SlogEventSink) MediaUploaded(ctx context.Context, media *Media) {
	s.logger.InfoContext(ctx, "media uploaded",
		"id", media.ID,
		"filename", media.FileName,
		"type", media.Type,
		"uploaded_by", media.UploadedBy)
}

func (s *SlogEventSink) MediaDeleted(ctx context.Context, media *Media) {
	s.logger.InfoContext(ctx, "media deleted",
		"id", media.ID,
		"filename", media.FileName)
}
