package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("execution_id", event.ExecutionID),
		slog.String("category", event.Category.String()),
	}

	// Add optional identifiers
	if event.BoxID != "" {
		attrs = append(attrs, slog.String("box_id", event.BoxID))
	}
	if event.DeviceID != "" {
		attrs = append(attrs, slog.String("device_id", event.DeviceID))
	}

	// Add type-specific attributes
	switch {
	case event.Submit != nil:
		attrs = append(attrs,
			slog.Int("entries", event.Submit.EntryCount),
			slog.String("status_codes", strings.Join(event.Submit.StatusCodes, ",")),
			slog.String("pending_ids", strings.Join(event.Submit.PendingIDs, ",")),
		)
	case event.Poll != nil:
		attrs = append(attrs,
			slog.Int("attempt", event.Poll.Attempt),
			slog.Int("max_attempts", event.Poll.MaxAttempts),
			slog.String("statuses", strings.Join(event.Poll.Statuses, ",")),
		)
	case event.Outcome != nil:
		attrs = append(attrs,
			slog.String("result", event.Outcome.Result),
			slog.Int("attempts", event.Outcome.Attempts),
		)
		if event.Outcome.ErrorCode != "" {
			attrs = append(attrs, slog.String("error_code", event.Outcome.ErrorCode))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_context", event.Error.Context),
			slog.String("error_msg", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
