package worker

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/sangkips/customer-directory-api/internal/queue"
)

// Recorder persists a customer event somewhere durable.
type Recorder interface {
	Record(ctx context.Context, evt queue.CustomerEvent) error
}

// LogRecorder writes one structured audit line per event.
type LogRecorder struct {
	logger zerolog.Logger
}

func NewLogRecorder(w io.Writer) *LogRecorder {
	return &LogRecorder{
		logger: zerolog.New(w).With().Timestamp().Str("stream", "audit").Logger(),
	}
}

func (r *LogRecorder) Record(ctx context.Context, evt queue.CustomerEvent) error {
	r.logger.Info().
		Str("event_id", evt.ID).
		Str("event", evt.Type).
		Int32("customer_id", evt.CustomerID).
		Time("occurred_at", evt.OccurredAt).
		Msg("customer event")
	return nil
}
