package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type ImportLogger struct {
	logger *slog.Logger
}

func NewImportLogger(logger *slog.Logger) ImportLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportLogger{
		logger: logger,
	}
}

func (il *ImportLogger) LogImportStarted(ctx context.Context, batchID uuid.UUID, source string) {
	il.logger.InfoContext(ctx, "import started",
		slog.String("event_type", "import_started"),
		slog.String("batch_id", batchID.String()),
		slog.String("source", source),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogImportCompleted(ctx context.Context, batchID uuid.UUID, source string, count int, durationMs int64) {
	il.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("batch_id", batchID.String()),
		slog.String("source", source),
		slog.Int("transaction_count", count),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogImportFailed(ctx context.Context, batchID uuid.UUID, source string, errorMsg string, durationMs int64) {
	il.logger.WarnContext(ctx, "import failed",
		slog.String("event_type", "import_failed"),
		slog.String("batch_id", batchID.String()),
		slog.String("source", source),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type correlationKey string

// CorrelationIDKey is the context key carrying the request trace id
const CorrelationIDKey correlationKey = "correlation_id"

// WithCorrelationID returns a context carrying the given trace id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
