// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Context propagation (used by middleware to enrich with request metadata):
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Error logging convention for application services:
//
//	logger.WarnContext(ctx, "record rejected",
//	    slog.String("operation", "Validate"),
//	    slog.String("kind", kind),
//	    logging.Violations(verr),
//	)
//
// Every error log names the operation and the record kind. Validation
// failures are logged as a violation group; other failures carry the full
// chain via slog.Any("error", err). Member emails and API keys are masked
// before output.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level. Valid values are "debug",
// "info", "warn", and "error". Unrecognized values default to info.
//
// The format parameter selects the output handler. "text" uses
// slog.NewTextHandler; all other values (including "json") use
// slog.NewJSONHandler.
//
// When level is "debug", source code location is included in log output.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel converts a level string to slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// maxLoggedViolations bounds the violation group so a badly broken club
// payload cannot flood a single log line.
const maxLoggedViolations = 20

// Violations renders a ValidationError as a "violations" group attribute
// keyed by path, plus the total count.
func Violations(verr *domain.ValidationError) slog.Attr {
	if verr == nil {
		return slog.Group("violations", slog.Int("count", 0))
	}
	attrs := make([]any, 0, min(len(verr.Violations), maxLoggedViolations)+1)
	attrs = append(attrs, slog.Int("count", len(verr.Violations)))
	for i, v := range verr.Violations {
		if i == maxLoggedViolations {
			break
		}
		key := v.Path
		if key == "" {
			key = v.Rule
		}
		attrs = append(attrs, slog.String(key, v.Rule+": "+v.Message))
	}
	return slog.Group("violations", attrs...)
}
