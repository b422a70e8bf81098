package groveevent

import (
	"context"
	"log/slog"
)

// SlogLogger logs events using a slog logger.
type SlogLogger struct {
	Logger *slog.Logger

	ctx      context.Context
	logLevel slog.Level
}

var _ Logger = (*SlogLogger)(nil)

// UseContext sets the context passed to slog when logging.
func (l *SlogLogger) UseContext(ctx context.Context) {
	l.ctx = ctx
}

// UseLogLevel sets the level of non-error logs. The default is
// [slog.LevelInfo].
func (l *SlogLogger) UseLogLevel(level slog.Level) {
	l.logLevel = level
}

func (l *SlogLogger) logEvent(msg string, fields ...any) {
	l.Logger.Log(l.ctx, l.logLevel, msg, fields...)
}

// LogEvent logs the given event to the provided slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Requested:
		l.logEvent("member requested", slog.String("member", e.Name))
	case *CacheHit:
		l.logEvent("member already constructed", slog.String("member", e.Name))
	case *Constructing:
		l.logEvent("constructing member", slog.String("member", e.Name))
	case *Constructed:
		if e.Err != nil {
			l.Logger.Log(l.ctx, slog.LevelError, "construction failed",
				slog.String("member", e.Name),
				slog.Any("error", e.Err),
			)
		} else {
			l.logEvent("member constructed", slog.String("member", e.Name))
		}
	}
}
