package groveevent

import (
	"go.uber.org/zap"
)

// ZapLogger logs events to a Zap logger. Cache hits and constructions log at
// Info; provider failures at Error.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Requested:
		l.Logger.Info("member requested", zap.String("member", e.Name))
	case *CacheHit:
		l.Logger.Info("member already constructed", zap.String("member", e.Name))
	case *Constructing:
		l.Logger.Info("constructing member", zap.String("member", e.Name))
	case *Constructed:
		if e.Err != nil {
			l.Logger.Error("construction failed",
				zap.String("member", e.Name),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("member constructed", zap.String("member", e.Name))
		}
	}
}
