package groveevent

// Logger receives resolution events, one call per event, in the order the
// resolver makes its decisions. Implementations must not call back into the
// resolver that emitted the event.
type Logger interface {
	LogEvent(Event)
}

// NopLogger discards every event. It is the logger of resolvers created
// without one.
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) LogEvent(Event) {}
