package groveevent

import (
	"fmt"
	"io"
)

// ConsoleLogger writes one human-readable line per event to W. Use it during
// development, or wherever a plain single-line-per-event sink is wanted.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...any) {
	fmt.Fprintf(l.W, "[grove] "+msg+"\n", args...)
}

// LogEvent writes the given event to the logger's writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Requested:
		l.logf("GET\t%s", e.Name)
	case *CacheHit:
		l.logf("HIT\t%s already constructed", e.Name)
	case *Constructing:
		l.logf("BUILD\t%s constructing", e.Name)
	case *Constructed:
		if e.Err != nil {
			l.logf("ERROR\t%s failed: %v", e.Name, e.Err)
		} else {
			l.logf("BUILD\t%s constructed", e.Name)
		}
	}
}
