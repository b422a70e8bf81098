// Package groveevent defines the events emitted by a grove resolver while it
// serves member accesses, and adapters for routing them to common logging
// backends.
//
// A resolver created with grove.WithLogger emits one [Event] per decision: a
// [Requested] for every access, then either a [CacheHit] or a
// [Constructing]/[Constructed] pair. Pass a [ConsoleLogger] for plain
// single-line output, a [ZapLogger] or [SlogLogger] to route events into an
// existing logging setup, or implement [Logger] directly, for example to
// record events in tests.
package groveevent
