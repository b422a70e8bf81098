package groveevent

// Event describes one decision a resolver makes while serving a member
// access.
type Event interface {
	event() // Only grove can emit events.
}

// Passing events by pointer keeps the set of implementations closed.
func (*Requested) event()    {}
func (*CacheHit) event()     {}
func (*Constructing) event() {}
func (*Constructed) event()  {}

// Requested is emitted at the start of every access to a member, whether or
// not it is already constructed. Accesses made internally to resolve another
// member's dependencies emit it too.
type Requested struct {
	// Name is the member being accessed.
	Name string
}

// CacheHit is emitted when an access is served from the cache. The member's
// provider is not invoked and its dependencies are not revisited.
type CacheHit struct {
	Name string
}

// Constructing is emitted before a member's dependencies are resolved and its
// provider invoked.
type Constructing struct {
	Name string
}

// Constructed is emitted after a member's provider has returned. Err is nil
// when the value was cached successfully; otherwise it is the provider's
// failure and nothing was cached for this member.
type Constructed struct {
	Name string
	Err  error
}
