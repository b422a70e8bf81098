package grove

import "github.com/grovekit/grove/groveevent"

// settings collects the knobs applied while creating a resolver.
type settings struct {
	check  CycleCheck
	logger groveevent.Logger
}

// Option configures a resolver during creation.
type Option func(*settings)

// WithCycleCheck sets how [New] validates the dependency graph. The default
// is [CheckSimple].
func WithCycleCheck(c CycleCheck) Option {
	return func(s *settings) {
		s.check = c
	}
}

// WithLogger sets the sink receiving one [groveevent.Event] per resolution
// decision. The default discards events.
func WithLogger(l groveevent.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
