package grove

import (
	"errors"
	"strings"
)

var (
	// ErrCyclicDependency is returned by [New] and [Validate] when the
	// dependency graph contains a cycle. Under [CheckDetailed] the error is a
	// [CycleError] carrying every cycle found.
	ErrCyclicDependency = errors.New("cyclic dependency detected")

	// ErrUnknownMember is returned when a name has no entry in the graph:
	// either a declared dependency that was never defined, or an unknown name
	// passed to [Resolver.Get].
	ErrUnknownMember = errors.New("unknown member")

	// ErrMissingProvider is returned by [New] when a member declared in the
	// graph has no provider, or its provider is nil.
	ErrMissingProvider = errors.New("missing provider")

	// ErrInvalidMemberName is returned by [New] when a member name is empty.
	ErrInvalidMemberName = errors.New("member name must not be empty")
)

// Cycle is one cycle of the dependency graph: the members of a strongly
// connected component of size greater than one, or a single self-looping
// member. Names are sorted.
type Cycle []string

// String renders the cycle as a bracketed, comma-separated list.
func (c Cycle) String() string {
	return "[" + strings.Join(c, ", ") + "]"
}

// CycleError is the error returned when cycle validation fails. Cycles is
// populated only under [CheckDetailed]; under [CheckSimple] it is nil and the
// error reports cycle presence only.
//
// CycleError unwraps to [ErrCyclicDependency], so callers can match it with
// errors.Is without caring about the validation mode.
type CycleError struct {
	Cycles []Cycle
}

// Error returns a fixed message, followed — when cycle detail is available —
// by each cycle bracketed on its own line. The rendering is deterministic for
// a given graph.
func (e *CycleError) Error() string {
	if len(e.Cycles) == 0 {
		return ErrCyclicDependency.Error()
	}

	var b strings.Builder
	b.WriteString(ErrCyclicDependency.Error())
	b.WriteString(":")
	for _, c := range e.Cycles {
		b.WriteString("\n  ")
		b.WriteString(c.String())
	}
	return b.String()
}

// Unwrap makes errors.Is(err, ErrCyclicDependency) hold for every CycleError.
func (e *CycleError) Unwrap() error { return ErrCyclicDependency }
