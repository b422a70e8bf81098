package grove

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.uber.org/multierr"

	"github.com/grovekit/grove/groveevent"
)

// Deps exposes the resolved values of a member's declared dependencies to its
// provider, keyed by dependency name. A member with no dependencies receives
// an empty, non-nil map.
type Deps map[string]any

// Provider constructs one member's value. It is called at most once per
// resolver, with exactly the member's declared dependencies already resolved.
// A provider must not read members it did not declare and must not call back
// into the resolver.
type Provider func(deps Deps) (any, error)

// Providers maps each member name to its construction function. It must
// cover exactly the members declared in the [Graph].
type Providers map[string]Provider

// Resolver lazily constructs the members of a validated dependency graph.
// Use [New] to create an instance.
//
// Every member is built at most once: the first access constructs its
// not-yet-built transitive dependencies depth first, in declared order, and
// caches each result. The cache is private to the instance and never
// invalidated.
type Resolver interface {
	// Get returns the value of the named member, constructing it on first
	// access. Later calls return the cached value without invoking the
	// provider. Prefer the generic [Value] helper when the concrete type is
	// known.
	Get(name string) (any, error)

	// Names returns every member name known to the resolver, sorted.
	Names() []string

	// Resolved reports whether the named member has been constructed. It
	// never triggers construction.
	Resolved(name string) bool
}

type resolver struct {
	// mu serializes access to the cache; it is held for the whole depth-first
	// walk of a Get call, so each construction chain is atomic to callers.
	mu sync.Mutex

	graph     Graph
	providers Providers
	cache     map[string]any
	logger    groveevent.Logger
}

// New validates the dependency graph and returns a [Resolver] over it. The
// graph and provider table are copied; mutating the arguments afterwards has
// no effect on the resolver.
//
// Creation fails if the graph and provider table disagree on the member set,
// if any member name is empty, or if validation under the configured
// [CycleCheck] (default [CheckSimple]) finds an undefined dependency or a
// cycle. No member is constructed before the first [Resolver.Get].
func New(g Graph, p Providers, opts ...Option) (Resolver, error) {
	s := settings{check: CheckSimple, logger: groveevent.NopLogger}
	for _, opt := range opts {
		opt(&s)
	}

	if err := multierr.Combine(checkTables(g, p), Validate(g, s.check)); err != nil {
		return nil, err
	}

	r := &resolver{
		graph:     make(Graph, len(g)),
		providers: make(Providers, len(p)),
		cache:     make(map[string]any),
		logger:    s.logger,
	}
	for name, deps := range g {
		r.graph[name] = slices.Clone(deps)
	}
	for name, fn := range p {
		r.providers[name] = fn
	}
	return r, nil
}

// checkTables verifies that the graph and the provider table describe the
// same member set. All faults are collected and reported together, in sorted
// member order.
func checkTables(g Graph, p Providers) error {
	var err error
	for _, name := range sortedKeys(g) {
		if name == "" {
			err = multierr.Append(err, ErrInvalidMemberName)
			continue
		}
		if fn, ok := p[name]; !ok || fn == nil {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrMissingProvider, name))
		}
	}
	for _, name := range slices.Sorted(maps.Keys(p)) {
		if _, ok := g[name]; !ok {
			err = multierr.Append(err, fmt.Errorf("%w: provider %q has no graph entry", ErrUnknownMember, name))
		}
	}
	return err
}

func (r *resolver) Get(name string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(name)
}

// resolve runs the depth-first construction walk for one member. The caller
// must hold r.mu.
func (r *resolver) resolve(name string) (any, error) {
	r.logger.LogEvent(&groveevent.Requested{Name: name})

	if v, ok := r.cache[name]; ok {
		r.logger.LogEvent(&groveevent.CacheHit{Name: name})
		return v, nil
	}

	deps, ok := r.graph[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMember, name)
	}

	r.logger.LogEvent(&groveevent.Constructing{Name: name})

	lookup := make(Deps, len(deps))
	for _, dep := range deps {
		v, err := r.resolve(dep)
		if err != nil {
			// Dependencies built before the failure stay cached.
			return nil, err
		}
		lookup[dep] = v
	}

	v, err := r.providers[name](lookup)
	if err != nil {
		err = fmt.Errorf("constructing %q: %w", name, err)
		r.logger.LogEvent(&groveevent.Constructed{Name: name, Err: err})
		return nil, err
	}

	r.cache[name] = v
	r.logger.LogEvent(&groveevent.Constructed{Name: name})
	return v, nil
}

func (r *resolver) Names() []string {
	return sortedKeys(r.graph)
}

func (r *resolver) Resolved(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.cache[name]
	return ok
}
