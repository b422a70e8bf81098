// Package grove lazily constructs a fixed set of named, interdependent
// values exactly once each, in dependency order.
//
// A resolver is created from two tables: a [Graph] declaring which members
// each member requires, and a [Providers] table holding one construction
// function per member. Each provider receives a [Deps] lookup with exactly
// its declared dependencies already resolved. The graph is validated for
// cycles before the resolver is usable; members are then built on first
// access, depth first, and cached forever.
//
// # Quick Start
//
//	r, err := grove.New(
//		grove.Graph{
//			"config":   nil,
//			"database": {"config"},
//		},
//		grove.Providers{
//			"config":   func(grove.Deps) (any, error) { return LoadConfig() },
//			"database": func(d grove.Deps) (any, error) { return OpenDB(d["config"].(*Config)) },
//		},
//	)
//	if err != nil {
//		// the graph is cyclic or misconfigured
//	}
//
//	db, err := grove.Value[*DB](r, "database")
//
// # Cycle Checking
//
// [CheckSimple] (default) — fail creation if any cycle exists.
//
// [CheckDetailed] — additionally enumerate every cycle, grouped by strongly
// connected component, in the returned [CycleError].
//
// [CheckSkip] — trust the caller; a cycle then means unbounded recursion at
// resolution time.
//
//	r, err := grove.New(g, p, grove.WithCycleCheck(grove.CheckDetailed))
//
// # Events
//
// Pass a [groveevent.Logger] to observe each resolution decision (access,
// cache hit, construction start and end):
//
//	r, _ := grove.New(g, p, grove.WithLogger(&groveevent.ConsoleLogger{W: os.Stderr}))
//
// # Concurrency
//
// Resolution is synchronous: a Get call runs its whole construction chain to
// completion before returning. A single mutex per resolver makes concurrent
// Get calls safe; there is no parallel construction.
package grove
