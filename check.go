package grove

// CycleCheck selects how the dependency graph is validated before a resolver
// is created.
type CycleCheck int

const (
	// CheckSimple is the default check. A depth-first traversal reports
	// whether any cycle exists, stopping at the first one found. The
	// resulting error carries no cycle detail.
	CheckSimple CycleCheck = iota

	// CheckSkip disables validation entirely; the graph is never inspected.
	// Resolving a member of a truly cyclic graph then recurses without bound
	// and exhausts the call stack. Use only for graphs known to be acyclic.
	CheckSkip

	// CheckDetailed runs a full strongly-connected-component pass and reports
	// every cycle in the graph, normalized and sorted, via [CycleError].
	CheckDetailed
)

// String returns the human-readable name of the check mode.
func (c CycleCheck) String() string {
	switch c {
	case CheckSimple:
		return "simple"
	case CheckSkip:
		return "skip"
	case CheckDetailed:
		return "detailed"
	default:
		return "unknown"
	}
}
