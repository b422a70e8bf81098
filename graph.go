package grove

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// Graph declares the dependency mapping of a member set: each key is a member
// name, each value the ordered list of member names it requires. Every name
// appearing in a dependency list must itself be a key of the graph.
type Graph map[string][]string

// Validate checks g according to the given mode. It is a pure function: no
// side effects, no I/O.
//
// [CheckSkip] never inspects the graph and always returns nil. The other
// modes first verify that every declared dependency is itself a member (all
// violations are collected into one error), then look for cycles:
// [CheckSimple] returns a bare [CycleError] as soon as any cycle is proven to
// exist, [CheckDetailed] enumerates every cycle via [FindCycles] and returns
// them all.
func Validate(g Graph, mode CycleCheck) error {
	if mode == CheckSkip {
		return nil
	}

	if err := checkDeclared(g); err != nil {
		return err
	}

	if mode == CheckDetailed {
		if cycles := FindCycles(g); len(cycles) > 0 {
			return &CycleError{Cycles: cycles}
		}
		return nil
	}

	if hasCycle(g) {
		return &CycleError{}
	}
	return nil
}

// checkDeclared verifies that every dependency name has a graph entry.
// Members are scanned in sorted order so the combined error is deterministic.
func checkDeclared(g Graph) error {
	var err error
	for _, name := range sortedKeys(g) {
		for _, dep := range g[name] {
			if _, ok := g[dep]; !ok {
				err = multierr.Append(err, fmt.Errorf("%w: %q required by %q", ErrUnknownMember, dep, name))
			}
		}
	}
	return err
}

// ---------------------------------------------------------------------------
// Simple check
// ---------------------------------------------------------------------------

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// hasCycle reports whether g contains at least one cycle, self-edges
// included. Depth-first traversal with a per-node tri-state; an edge into a
// node still being visited proves a cycle and stops the walk. O(V+E).
func hasCycle(g Graph) bool {
	states := make(map[string]visitState, len(g))

	var walk func(name string) bool
	walk = func(name string) bool {
		states[name] = visiting
		for _, dep := range g[name] {
			switch states[dep] {
			case visiting:
				return true
			case unvisited:
				if walk(dep) {
					return true
				}
			}
		}
		states[name] = visited
		return false
	}

	for name := range g {
		if states[name] == unvisited && walk(name) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Detailed check
// ---------------------------------------------------------------------------

// sccNode carries the bookkeeping for one member during the
// strongly-connected-component pass.
type sccNode struct {
	index   int  // visit order
	lowLink int  // smallest index reachable through back-edges
	onStack bool // still on the component stack, i.e. its component is open
}

// FindCycles returns every cycle of g: one entry per strongly connected
// component of size greater than one, plus one per self-looping member. Each
// cycle lists its member names sorted; the cycles themselves are ordered by
// increasing size, then lexicographically by their joined names, so the
// result is independent of map iteration order. An empty result means the
// graph is acyclic.
//
// Dependency names without a graph entry are ignored here; [Validate]
// reports them separately.
func FindCycles(g Graph) []Cycle {
	nodes := make(map[string]*sccNode, len(g))
	stack := make([]string, 0, len(g))
	next := 0

	var cycles []Cycle

	// Tarjan's algorithm: a single DFS pass assigns each node a visit index
	// and a low-link, the minimum index reachable via tree edges and edges
	// into nodes whose component is still open. A node that finished its own
	// visit stays on the stack until its component root finishes, so a
	// cross-edge into it still lowers the low-link; only edges into popped
	// nodes belong to earlier components and are ignored.
	var visit func(name string) *sccNode
	visit = func(name string) *sccNode {
		n := &sccNode{index: next, lowLink: next, onStack: true}
		next++
		nodes[name] = n
		stack = append(stack, name)

		for _, dep := range g[name] {
			if _, ok := g[dep]; !ok {
				continue
			}
			d, seen := nodes[dep]
			switch {
			case !seen:
				if child := visit(dep); child.lowLink < n.lowLink {
					n.lowLink = child.lowLink
				}
			case d.onStack:
				if d.index < n.lowLink {
					n.lowLink = d.index
				}
			}
		}

		// A node whose low-link is its own index roots a component: it and
		// everything above it on the stack form one complete SCC.
		if n.lowLink == n.index {
			var members []string
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				nodes[top].onStack = false
				members = append(members, top)
				if top == name {
					break
				}
			}
			if len(members) > 1 || slices.Contains(g[name], name) {
				slices.Sort(members)
				cycles = append(cycles, Cycle(members))
			}
		}
		return n
	}

	for _, name := range sortedKeys(g) {
		if _, seen := nodes[name]; !seen {
			visit(name)
		}
	}

	slices.SortFunc(cycles, func(a, b Cycle) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(strings.Join(a, ","), strings.Join(b, ","))
	})
	return cycles
}

// sortedKeys returns the member names of g in sorted order.
func sortedKeys(g Graph) []string {
	return slices.Sorted(maps.Keys(g))
}
