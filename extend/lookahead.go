package extend

import "github.com/katalvlaran/lvlpath/core"

// probeFrame is one pending vertex of a LookAhead probe: the vertex and
// its depth in additional vertices from the probe start.
type probeFrame[V comparable] struct {
	v     V
	depth int
}

// LookAhead reports whether a simple path of at least depthLimit
// additional vertices leaves start in direction dir. A depthLimit ≤ 0 is
// trivially true.
//
// The probe is a bounded depth-first search over an explicit stack: it
// returns true the instant any branch reaches depthLimit and false once
// every branch is exhausted. Neighbors are pushed in reverse so the
// graph's first edge is always explored first.
//
// One probe-local visited set guards against cycles. It is shared across
// sibling branches of the same probe, so a vertex reachable only through a
// node already consumed by an earlier sibling may be under-counted. That
// trade keeps each probe bounded; see the package documentation.
//
// Complexity: exponential in depthLimit in the worst case. The extension
// engine only ever probes with depthLimit = trimLen, which callers keep
// small.
func LookAhead[V comparable](g core.Digraph[V], start V, dir Direction, depthLimit int) bool {
	if depthLimit <= 0 {
		return true
	}

	visited := make(map[V]struct{}, depthLimit+1)
	stack := make([]probeFrame[V], 0, depthLimit+1)
	stack = append(stack, probeFrame[V]{v: start, depth: 0})

	var f probeFrame[V]
	for len(stack) > 0 {
		f, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// A sibling branch may have consumed this vertex since it was pushed.
		if _, seen := visited[f.v]; seen {
			continue
		}
		visited[f.v] = struct{}{}

		if f.depth == depthLimit {
			return true
		}

		// Reverse push order keeps the LIFO pop order identical to a
		// recursive first-edge-first descent.
		nbrs := neighbors(g, f.v, dir)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if _, seen := visited[nbrs[i]]; !seen {
				stack = append(stack, probeFrame[V]{v: nbrs[i], depth: f.depth + 1})
			}
		}
	}

	return false
}

// neighbors enumerates the relevant side of v: out-edges for Forward,
// in-edges for Reverse.
func neighbors[V comparable](g core.Digraph[V], v V, dir Direction) []V {
	if dir == Forward {
		return g.OutNeighbors(v)
	}

	return g.InNeighbors(v)
}
