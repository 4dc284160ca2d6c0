package extend

import "github.com/katalvlaran/lvlpath/core"

// ExtendBySingleVertex attempts to grow p by exactly one vertex in
// direction dir: the frontier (back for Forward, front for Reverse) is
// classified with SingleVertexExtension, and on SingleExtended the
// candidate is appended or prepended. On any other result the path is
// left untouched.
//
// Panics if p is empty (caller contract violation).
func ExtendBySingleVertex[V comparable](g core.Digraph[V], p *core.Path[V], dir Direction, trimLen int) SingleExtensionResult {
	var frontier V
	if dir == Forward {
		frontier = p.Back()
	} else {
		frontier = p.Front()
	}

	next, res := SingleVertexExtension(g, frontier, dir, trimLen)
	if res == SingleExtended {
		if dir == Forward {
			p.PushBack(next)
		} else {
			p.PushFront(next)
		}
	}

	return res
}

// ExtendPath greedily grows p in direction dir until a dead end, a true
// branching point, a cycle, or the configured length limit, and reports
// which. The path never shrinks below its length on entry; when the last
// step closes a cycle, the repeated vertex is rolled back off the path
// before returning.
//
// Without WithVisited, cycle-detection memory is seeded from the path's
// current contents and discarded afterwards. With WithVisited, the
// caller-owned set (which must already contain every vertex on the path)
// is updated in place, carrying cycle memory across repeated calls.
//
// The result is one of the four ExtendedTo* codes iff the path grew;
// otherwise one of the four bare codes for the same terminal reasons.
// A path already at or beyond MaxLen on entry returns LengthLimit without
// any extension attempt.
//
// Panics on a nil graph, a nil path, or an empty path: those are
// programming-contract violations, not runtime conditions.
func ExtendPath[V comparable](g core.Digraph[V], p *core.Path[V], dir Direction, opts ...Option[V]) PathExtensionResult {
	if g == nil {
		panic("extend: graph is nil")
	}
	if p == nil || p.Len() == 0 {
		panic("extend: path is empty")
	}

	o := defaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	visited := o.Visited
	if visited == nil {
		visited = SeedVisited(p)
	}

	entryLen := p.Len()
	if entryLen >= o.MaxLen {
		return LengthLimit
	}

	res := SingleExtended
	cycle := false
	for res == SingleExtended && !cycle && p.Len() < o.MaxLen {
		res = ExtendBySingleVertex(g, p, dir, o.TrimLen)
		if res != SingleExtended {
			continue
		}
		if dir == Forward {
			cycle = !visited.Add(p.Back())
		} else {
			cycle = !visited.Add(p.Front())
		}
	}

	// The vertex that closed the cycle is a repeat: take it back off.
	if cycle {
		if dir == Forward {
			p.PopBack()
		} else {
			p.PopFront()
		}
	}

	grew := p.Len() > entryLen
	switch {
	case cycle && grew:
		return ExtendedToCycle
	case cycle:
		return Cycle
	case res == SingleDeadEnd && grew:
		return ExtendedToDeadEnd
	case res == SingleDeadEnd:
		return DeadEnd
	case res == SingleBranchingPoint && grew:
		return ExtendedToBranchingPoint
	case res == SingleBranchingPoint:
		return BranchingPoint
	case grew:
		// still SingleExtended: the loop stopped because MaxLen was reached
		return ExtendedToLengthLimit
	default:
		return LengthLimit
	}
}
