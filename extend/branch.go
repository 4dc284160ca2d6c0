package extend

import "github.com/katalvlaran/lvlpath/core"

// Successor classifies the outgoing side of v and, when exactly one
// neighbor qualifies, returns it as the extension candidate.
//
// Rules:
//   - zero out-edges → SingleDeadEnd
//   - exactly one out-edge → SingleExtended with that neighbor,
//     unconditionally: a lone neighbor is always taken even if its own
//     forward reach is ≤ trimLen
//   - two or more out-edges → each neighbor is probed with LookAhead at
//     depth trimLen; two survivors make a SingleBranchingPoint (remaining
//     neighbors are not probed), exactly one survivor is the candidate,
//     zero survivors is a SingleDeadEnd
//
// The candidate is the zero value of V unless the result is SingleExtended.
func Successor[V comparable](g core.Digraph[V], v V, trimLen int) (V, SingleExtensionResult) {
	return classifySide(g, v, Forward, trimLen)
}

// Predecessor classifies the incoming side of v, symmetric to Successor:
// in-edges are enumerated and each neighbor's reach is probed in Reverse.
func Predecessor[V comparable](g core.Digraph[V], v V, trimLen int) (V, SingleExtensionResult) {
	return classifySide(g, v, Reverse, trimLen)
}

// classifySide applies the shared branch-classification rules to one side
// of v: out-edges for Forward, in-edges for Reverse.
func classifySide[V comparable](g core.Digraph[V], v V, dir Direction, trimLen int) (V, SingleExtensionResult) {
	var zero V
	nbrs := neighbors(g, v, dir)

	// 0 neighbors
	if len(nbrs) == 0 {
		return zero, SingleDeadEnd
	}

	// 1 neighbor: taken unconditionally, whatever its reach
	if len(nbrs) == 1 {
		return nbrs[0], SingleExtended
	}

	// 2+ neighbors: count true branches, stopping at the second
	var candidate V
	trueBranches := 0
	for _, n := range nbrs {
		if !LookAhead(g, n, dir, trimLen) {
			continue
		}
		trueBranches++
		if trueBranches == 2 {
			return zero, SingleBranchingPoint
		}
		candidate = n
	}

	if trueBranches == 0 {
		return zero, SingleDeadEnd
	}

	return candidate, SingleExtended
}

// TrueBranches returns the neighbors of u on the dir side whose own reach
// exceeds trimLen, in the graph's native edge order. It is the enumeration
// counterpart of Successor/Predecessor, intended for diagnostics and
// branch visualization; the extension loop does not use it.
func TrueBranches[V comparable](g core.Digraph[V], u V, dir Direction, trimLen int) []V {
	var roots []V
	for _, n := range neighbors(g, u, dir) {
		if LookAhead(g, n, dir, trimLen) {
			roots = append(roots, n)
		}
	}

	return roots
}

// SingleVertexExtension combines both sides of v into one extension
// decision for direction dir.
//
// The side opposite the extension direction is classified first: a vertex
// reached by two or more independent true paths is not safe to extend
// through, even when its downstream side looks simple, because the
// provenance of the path through that vertex is itself ambiguous. Only
// when the opposite side is not a branching point is the downstream side
// classified, and that classification (with its candidate) is returned
// verbatim. This ordering is correctness-critical, not an optimization.
func SingleVertexExtension[V comparable](g core.Digraph[V], v V, dir Direction, trimLen int) (V, SingleExtensionResult) {
	var zero V

	if _, res := classifySide(g, v, dir.Opposite(), trimLen); res == SingleBranchingPoint {
		return zero, SingleBranchingPoint
	}

	return classifySide(g, v, dir, trimLen)
}
