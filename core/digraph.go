package core

import "sync"

// Digraph is the minimal bidirectional graph capability consumed by the
// traversal packages. A vertex descriptor is any comparable value; it is
// referenced, never owned, by the algorithms that receive it.
//
// Implementations must enumerate neighbors in a stable, deterministic
// order: traversal outcomes (which branch is probed first, which candidate
// survives spur filtering) depend on it. The returned slices must be safe
// for the caller to read until the next graph mutation; implementations
// that mutate in place should return copies.
//
// Vertices unknown to the graph yield empty enumerations, not errors.
type Digraph[V comparable] interface {
	// OutNeighbors enumerates the targets of all out-edges of v.
	// Parallel edges yield repeated entries.
	OutNeighbors(v V) []V

	// InNeighbors enumerates the sources of all in-edges of v.
	// Parallel edges yield repeated entries.
	InNeighbors(v V) []V
}

// DiGraph is the reference Digraph implementation: a directed graph over
// insertion-ordered adjacency lists. Self-loops and parallel edges are
// rejected unless enabled via WithLoops / WithMultiEdges.
//
// A sync.RWMutex guards all state, so a DiGraph may be built from multiple
// goroutines and shared read-only once construction is done.
type DiGraph[V comparable] struct {
	mu  sync.RWMutex
	cfg graphConfig

	verts    []V             // insertion order, for deterministic Vertices()
	vertSet  map[V]struct{}  // membership
	out      map[V][]V       // v → out-neighbor targets, insertion order
	in       map[V][]V       // v → in-neighbor sources, insertion order
	numEdges int
}

// compile-time capability check
var _ Digraph[int] = (*DiGraph[int])(nil)

// NewDiGraph creates an empty DiGraph with the given policy options.
// By default self-loops and parallel edges are disallowed.
// Complexity: O(len(opts)).
func NewDiGraph[V comparable](opts ...GraphOption) *DiGraph[V] {
	g := &DiGraph[V]{
		vertSet: make(map[V]struct{}),
		out:     make(map[V][]V),
		in:      make(map[V][]V),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// AddVertex registers v in the graph. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *DiGraph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

// addVertexLocked inserts v into the catalog; caller holds g.mu.
func (g *DiGraph[V]) addVertexLocked(v V) {
	if _, ok := g.vertSet[v]; ok {
		return
	}
	g.vertSet[v] = struct{}{}
	g.verts = append(g.verts, v)
}

// AddEdge adds the directed edge from→to, creating missing endpoints.
// Returns ErrLoopNotAllowed for self-loops without WithLoops, and
// ErrMultiEdgeNotAllowed for duplicate edges without WithMultiEdges.
// Complexity: O(out-degree(from)) without multi-edges, O(1) amortized with.
func (g *DiGraph[V]) AddEdge(from, to V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.cfg.allowMulti && g.hasEdgeLocked(from, to) {
		return ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	g.numEdges++

	return nil
}

// HasVertex reports whether v is present in the graph. Complexity: O(1).
func (g *DiGraph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertSet[v]

	return ok
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(out-degree(from)).
func (g *DiGraph[V]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// hasEdgeLocked scans the out-bucket of from; caller holds g.mu (any mode).
func (g *DiGraph[V]) hasEdgeLocked(from, to V) bool {
	for _, t := range g.out[from] {
		if t == to {
			return true
		}
	}

	return false
}

// OutNeighbors returns the targets of all out-edges of v in insertion
// order. The result is a fresh copy. Complexity: O(out-degree(v)).
func (g *DiGraph[V]) OutNeighbors(v V) []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyNeighbors(g.out[v])
}

// InNeighbors returns the sources of all in-edges of v in insertion
// order. The result is a fresh copy. Complexity: O(in-degree(v)).
func (g *DiGraph[V]) InNeighbors(v V) []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyNeighbors(g.in[v])
}

// OutDegree returns the number of out-edges of v. Complexity: O(1).
func (g *DiGraph[V]) OutDegree(v V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out[v])
}

// InDegree returns the number of in-edges of v. Complexity: O(1).
func (g *DiGraph[V]) InDegree(v V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.in[v])
}

// VertexCount returns the number of registered vertices. Complexity: O(1).
func (g *DiGraph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.verts)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *DiGraph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// Vertices returns all vertices in insertion order as a fresh copy.
// Complexity: O(V).
func (g *DiGraph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyNeighbors(g.verts)
}

// copyNeighbors clones a neighbor bucket, mapping empty to nil.
func copyNeighbors[V comparable](src []V) []V {
	if len(src) == 0 {
		return nil
	}
	dst := make([]V, len(src))
	copy(dst, src)

	return dst
}
