// Package core defines the graph and path primitives consumed by the
// traversal packages: the Digraph capability interface, a reference
// adjacency-list implementation (DiGraph), and a double-ended vertex
// sequence (Path).
//
// What:
//
//   - Digraph[V]: the minimal bidirectional capability — enumerate the
//     out-neighbors and in-neighbors of a vertex. Any graph that can answer
//     those two queries (natively or through an adapter) can drive the
//     traversal packages.
//   - DiGraph[V]: a reference implementation backed by insertion-ordered
//     adjacency lists, with policy flags for self-loops and parallel edges.
//   - Path[V]: an ordered, double-ended sequence of vertex descriptors with
//     O(1) amortized push/pop at both ends, used as the mutable contig
//     representation during extension.
//
// Why:
//   - Keep traversal algorithms independent of any one graph representation
//   - Guarantee deterministic neighbor enumeration (insertion order), which
//     traversal results depend on
//   - Give callers a cheap, caller-owned path value that algorithms mutate
//     in place
//
// Key Types & Functions:
//
//   - Digraph[V comparable]: OutNeighbors(v), InNeighbors(v)
//   - DiGraph[V]: NewDiGraph, AddVertex, AddEdge, HasVertex, HasEdge,
//     OutDegree, InDegree, VertexCount, EdgeCount, Vertices
//   - Path[V]: NewPath, PushBack, PushFront, PopBack, PopFront,
//     Front, Back, Len, Vertices, Clone
//   - GraphOption: WithLoops, WithMultiEdges
//
// Concurrency:
//
//   - DiGraph guards its state with a sync.RWMutex, so builds may run from
//     multiple goroutines and a finished graph may be shared read-only.
//   - Path is a plain value owned by a single caller; it is not locked.
//
// Complexity:
//
//   - DiGraph.AddEdge: O(out-degree) when parallel edges are disallowed,
//     O(1) amortized otherwise. Neighbor queries: O(degree) copy.
//   - Path push/pop/peek: O(1) amortized; Vertices/Clone: O(n).
//
// Errors:
//
//   - ErrLoopNotAllowed       self-loop added without WithLoops
//   - ErrMultiEdgeNotAllowed  parallel edge added without WithMultiEdges
package core
