// Package gonumgraph bridges gonum directed graphs into the core.Digraph
// capability, so graphs built with gonum.org/v1/gonum/graph/simple (or any
// other graph.Directed implementation) can drive the extend package
// directly.
//
// gonum does not promise a stable iteration order for From/To, while the
// traversal packages require deterministic neighbor enumeration; the
// adapter therefore sorts each enumeration by node ID. Parallel edges in
// multigraphs collapse to a single neighbor entry, because graph.Directed
// exposes neighbor nodes rather than individual edges.
package gonumgraph
