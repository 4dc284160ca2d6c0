package gonumgraph

import (
	"slices"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvlpath/core"
)

// Directed adapts a graph.Directed to the core.Digraph[int64] capability,
// with neighbor enumerations sorted by node ID for determinism.
type Directed struct {
	g graph.Directed
}

var _ core.Digraph[int64] = (*Directed)(nil)

// Wrap returns a Directed view over g. The underlying graph is only read;
// it must not be mutated while traversals are in flight.
func Wrap(g graph.Directed) *Directed {
	return &Directed{g: g}
}

// Unwrap returns the underlying gonum graph.
func (d *Directed) Unwrap() graph.Directed { return d.g }

// OutNeighbors enumerates the targets of all out-edges of id,
// sorted by node ID. Complexity: O(deg · log deg).
func (d *Directed) OutNeighbors(id int64) []int64 {
	return collect(d.g.From(id))
}

// InNeighbors enumerates the sources of all in-edges of id,
// sorted by node ID. Complexity: O(deg · log deg).
func (d *Directed) InNeighbors(id int64) []int64 {
	return collect(d.g.To(id))
}

// collect drains a node iterator into a sorted ID slice.
func collect(it graph.Nodes) []int64 {
	if it == nil {
		return nil
	}
	n := it.Len()
	if n <= 0 {
		// Len may report -1 for iterators of unknown length; drain anyway.
		n = 0
	}
	ids := make([]int64, 0, n)
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)

	return ids
}
