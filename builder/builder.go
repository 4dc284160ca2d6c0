package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// ErrTooFewVertices is returned when a constructor is asked for a topology
// below its minimum size.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrIndexOutOfRange is returned when a constructor parameter addresses a
// vertex outside the topology being built.
var ErrIndexOutOfRange = errors.New("builder: index out of range")

// Minimum sizes per constructor.
const (
	minChainNodes = 1
	minCycleNodes = 2
	minForkArm    = 1
)

// IDFunc maps a vertex index to its descriptor.
type IDFunc func(i int) string

// Option configures fixture construction.
type Option func(*config)

// config holds the resolved construction parameters.
type config struct {
	idFn IDFunc
}

// WithIDScheme overrides the default "V<i>" vertex naming.
// A nil fn keeps the default.
func WithIDScheme(fn IDFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) config {
	c := config{idFn: func(i int) string { return fmt.Sprintf("V%d", i) }}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Chain builds the directed chain V0→V1→…→V(n-1) and returns the graph
// plus the vertex IDs in chain order. n must be ≥ 1; a single-vertex chain
// has no edges. Edges are emitted in increasing index order.
func Chain(n int, opts ...Option) (*core.DiGraph[string], []string, error) {
	if n < minChainNodes {
		return nil, nil, fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainNodes, ErrTooFewVertices)
	}
	cfg := resolve(opts)

	g := core.NewDiGraph[string]()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(ids[i-1], ids[i]); err != nil {
			return nil, nil, fmt.Errorf("Chain: %w", err)
		}
	}

	return g, ids, nil
}

// Cycle builds the directed cycle V0→V1→…→V(n-1)→V0 and returns the graph
// plus the vertex IDs in cycle order. n must be ≥ 2.
func Cycle(n int, opts ...Option) (*core.DiGraph[string], []string, error) {
	if n < minCycleNodes {
		return nil, nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	cfg := resolve(opts)

	g := core.NewDiGraph[string]()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(ids[i], ids[(i+1)%n]); err != nil {
			return nil, nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return g, ids, nil
}

// Fork builds a stem chain of stemLen vertices whose last vertex fans out
// into `arms` disjoint chains of armLen vertices each. Arm vertices are
// named "A<arm>_<i>". Returns the graph, the stem IDs in order, and the
// per-arm ID slices in emission order. stemLen, arms, and armLen must all
// be ≥ 1.
func Fork(stemLen, arms, armLen int, opts ...Option) (*core.DiGraph[string], []string, [][]string, error) {
	if stemLen < minChainNodes || arms < minForkArm || armLen < minForkArm {
		return nil, nil, nil, fmt.Errorf("Fork: stem=%d arms=%d armLen=%d: %w",
			stemLen, arms, armLen, ErrTooFewVertices)
	}
	cfg := resolve(opts)

	g := core.NewDiGraph[string]()
	stem := make([]string, stemLen)
	for i := 0; i < stemLen; i++ {
		stem[i] = cfg.idFn(i)
		g.AddVertex(stem[i])
	}
	for i := 1; i < stemLen; i++ {
		if err := g.AddEdge(stem[i-1], stem[i]); err != nil {
			return nil, nil, nil, fmt.Errorf("Fork: %w", err)
		}
	}

	armIDs := make([][]string, arms)
	for a := 0; a < arms; a++ {
		prev := stem[stemLen-1]
		armIDs[a] = make([]string, armLen)
		for i := 0; i < armLen; i++ {
			id := fmt.Sprintf("A%d_%d", a, i)
			armIDs[a][i] = id
			if err := g.AddEdge(prev, id); err != nil {
				return nil, nil, nil, fmt.Errorf("Fork: %w", err)
			}
			prev = id
		}
	}

	return g, stem, armIDs, nil
}

// SpurChain builds a chain of n vertices with one spur of spurLen vertices
// branching off the vertex at index `at` (spur vertices "S0"…). The main
// chain edge at the branch vertex is emitted before the spur edge, so the
// through-path is the graph's first branch. n must be ≥ 1, spurLen ≥ 1,
// and `at` a valid chain index.
func SpurChain(n, at, spurLen int, opts ...Option) (*core.DiGraph[string], []string, []string, error) {
	if n < minChainNodes || spurLen < 1 {
		return nil, nil, nil, fmt.Errorf("SpurChain: n=%d spurLen=%d: %w", n, spurLen, ErrTooFewVertices)
	}
	if at < 0 || at >= n {
		return nil, nil, nil, fmt.Errorf("SpurChain: branch index %d outside chain of %d: %w",
			at, n, ErrIndexOutOfRange)
	}

	g, ids, err := Chain(n, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	spur := make([]string, spurLen)
	prev := ids[at]
	for i := 0; i < spurLen; i++ {
		spur[i] = fmt.Sprintf("S%d", i)
		if err = g.AddEdge(prev, spur[i]); err != nil {
			return nil, nil, nil, fmt.Errorf("SpurChain: %w", err)
		}
		prev = spur[i]
	}

	return g, ids, spur, nil
}
