package extend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/extend"
)

func TestExtendBySingleVertex_Forward(t *testing.T) {
	g, ids, err := builder.Chain(3)
	require.NoError(t, err)

	p := core.NewPath(ids[0])
	res := extend.ExtendBySingleVertex(g, p, extend.Forward, 0)

	assert.Equal(t, extend.SingleExtended, res)
	assert.Equal(t, []string{"V0", "V1"}, p.Vertices())
}

func TestExtendBySingleVertex_ReversePrepends(t *testing.T) {
	g, ids, err := builder.Chain(3)
	require.NoError(t, err)

	p := core.NewPath(ids[2])
	res := extend.ExtendBySingleVertex(g, p, extend.Reverse, 0)

	assert.Equal(t, extend.SingleExtended, res)
	assert.Equal(t, []string{"V1", "V2"}, p.Vertices())
}

func TestExtendBySingleVertex_LeavesPathOnBranch(t *testing.T) {
	g, stem, _, err := builder.Fork(1, 2, 2)
	require.NoError(t, err)

	p := core.NewPath(stem[0])
	res := extend.ExtendBySingleVertex(g, p, extend.Forward, 1)

	assert.Equal(t, extend.SingleBranchingPoint, res)
	assert.Equal(t, []string{"V0"}, p.Vertices(), "path untouched on non-extension")
}

// Linear chain A→B→C→D, forward, no limits: the walk runs off the end.
func TestExtendPath_ChainToDeadEnd(t *testing.T) {
	g, ids, err := builder.Chain(4)
	require.NoError(t, err)

	p := core.NewPath(ids[0])
	res := extend.ExtendPath(g, p, extend.Forward)

	assert.Equal(t, extend.ExtendedToDeadEnd, res)
	assert.True(t, res.Extended())
	assert.Equal(t, ids, p.Vertices())
}

func TestExtendPath_ReverseChain(t *testing.T) {
	g, ids, err := builder.Chain(4)
	require.NoError(t, err)

	p := core.NewPath(ids[3])
	res := extend.ExtendPath(g, p, extend.Reverse)

	assert.Equal(t, extend.ExtendedToDeadEnd, res)
	assert.Equal(t, ids, p.Vertices(), "reverse growth prepends toward the chain head")
}

// Cycle V0→V1→V2→V0: the repeat of V0 is detected and rolled back.
func TestExtendPath_CycleRollback(t *testing.T) {
	g, ids, err := builder.Cycle(3)
	require.NoError(t, err)

	p := core.NewPath(ids[0])
	res := extend.ExtendPath(g, p, extend.Forward)

	assert.Equal(t, extend.ExtendedToCycle, res)
	assert.Equal(t, []string{"V0", "V1", "V2"}, p.Vertices())
	assertNoDuplicates(t, p)
}

func TestExtendPath_LengthLimit(t *testing.T) {
	g, ids, err := builder.Chain(10)
	require.NoError(t, err)

	p := core.NewPath(ids[0])
	res := extend.ExtendPath(g, p, extend.Forward, extend.WithMaxLen[string](2))
	assert.Equal(t, extend.ExtendedToLengthLimit, res)
	assert.Equal(t, 2, p.Len())

	// already at the cap: no extension is even attempted
	res = extend.ExtendPath(g, p, extend.Forward, extend.WithMaxLen[string](2))
	assert.Equal(t, extend.LengthLimit, res)
	assert.Equal(t, 2, p.Len())
}

func TestExtendPath_NoGrowthCodes(t *testing.T) {
	t.Run("dead end", func(t *testing.T) {
		g := core.NewDiGraph[string]()
		g.AddVertex("A")

		p := core.NewPath("A")
		assert.Equal(t, extend.DeadEnd, extend.ExtendPath(g, p, extend.Forward))
		assert.Equal(t, []string{"A"}, p.Vertices())
	})

	t.Run("branching point", func(t *testing.T) {
		g, stem, _, err := builder.Fork(1, 2, 2)
		require.NoError(t, err)

		p := core.NewPath(stem[0])
		assert.Equal(t, extend.BranchingPoint, extend.ExtendPath(g, p, extend.Forward, extend.WithTrimLen[string](1)))
		assert.Equal(t, 1, p.Len())
	})

	t.Run("immediate cycle", func(t *testing.T) {
		// the visited set already knows V1 from an earlier logical
		// extension, so the very first step is a repeat
		g, ids, err := builder.Chain(2)
		require.NoError(t, err)

		p := core.NewPath(ids[0])
		visited := extend.NewVisitedSet(ids[0], ids[1])
		res := extend.ExtendPath(g, p, extend.Forward, extend.WithVisited(visited))

		assert.Equal(t, extend.Cycle, res)
		assert.False(t, res.Extended())
		assert.Equal(t, []string{"V0"}, p.Vertices())
	})
}

// Spur filtering end to end: with trimLen 1 the walk strides straight
// through the noisy vertex; with trimLen 0 the same vertex is a branching
// point.
func TestExtendPath_SpurChain(t *testing.T) {
	g, chain, _, err := builder.SpurChain(5, 2, 1)
	require.NoError(t, err)

	p := core.NewPath(chain[0])
	res := extend.ExtendPath(g, p, extend.Forward, extend.WithTrimLen[string](1))
	assert.Equal(t, extend.ExtendedToDeadEnd, res)
	assert.Equal(t, chain, p.Vertices())

	p = core.NewPath(chain[0])
	res = extend.ExtendPath(g, p, extend.Forward)
	assert.Equal(t, extend.ExtendedToBranchingPoint, res)
	assert.Equal(t, chain[:3], p.Vertices())
}

// A reused visited set carries cycle memory across calls: the second call
// trips on a vertex absorbed by the first.
func TestExtendPath_VisitedAcrossCalls(t *testing.T) {
	g, ids, err := builder.Cycle(4)
	require.NoError(t, err)

	p := core.NewPath(ids[0])
	visited := extend.SeedVisited(p)

	res := extend.ExtendPath(g, p, extend.Forward, extend.WithVisited(visited), extend.WithMaxLen[string](3))
	require.Equal(t, extend.ExtendedToLengthLimit, res)
	require.Equal(t, []string{"V0", "V1", "V2"}, p.Vertices())

	res = extend.ExtendPath(g, p, extend.Forward, extend.WithVisited(visited))
	assert.Equal(t, extend.ExtendedToCycle, res)
	assert.Equal(t, []string{"V0", "V1", "V2", "V3"}, p.Vertices())
	assertNoDuplicates(t, p)
	assert.Equal(t, 4, visited.Len())
}

// The growth predicate and the result code always agree, and a path never
// shrinks below its entry length.
func TestExtendPath_GrowthInvariants(t *testing.T) {
	cases := []struct {
		name string
		g    func(t *testing.T) (core.Digraph[string], *core.Path[string])
		opts []extend.Option[string]
	}{
		{
			name: "chain",
			g: func(t *testing.T) (core.Digraph[string], *core.Path[string]) {
				g, ids, err := builder.Chain(6)
				require.NoError(t, err)
				return g, core.NewPath(ids[0])
			},
		},
		{
			name: "cycle",
			g: func(t *testing.T) (core.Digraph[string], *core.Path[string]) {
				g, ids, err := builder.Cycle(5)
				require.NoError(t, err)
				return g, core.NewPath(ids[2])
			},
		},
		{
			name: "fork",
			g: func(t *testing.T) (core.Digraph[string], *core.Path[string]) {
				g, stem, _, err := builder.Fork(3, 2, 3)
				require.NoError(t, err)
				return g, core.NewPath(stem[0])
			},
			opts: []extend.Option[string]{extend.WithTrimLen[string](2)},
		},
		{
			name: "capped",
			g: func(t *testing.T) (core.Digraph[string], *core.Path[string]) {
				g, ids, err := builder.Chain(6)
				require.NoError(t, err)
				return g, core.NewPath(ids[0])
			},
			opts: []extend.Option[string]{extend.WithMaxLen[string](4)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, p := tc.g(t)
			entry := p.Len()
			res := extend.ExtendPath(g, p, extend.Forward, tc.opts...)

			assert.GreaterOrEqual(t, p.Len(), entry, "a path never shrinks")
			assert.Equal(t, p.Len() > entry, res.Extended(),
				"Extended() must mirror actual growth, got %s", res)
		})
	}
}

func TestExtendPath_ContractViolationsPanic(t *testing.T) {
	g, _, err := builder.Chain(2)
	require.NoError(t, err)

	assert.Panics(t, func() { extend.ExtendPath(g, core.NewPath[string](), extend.Forward) })
	assert.Panics(t, func() { extend.ExtendPath[string](g, nil, extend.Forward) })
	assert.Panics(t, func() { extend.ExtendPath[string](nil, core.NewPath("A"), extend.Forward) })
}

func TestOptions_Violations(t *testing.T) {
	assert.Panics(t, func() { extend.WithTrimLen[string](-1) })
	assert.Panics(t, func() { extend.WithMaxLen[string](0) })
	assert.NotPanics(t, func() { extend.WithMaxLen[string](extend.NoLimit) })
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "DEAD_END", extend.DeadEnd.String())
	assert.Equal(t, "EXTENDED_TO_CYCLE", extend.ExtendedToCycle.String())
	assert.Equal(t, "LENGTH_LIMIT", extend.LengthLimit.String())
	assert.Equal(t, "EXTENDED", extend.SingleExtended.String())
	assert.Equal(t, "FORWARD", extend.Forward.String())
	assert.Equal(t, "REVERSE", extend.Reverse.String())
	assert.Equal(t, extend.Reverse, extend.Forward.Opposite())
}

// assertNoDuplicates fails if any vertex appears twice on the path.
func assertNoDuplicates(t *testing.T, p *core.Path[string]) {
	t.Helper()
	seen := make(map[string]struct{}, p.Len())
	for _, v := range p.Vertices() {
		_, dup := seen[v]
		assert.False(t, dup, "duplicate vertex %q", v)
		seen[v] = struct{}{}
	}
}
