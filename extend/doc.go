// Package extend implements greedy path extension and branch classification
// over a bidirectional core.Digraph: the traversal core behind contig
// extension in de-Bruijn-style assembly graphs.
//
// What:
//
//   - LookAhead: a bounded, iterative depth-first probe answering "does a
//     path of at least N more vertices leave this one?"
//   - Successor / Predecessor / SingleVertexExtension: classify the
//     neighborhood of a vertex as a dead end, a unique extension (with the
//     candidate vertex), or a branching point, filtering out short spurs
//     whose reach is ≤ trimLen
//   - TrueBranches: enumerate the neighbors that survive spur filtering,
//     in the graph's native edge order
//   - ExtendPath / ExtendBySingleVertex: grow a caller-owned core.Path
//     vertex by vertex until a dead end, a true branching point, a cycle,
//     or a caller-imposed length limit, reporting a closed eight-way
//     PathExtensionResult
//
// Why:
//   - Sequencing-error spurs produce meaningless short branches; filtering
//     them (trimLen) lets a contig walk straight through noisy vertices
//   - Cycle detection with rollback keeps extension safe on repetitive
//     regions without ever re-emitting a vertex
//   - A closed outcome enum forces callers to handle every terminal case
//
// Traversal rules (load-bearing, in order):
//
//  1. A lone raw neighbor is always taken, whatever its own reach; spur
//     filtering only disambiguates among two or more raw edges.
//  2. Classification of a vertex first examines the side opposite the
//     extension direction: two or more true incoming paths make the
//     provenance of the walk through that vertex ambiguous, so extension
//     stops there even when the downstream side looks simple.
//  3. Each LookAhead probe keeps one probe-local visited set shared across
//     sibling branches. A vertex reachable only through a node already
//     consumed by an earlier sibling may be under-counted. This is a known,
//     deliberate trade of accuracy for bounded work; do not "fix" it.
//
// Key Types & Constants:
//
//   - Direction: Forward, Reverse
//   - SingleExtensionResult: SingleDeadEnd, SingleBranchingPoint,
//     SingleExtended
//   - PathExtensionResult: DeadEnd, BranchingPoint, Cycle, LengthLimit and
//     the four ExtendedTo* counterparts; predicate Extended()
//   - VisitedSet: cycle-detection memory, reusable across calls
//   - Option: WithTrimLen, WithMaxLen, WithVisited
//   - NoLimit: sentinel for an unbounded maxLen
//
// Complexity:
//
//   - LookAhead: exponential in depthLimit in the worst case — keep
//     trimLen small (it is the only depthLimit the engine ever passes)
//   - ExtendPath: O(steps × branch-classification cost), steps bounded by
//     maxLen or graph structure
//
// Concurrency:
//
//   - Fully synchronous; no locking. The Path and VisitedSet arguments must
//     not be shared during a call. The graph is only read, so it may back
//     any number of independent extensions at once.
//
// Errors:
//
//   - None: dead end, branching point, cycle, and length limit are ordinary
//     outcome values. The one contract violation — an empty path handed to
//     ExtendPath — panics.
package extend
