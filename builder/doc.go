// Package builder constructs small deterministic graph fixtures — chains,
// cycles, forks, and spur chains — on the reference core.DiGraph.
//
// The traversal packages are sensitive to edge order, so every constructor
// here emits vertices and edges in a fixed, documented order: the same
// parameters always produce an identical graph. That makes the fixtures
// suitable for tests, examples, and benchmarks alike.
//
// Vertex IDs default to "V0", "V1", … and can be reshaped per call with
// WithIDScheme. Constructors validate their parameters early and return
// sentinel errors; they never panic.
//
// Errors:
//
//   - ErrTooFewVertices   a constructor was asked for an impossibly small topology
//   - ErrIndexOutOfRange  a parameter addressed a vertex outside the topology
package builder
