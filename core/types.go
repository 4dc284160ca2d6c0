// Package core: sentinel errors and construction options shared by the
// graph primitives.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a DiGraph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects the immutable policy flags applied at construction.
type graphConfig struct {
	allowLoops bool // permit edges v→v
	allowMulti bool // permit parallel edges between the same endpoints
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}
