// Package extend: directions, outcome enums, cycle-detection memory,
// and functional options for path extension.
package extend

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// NoLimit is the maxLen sentinel meaning "unbounded": extension stops only
// at a dead end, a branching point, or a cycle.
const NoLimit = math.MaxInt

// Direction selects which side of a vertex a traversal moves across:
// Forward follows out-edges, Reverse follows in-edges.
type Direction uint8

const (
	// Forward traverses out-edges, growing the path at its back.
	Forward Direction = iota
	// Reverse traverses in-edges, growing the path at its front.
	Reverse
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Reverse
	}

	return Forward
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Forward {
		return "FORWARD"
	}

	return "REVERSE"
}

// SingleExtensionResult classifies one attempt to extend a path by a
// single neighboring vertex.
type SingleExtensionResult uint8

const (
	// SingleDeadEnd: no qualifying neighbor on the extension side.
	SingleDeadEnd SingleExtensionResult = iota
	// SingleBranchingPoint: two or more qualifying neighbors — ambiguous.
	SingleBranchingPoint
	// SingleExtended: exactly one qualifying neighbor; the path grew by it.
	SingleExtended
)

// String implements fmt.Stringer.
func (r SingleExtensionResult) String() string {
	switch r {
	case SingleDeadEnd:
		return "DEAD_END"
	case SingleBranchingPoint:
		return "BRANCHING_POINT"
	case SingleExtended:
		return "EXTENDED"
	default:
		return fmt.Sprintf("SingleExtensionResult(%d)", uint8(r))
	}
}

// PathExtensionResult is the terminal outcome of ExtendPath. The first
// four codes mean the path did not grow at all; the ExtendedTo* codes mean
// it grew by at least one vertex before hitting the same terminal reason.
type PathExtensionResult uint8

const (
	// DeadEnd: the frontier had no qualifying neighbor to begin with.
	DeadEnd PathExtensionResult = iota
	// BranchingPoint: the frontier was already a true branching point.
	BranchingPoint
	// Cycle: the very first extension revisited a known vertex.
	Cycle
	// LengthLimit: the path already met or exceeded maxLen on entry.
	LengthLimit
	// ExtendedToDeadEnd: the path grew, then ran out of edges.
	ExtendedToDeadEnd
	// ExtendedToBranchingPoint: the path grew, then met ≥2 true branches.
	ExtendedToBranchingPoint
	// ExtendedToCycle: the path grew, then revisited a known vertex
	// (the repeat was rolled back off the path).
	ExtendedToCycle
	// ExtendedToLengthLimit: the path grew up to exactly maxLen vertices.
	ExtendedToLengthLimit
)

// Extended reports whether the path grew by one or more vertices.
func (r PathExtensionResult) Extended() bool {
	switch r {
	case DeadEnd, BranchingPoint, Cycle, LengthLimit:
		return false
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (r PathExtensionResult) String() string {
	switch r {
	case DeadEnd:
		return "DEAD_END"
	case BranchingPoint:
		return "BRANCHING_POINT"
	case Cycle:
		return "CYCLE"
	case LengthLimit:
		return "LENGTH_LIMIT"
	case ExtendedToDeadEnd:
		return "EXTENDED_TO_DEAD_END"
	case ExtendedToBranchingPoint:
		return "EXTENDED_TO_BRANCHING_POINT"
	case ExtendedToCycle:
		return "EXTENDED_TO_CYCLE"
	case ExtendedToLengthLimit:
		return "EXTENDED_TO_LENGTH_LIMIT"
	default:
		return fmt.Sprintf("PathExtensionResult(%d)", uint8(r))
	}
}

// VisitedSet records vertices already incorporated into a path, for cycle
// detection. Callers may keep one set alive across repeated ExtendPath
// calls on a growing path: that avoids re-seeding cost and catches cycles
// that span earlier extensions.
type VisitedSet[V comparable] struct {
	members map[V]struct{}
}

// NewVisitedSet creates a VisitedSet holding the given seed vertices.
func NewVisitedSet[V comparable](seed ...V) *VisitedSet[V] {
	s := &VisitedSet[V]{members: make(map[V]struct{}, len(seed))}
	for _, v := range seed {
		s.members[v] = struct{}{}
	}

	return s
}

// Add inserts v and reports whether it was newly added
// (false means v was already a member).
func (s *VisitedSet[V]) Add(v V) bool {
	if _, ok := s.members[v]; ok {
		return false
	}
	s.members[v] = struct{}{}

	return true
}

// Has reports whether v is a member.
func (s *VisitedSet[V]) Has(v V) bool {
	_, ok := s.members[v]

	return ok
}

// Remove deletes v from the set; absent vertices are a no-op.
func (s *VisitedSet[V]) Remove(v V) {
	delete(s.members, v)
}

// Len returns the number of members.
func (s *VisitedSet[V]) Len() int { return len(s.members) }

// Option configures optional behavior of ExtendPath.
// Use with ExtendPath(g, p, dir, opts...).
type Option[V comparable] func(*Options[V])

// Options holds the configurable parameters of one ExtendPath invocation.
type Options[V comparable] struct {
	// TrimLen is the spur threshold: among multiple raw edges, neighbors
	// whose own reach is ≤ TrimLen are ignored as noise. Default 0.
	TrimLen int

	// MaxLen caps the total path length. Default NoLimit (unbounded).
	MaxLen int

	// Visited is the cycle-detection memory. When nil, ExtendPath seeds a
	// fresh set from the path's current contents. A caller-supplied set
	// must already contain every vertex on the path.
	Visited *VisitedSet[V]
}

// defaultOptions returns the Options applied before any caller Option:
// no spur filtering, no length limit, path-seeded visited set.
func defaultOptions[V comparable]() Options[V] {
	return Options[V]{
		TrimLen: 0,
		MaxLen:  NoLimit,
		Visited: nil,
	}
}

// WithTrimLen sets the spur threshold: branches of length ≤ n are treated
// as noise during classification. n must be ≥ 0; a negative n is a
// programming error and panics.
func WithTrimLen[V comparable](n int) Option[V] {
	if n < 0 {
		panic(fmt.Sprintf("extend: negative trimLen %d", n))
	}

	return func(o *Options[V]) { o.TrimLen = n }
}

// WithMaxLen caps the total path length at n vertices. n must be ≥ 1 or
// the sentinel NoLimit; anything else is a programming error and panics.
func WithMaxLen[V comparable](n int) Option[V] {
	if n < 1 {
		panic(fmt.Sprintf("extend: maxLen %d out of range", n))
	}

	return func(o *Options[V]) { o.MaxLen = n }
}

// WithVisited supplies a caller-owned VisitedSet, typically reused across
// repeated ExtendPath calls on the same growing path. The set must contain
// every vertex already on the path.
func WithVisited[V comparable](s *VisitedSet[V]) Option[V] {
	return func(o *Options[V]) {
		if s != nil {
			o.Visited = s
		}
	}
}

// SeedVisited builds a VisitedSet from the path's current contents — the
// set ExtendPath would build for itself when WithVisited is absent.
func SeedVisited[V comparable](p *core.Path[V]) *VisitedSet[V] {
	return NewVisitedSet(p.Vertices()...)
}
