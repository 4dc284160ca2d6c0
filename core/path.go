package core

// Path is an ordered, double-ended sequence of vertex descriptors — the
// mutable contig representation handed to the traversal packages. It is
// backed by a ring buffer, so pushes and pops at either end run in O(1)
// amortized time.
//
// A Path is created and owned by a single caller; traversal functions
// mutate it in place for the duration of one call and never retain it.
// Peeking or popping an empty Path panics: that is a caller contract
// violation, not a recoverable condition.
type Path[V comparable] struct {
	buf  []V
	head int // index of the front element
	size int
}

// NewPath creates a Path seeded with the given vertices, front to back.
// Complexity: O(len(seed)).
func NewPath[V comparable](seed ...V) *Path[V] {
	p := &Path[V]{}
	for _, v := range seed {
		p.PushBack(v)
	}

	return p
}

// Len returns the number of vertices on the path. Complexity: O(1).
func (p *Path[V]) Len() int { return p.size }

// Front returns the first vertex. Panics if the path is empty.
func (p *Path[V]) Front() V {
	p.mustNonEmpty()

	return p.buf[p.head]
}

// Back returns the last vertex. Panics if the path is empty.
func (p *Path[V]) Back() V {
	p.mustNonEmpty()

	return p.buf[p.index(p.size-1)]
}

// At returns the i-th vertex from the front. Panics if i is out of range.
func (p *Path[V]) At(i int) V {
	if i < 0 || i >= p.size {
		panic("core: path index out of range")
	}

	return p.buf[p.index(i)]
}

// PushBack appends v at the back. Complexity: O(1) amortized.
func (p *Path[V]) PushBack(v V) {
	p.ensureCapacity()
	p.buf[p.index(p.size)] = v
	p.size++
}

// PushFront prepends v at the front. Complexity: O(1) amortized.
func (p *Path[V]) PushFront(v V) {
	p.ensureCapacity()
	p.head = p.wrap(p.head - 1)
	p.buf[p.head] = v
	p.size++
}

// PopBack removes and returns the last vertex. Panics if the path is empty.
func (p *Path[V]) PopBack() V {
	p.mustNonEmpty()
	i := p.index(p.size - 1)
	v := p.buf[i]
	var zero V
	p.buf[i] = zero // release the reference
	p.size--

	return v
}

// PopFront removes and returns the first vertex. Panics if the path is empty.
func (p *Path[V]) PopFront() V {
	p.mustNonEmpty()
	v := p.buf[p.head]
	var zero V
	p.buf[p.head] = zero
	p.head = p.wrap(p.head + 1)
	p.size--

	return v
}

// Vertices returns the path contents front to back as a fresh slice.
// Complexity: O(n).
func (p *Path[V]) Vertices() []V {
	if p.size == 0 {
		return nil
	}
	vs := make([]V, p.size)
	for i := 0; i < p.size; i++ {
		vs[i] = p.buf[p.index(i)]
	}

	return vs
}

// Clone returns an independent copy of the path. Complexity: O(n).
func (p *Path[V]) Clone() *Path[V] {
	return NewPath(p.Vertices()...)
}

// index maps a logical offset from the front to a buffer position.
func (p *Path[V]) index(i int) int { return p.wrap(p.head + i) }

// wrap normalizes a buffer position into [0, len(buf)).
func (p *Path[V]) wrap(i int) int {
	n := len(p.buf)
	if i < 0 {
		return i + n
	}
	if i >= n {
		return i - n
	}

	return i
}

// ensureCapacity grows the ring buffer when full, relocating the contents
// to the start of the new buffer.
func (p *Path[V]) ensureCapacity() {
	if p.size < len(p.buf) {
		return
	}
	capacity := len(p.buf) * 2
	if capacity == 0 {
		capacity = 4
	}
	buf := make([]V, capacity)
	for i := 0; i < p.size; i++ {
		buf[i] = p.buf[p.index(i)]
	}
	p.buf = buf
	p.head = 0
}

// mustNonEmpty panics when the path has no vertices.
func (p *Path[V]) mustNonEmpty() {
	if p.size == 0 {
		panic("core: path is empty")
	}
}
