// Package chunk defines the data model the runtime generator operates on:
// chunks, chunk groups, module placeables and the chunking context that
// describes the build's target environment and output layout.
package chunk

// Placeable is a module that can be placed into a chunk as a main entry.
type Placeable interface {
	// Ident returns the identity descriptor of the module.
	Ident() Ident

	// ModuleID returns the opaque, context-scoped identifier the chunk uses
	// to instantiate this module at runtime.
	ModuleID(ctx Context) (ModuleID, error)
}

// Chunk is a unit of bundled, loadable output.
type Chunk interface {
	// Path returns the chunk's output path, rooted like the output root.
	Path() string

	// Ident returns the chunk's identity descriptor.
	Ident() Ident

	// MainEntries returns the modules designated as execution entry points
	// for this chunk, in declaration order.
	MainEntries() []Placeable

	// Group returns the chunk's natural chunk group. May be nil, in which
	// case the chunk forms a group by itself.
	Group() *Group
}

// Group is the ordered set of chunks that must all be loaded before a
// designated entry chunk can execute. Iteration order is the construction
// order and is stable across repeated evaluations.
type Group struct {
	chunks []Chunk
}

// NewGroup creates a group from the given chunks, preserving order.
func NewGroup(chunks ...Chunk) *Group {
	return &Group{chunks: chunks}
}

// GroupOf resolves the natural group of a chunk: the chunk's own group when
// it declares one, otherwise a singleton group containing just the chunk.
func GroupOf(c Chunk) *Group {
	if g := c.Group(); g != nil {
		return g
	}
	return NewGroup(c)
}

// Chunks returns the member chunks in group order. The returned slice is
// shared and must not be modified.
func (g *Group) Chunks() []Chunk {
	return g.chunks
}

// Len returns the number of member chunks.
func (g *Group) Len() int {
	return len(g.chunks)
}
