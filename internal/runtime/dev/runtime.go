// Package dev implements the development-mode chunk runtime. It computes,
// for a chunk, the sibling chunks that must already be loaded, the module
// ids to instantiate, and the bootstrap code wiring the chunk into the
// shared dev runtime.
package dev

import (
	"fmt"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/runtime"
)

// Runtime is a dev chunk runtime configuration bound to one chunking
// context and one chunk list location. The zero group means the group is
// derived from the origin chunk on each request; an optimizer can pin an
// explicit group with WithChunkGroup. Immutable after construction.
type Runtime struct {
	ctx chunk.Context

	// group, when non-nil, overrides chunk group resolution.
	group *chunk.Group

	// chunkListPath is fixed at construction and survives group overrides.
	chunkListPath string
}

// New creates the dev runtime for a main entry. The chunk list location is
// derived from the entry's identity once, here, and never changes.
func New(ctx chunk.Context, mainEntry chunk.Placeable) *Runtime {
	return &Runtime{
		ctx:           ctx,
		chunkListPath: ctx.ChunkListPath(mainEntry.Ident()),
	}
}

func (r *Runtime) String() string {
	return "dev chunk runtime"
}

// ChunkListPath returns the output path of this runtime's chunk list.
func (r *Runtime) ChunkListPath() string {
	return r.chunkListPath
}

// DecorateIdent appends the chunk list location as an identity modifier.
func (r *Runtime) DecorateIdent(ident chunk.Ident) chunk.Ident {
	return ident.WithModifier(fmt.Sprintf("chunk list %s", r.chunkListPath))
}

// WithChunkGroup derives a new runtime pinned to the given group. The
// receiver is left untouched.
func (r *Runtime) WithChunkGroup(group *chunk.Group) runtime.ChunkRuntime {
	derived := *r
	derived.group = group
	return &derived
}

// References reports the single edge to this runtime's chunk list artifact,
// parameterized by the effective group for the origin chunk.
func (r *Runtime) References(origin chunk.Chunk) ([]runtime.Reference, error) {
	return []runtime.Reference{
		&runtime.ChunkListReference{
			OutputRoot: r.ctx.OutputRoot(),
			Group:      r.effectiveGroup(origin),
			Path:       r.chunkListPath,
		},
	}, nil
}

// effectiveGroup resolves the chunk group: the pinned override when
// present, otherwise the origin chunk's natural group.
func (r *Runtime) effectiveGroup(origin chunk.Chunk) *chunk.Group {
	if r.group != nil {
		return r.group
	}
	return chunk.GroupOf(origin)
}
