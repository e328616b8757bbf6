// Package runtime defines the capability contract a chunk runtime variant
// must satisfy, and the reference types runtimes report to the surrounding
// build. Only the development variant exists today (see the dev
// subpackage); the contract anticipates others.
package runtime

import (
	"fmt"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/code"
)

// ChunkRuntime is the polymorphic capability set of a chunk runtime
// configuration. Implementations are immutable values: WithChunkGroup
// derives a new instance and never mutates the receiver.
type ChunkRuntime interface {
	fmt.Stringer

	// DecorateIdent returns a copy of the chunk identity descriptor with a
	// modifier encoding this runtime's chunk list location, so two
	// otherwise-identical chunks registered under different chunk lists
	// keep distinct artifact identities.
	DecorateIdent(ident chunk.Ident) chunk.Ident

	// WithChunkGroup returns a new runtime instance whose chunk group
	// resolution is pinned to the given group. Used by the optimizer.
	WithChunkGroup(group *chunk.Group) ChunkRuntime

	// References returns the outbound dependency edges this runtime
	// reports for the given origin chunk.
	References(origin chunk.Chunk) ([]Reference, error)

	// Params returns the source fragment holding this runtime instance's
	// per-chunk parameters. The runtime code is shared between chunks while
	// the parameters differ per chunk, which is why Params takes the origin
	// chunk and Code does not.
	Params(origin chunk.Chunk) (*code.Code, error)

	// Code returns the shared runtime code. Independent of any chunk.
	Code() (*code.Code, error)
}

// Reference is an outbound dependency edge from a generated artifact to
// another artifact the build must produce or invalidate.
type Reference interface {
	// Description identifies the referenced artifact for logs and errors.
	Description() string
}

// ChunkListReference is the edge from a chunk's runtime to the chunk list
// artifact registering its chunk group. The build rewrites the chunk list
// whenever the resolved group changes; hot-update tooling reads it to
// discover which list governs a group.
type ChunkListReference struct {
	// OutputRoot the chunk list's member paths are expressed against.
	OutputRoot string

	// Group is the resolved chunk group to register.
	Group *chunk.Group

	// Path is the output path of the chunk list artifact.
	Path string
}

func (r *ChunkListReference) Description() string {
	return fmt.Sprintf("chunk list %s", r.Path)
}
