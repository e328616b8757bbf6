package dev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/runtime"
)

func TestDecorateIdentAppendsChunkListModifier(t *testing.T) {
	ctx := domContext()
	origin := entryChunk("/out/b.js", []chunk.ModuleID{chunk.StringID("mod:1")})
	rt := New(ctx, origin.MainEntries()[0])

	ident := chunk.NewIdent("/out/b.js")
	decorated := rt.DecorateIdent(ident)

	assert.Equal(t, []string{"chunk list /out/list-main.json"}, decorated.Modifiers)
	assert.Empty(t, ident.Modifiers, "input ident must not be modified")
}

func TestReferencesReportSingleChunkListEdge(t *testing.T) {
	ctx := domContext()
	a := &testChunk{path: "/out/a.js"}
	b := entryChunk("/out/b.js", []chunk.ModuleID{chunk.StringID("mod:1")})
	b.group = chunk.NewGroup(a, b)

	rt := New(ctx, b.MainEntries()[0])
	refs, err := rt.References(b)
	require.NoError(t, err)
	require.Len(t, refs, 1)

	listRef, ok := refs[0].(*runtime.ChunkListReference)
	require.True(t, ok)
	assert.Equal(t, "/out", listRef.OutputRoot)
	assert.Equal(t, "/out/list-main.json", listRef.Path)
	assert.Equal(t, 2, listRef.Group.Len())
	assert.Equal(t, "chunk list /out/list-main.json", listRef.Description())
}

func TestWithChunkGroupDerivesIndependentInstance(t *testing.T) {
	ctx := domContext()
	a := &testChunk{path: "/out/a.js"}
	b := entryChunk("/out/b.js", []chunk.ModuleID{chunk.StringID("mod:1")})
	c := &testChunk{path: "/out/c.js"}
	b.group = chunk.NewGroup(b)

	original := New(ctx, b.MainEntries()[0])
	overridden := original.WithChunkGroup(chunk.NewGroup(a, b, c))

	derived, ok := overridden.(*Runtime)
	require.True(t, ok)
	assert.Equal(t, original.ChunkListPath(), derived.ChunkListPath(), "chunk list path is fixed at construction")

	overriddenParams, err := derived.ResolveParams(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "c.js"}, overriddenParams.ChunkDependencies)

	originalParams, err := original.ResolveParams(b)
	require.NoError(t, err)
	assert.Empty(t, originalParams.ChunkDependencies, "original instance must be unaffected by the override")
}
