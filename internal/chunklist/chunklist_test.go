package chunklist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/runtime"
)

type testChunk struct {
	path string
}

func (c *testChunk) Path() string                   { return c.path }
func (c *testChunk) Ident() chunk.Ident             { return chunk.NewIdent(c.path) }
func (c *testChunk) MainEntries() []chunk.Placeable { return nil }
func (c *testChunk) Group() *chunk.Group            { return nil }

func TestMaterialize(t *testing.T) {
	ref := &runtime.ChunkListReference{
		OutputRoot: "/out",
		Group: chunk.NewGroup(
			&testChunk{path: "/out/a.js"},
			&testChunk{path: "/out/b.js"},
			&testChunk{path: "/elsewhere/d.js"},
		),
		Path: "/out/lists/main.chunk-list.json",
	}

	artifact, err := Materialize(ref)
	require.NoError(t, err)
	assert.Equal(t, "lists/main.chunk-list.json", artifact.Path)

	var list List
	require.NoError(t, json.Unmarshal(artifact.Data, &list))
	assert.Equal(t, Version, list.Version)
	assert.Equal(t, []string{"a.js", "b.js"}, list.Chunks, "members outside the root are skipped")
}

func TestMaterializeFailsOutsideRoot(t *testing.T) {
	ref := &runtime.ChunkListReference{
		OutputRoot: "/out",
		Group:      chunk.NewGroup(&testChunk{path: "/out/a.js"}),
		Path:       "/elsewhere/main.chunk-list.json",
	}

	_, err := Materialize(ref)
	require.ErrorIs(t, err, chunk.ErrOutsideOutputRoot)
}
