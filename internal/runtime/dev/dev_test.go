package dev

import (
	"github.com/chunk-team/chunkforge/internal/chunk"
)

// Test doubles standing in for the module graph builder's chunks and the
// build's chunking context.

type testContext struct {
	root     string
	loading  chunk.Loading
	listPath string
}

func (c *testContext) OutputRoot() string          { return c.root }
func (c *testContext) ChunkLoading() chunk.Loading { return c.loading }
func (c *testContext) ChunkListPath(chunk.Ident) string {
	return c.listPath
}

type testEntry struct {
	module string
	id     chunk.ModuleID
}

func (e *testEntry) Ident() chunk.Ident { return chunk.NewIdent(e.module) }
func (e *testEntry) ModuleID(chunk.Context) (chunk.ModuleID, error) {
	return e.id, nil
}

type testChunk struct {
	path    string
	entries []chunk.Placeable
	group   *chunk.Group
}

func (c *testChunk) Path() string                   { return c.path }
func (c *testChunk) Ident() chunk.Ident             { return chunk.NewIdent(c.path) }
func (c *testChunk) MainEntries() []chunk.Placeable { return c.entries }
func (c *testChunk) Group() *chunk.Group            { return c.group }

func domContext() *testContext {
	return &testContext{
		root:     "/out",
		loading:  chunk.LoadingDOM,
		listPath: "/out/list-main.json",
	}
}

// entryChunk builds a chunk at path declaring one main entry per id, and
// wires the given siblings (including itself) as its natural group.
func entryChunk(path string, ids []chunk.ModuleID, siblings ...chunk.Chunk) *testChunk {
	c := &testChunk{path: path}
	for _, id := range ids {
		c.entries = append(c.entries, &testEntry{module: path, id: id})
	}
	if len(siblings) > 0 {
		c.group = chunk.NewGroup(siblings...)
	}
	return c
}
