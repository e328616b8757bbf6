package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunk-team/chunkforge/internal/chunk"
)

const sampleManifest = `
chunks:
  - path: /out/main.js
    main_entries:
      - module: src/index.js
        id: "mod:src/index.js"
      - module: src/boot.js
        id: 7
  - path: /out/vendor.js
groups:
  - entry: /out/main.js
    chunks:
      - /out/vendor.js
      - /out/main.js
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Chunks(), 2)

	entries := m.EntryChunks()
	require.Len(t, entries, 1)
	main := entries[0]
	assert.Equal(t, "/out/main.js", main.Path())

	placeables := main.MainEntries()
	require.Len(t, placeables, 2)
	id, err := placeables[0].ModuleID(nil)
	require.NoError(t, err)
	assert.Equal(t, chunk.StringID("mod:src/index.js"), id)
	id, err = placeables[1].ModuleID(nil)
	require.NoError(t, err)
	assert.Equal(t, chunk.NumberID(7), id)

	group := main.Group()
	require.NotNil(t, group)
	require.Equal(t, 2, group.Len())
	assert.Equal(t, "/out/vendor.js", group.Chunks()[0].Path(), "group order follows the manifest")
	assert.Equal(t, "/out/main.js", group.Chunks()[1].Path())
}

func TestParseRejectsUnknownGroupMember(t *testing.T) {
	_, err := Parse([]byte(`
chunks:
  - path: /out/main.js
groups:
  - entry: /out/main.js
    chunks: [/out/ghost.js]
`))
	require.ErrorContains(t, err, "ghost.js")
}

func TestParseRejectsDuplicateChunkPath(t *testing.T) {
	_, err := Parse([]byte(`
chunks:
  - path: /out/main.js
  - path: /out/main.js
`))
	require.ErrorContains(t, err, "duplicate chunk path")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Chunks(), 2)
}
