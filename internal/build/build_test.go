package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunk-team/chunkforge/internal/config"
)

func testConfig(t *testing.T, manifest string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "chunks.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0644))

	return &config.Config{
		OutputRoot:   "/out",
		ChunkLoading: "dom",
		BuildDir:     filepath.Join(dir, "dist"),
		Manifest:     manifestPath,
		Workers:      2,
		QueueSize:    10,
		WatchRate:    1,
	}
}

func TestRunWritesArtifacts(t *testing.T) {
	cfg := testConfig(t, `
chunks:
  - path: /out/main.js
    main_entries:
      - module: src/index.js
        id: "mod:src/index.js"
  - path: /out/vendor.js
groups:
  - entry: /out/main.js
    chunks:
      - /out/main.js
      - /out/vendor.js
`)

	summary, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Chunks)
	require.Len(t, summary.Artifacts, 3, "params, shared runtime and chunk list")

	paramsPath := filepath.Join(cfg.BuildDir, "main.js.runtime-params.json")
	data, err := os.ReadFile(paramsPath)
	require.NoError(t, err)
	var params struct {
		ChunkDependencies []string `json:"chunkDependencies"`
		ChunkListPath     string   `json:"chunkListPath"`
	}
	require.NoError(t, json.Unmarshal(data, &params))
	assert.Equal(t, []string{"vendor.js"}, params.ChunkDependencies)

	runtimeData, err := os.ReadFile(filepath.Join(cfg.BuildDir, RuntimeFileName))
	require.NoError(t, err)
	assert.Contains(t, string(runtimeData), "globalThis.CHUNKFORGE")

	listPath := filepath.Join(cfg.BuildDir, filepath.FromSlash(params.ChunkListPath))
	listData, err := os.ReadFile(listPath)
	require.NoError(t, err)
	var list struct {
		Chunks []string `json:"chunks"`
	}
	require.NoError(t, json.Unmarshal(listData, &list))
	assert.Equal(t, []string{"main.js", "vendor.js"}, list.Chunks)
}

func TestRunFailsForEntryOutsideRoot(t *testing.T) {
	cfg := testConfig(t, `
chunks:
  - path: /elsewhere/main.js
    main_entries:
      - module: src/index.js
        id: "mod:src/index.js"
`)

	_, err := Run(cfg)
	require.ErrorContains(t, err, "outside the output root")
}

func TestRunFailsWithoutEntryChunks(t *testing.T) {
	cfg := testConfig(t, `
chunks:
  - path: /out/vendor.js
`)

	_, err := Run(cfg)
	require.ErrorContains(t, err, "no entry chunks")
}
