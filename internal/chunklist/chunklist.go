// Package chunklist materializes chunk list artifacts from the references
// reported by chunk runtimes. A chunk list enumerates a chunk group's
// members so hot-update tooling can register and invalidate the group.
package chunklist

import (
	"encoding/json"
	"fmt"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/runtime"
)

// Version is bumped when the artifact shape changes incompatibly.
const Version = 1

// List is the serialized form of a chunk list artifact.
type List struct {
	Version int      `json:"version"`
	Chunks  []string `json:"chunks"`
}

// Artifact is a chunk list ready to be written: its output path relative to
// the output root and its serialized content.
type Artifact struct {
	Path string
	Data []byte
}

// Materialize turns a chunk list reference into a writable artifact. The
// list path must live under the output root; member chunks that do not are
// skipped, mirroring how the runtime params treat them.
func Materialize(ref *runtime.ChunkListReference) (*Artifact, error) {
	listPath, ok := chunk.PathInsideRoot(ref.OutputRoot, ref.Path)
	if !ok {
		return nil, fmt.Errorf("chunk list %s: %w", ref.Path, chunk.ErrOutsideOutputRoot)
	}

	chunks := make([]string, 0, ref.Group.Len())
	for _, member := range ref.Group.Chunks() {
		memberPath, ok := chunk.PathInsideRoot(ref.OutputRoot, member.Path())
		if !ok {
			continue
		}
		chunks = append(chunks, memberPath)
	}

	data, err := json.MarshalIndent(List{Version: Version, Chunks: chunks}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize chunk list %s: %w", listPath, err)
	}
	data = append(data, '\n')

	return &Artifact{Path: listPath, Data: data}, nil
}
