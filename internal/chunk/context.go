package chunk

import (
	"fmt"
	"path"
	"strings"
)

// Loading is the target environment's mechanism for dynamically fetching
// additional chunks at runtime.
type Loading int

const (
	// LoadingNone disables dynamic chunk loading. Every chunk must already
	// be present before execution starts.
	LoadingNone Loading = iota

	// LoadingNodeJS loads chunks through the host's module system.
	LoadingNodeJS

	// LoadingDOM loads chunks with browser script tags.
	LoadingDOM
)

// ParseLoading parses the configuration form of a loading strategy.
func ParseLoading(s string) (Loading, error) {
	switch strings.ToLower(s) {
	case "none":
		return LoadingNone, nil
	case "nodejs":
		return LoadingNodeJS, nil
	case "dom":
		return LoadingDOM, nil
	}
	return 0, fmt.Errorf("unknown chunk loading strategy %q (want none, nodejs or dom)", s)
}

func (l Loading) String() string {
	switch l {
	case LoadingNone:
		return "none"
	case LoadingNodeJS:
		return "nodejs"
	case LoadingDOM:
		return "dom"
	}
	return fmt.Sprintf("loading(%d)", int(l))
}

// Context describes the build's target environment and output layout. It is
// supplied once per build configuration and treated as immutable.
type Context interface {
	// OutputRoot returns the base directory all chunk and asset paths are
	// expressed relative to at runtime.
	OutputRoot() string

	// ChunkLoading returns the active chunk loading strategy.
	ChunkLoading() Loading

	// ChunkListPath derives the output path of the chunk list artifact for
	// a main entry identity.
	ChunkListPath(entry Ident) string
}

// DevContext is the chunking context for development builds.
type DevContext struct {
	outputRoot   string
	loading      Loading
	chunkListDir string
}

// NewDevContext creates a development chunking context. chunkListDir is
// relative to the output root; empty means chunk lists sit directly under
// the root.
func NewDevContext(outputRoot string, loading Loading, chunkListDir string) *DevContext {
	return &DevContext{
		outputRoot:   cleanOutputPath(outputRoot),
		loading:      loading,
		chunkListDir: chunkListDir,
	}
}

func (c *DevContext) OutputRoot() string {
	return c.outputRoot
}

func (c *DevContext) ChunkLoading() Loading {
	return c.loading
}

// ChunkListPath places the chunk list under the chunk list directory, named
// after the entry with a content-address suffix so distinct entries never
// collide.
func (c *DevContext) ChunkListPath(entry Ident) string {
	stem := strings.TrimSuffix(path.Base(entry.Path), path.Ext(entry.Path))
	name := fmt.Sprintf("%s-%s.chunk-list.json", stem, entry.Hash())
	return path.Join(c.outputRoot, c.chunkListDir, name)
}
