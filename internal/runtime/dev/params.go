package dev

import (
	"encoding/json"
	"fmt"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/code"
)

// Params is the per-chunk data the shared runtime needs at execution time.
// Field names and order are a wire contract with the embedded runtime code.
type Params struct {
	// ChunkDependencies lists the chunk paths, relative to the output
	// root, that must be loaded before this chunk can execute. Never
	// includes the chunk itself.
	ChunkDependencies []string `json:"chunkDependencies"`

	// RuntimeModuleIDs lists the module ids this chunk instantiates when
	// executed, in declaration order.
	RuntimeModuleIDs []chunk.ModuleID `json:"runtimeModuleIds"`

	// ChunkListPath is where this chunk registers its chunk group, relative
	// to the output root.
	ChunkListPath string `json:"chunkListPath"`
}

// ResolveParams computes the runtime parameters for the origin chunk. Pure:
// repeated calls with identical inputs produce identical values, so results
// are safe to memoize by input identity.
func (r *Runtime) ResolveParams(origin chunk.Chunk) (*Params, error) {
	root := r.ctx.OutputRoot()

	originPath, ok := chunk.PathInsideRoot(root, origin.Path())
	if !ok {
		return nil, fmt.Errorf("origin chunk %s: %w", origin.Path(), chunk.ErrOutsideOutputRoot)
	}

	group := r.effectiveGroup(origin)
	deps := make([]string, 0, group.Len())
	for _, sibling := range group.Chunks() {
		// Chunks outside the output tree are not loadable dependencies in
		// dev mode; skipping one must not abort the others.
		siblingPath, ok := chunk.PathInsideRoot(root, sibling.Path())
		if !ok {
			continue
		}
		if siblingPath == originPath {
			continue
		}
		deps = append(deps, siblingPath)
	}

	entries := origin.MainEntries()
	ids := make([]chunk.ModuleID, 0, len(entries))
	for _, entry := range entries {
		id, err := entry.ModuleID(r.ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve module id for %s: %w", entry.Ident().Path, err)
		}
		ids = append(ids, id)
	}

	listPath, ok := chunk.PathInsideRoot(root, r.chunkListPath)
	if !ok {
		return nil, fmt.Errorf("chunk list %s: %w", r.chunkListPath, chunk.ErrOutsideOutputRoot)
	}

	return &Params{
		ChunkDependencies: deps,
		RuntimeModuleIDs:  ids,
		ChunkListPath:     listPath,
	}, nil
}

// Params serializes the resolved parameters into a source-embeddable
// literal for the origin chunk.
func (r *Runtime) Params(origin chunk.Chunk) (*code.Code, error) {
	params, err := r.ResolveParams(origin)
	if err != nil {
		return nil, err
	}

	literal, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize runtime params: %w", err)
	}

	b := code.NewBuilder()
	b.Push(literal)
	return b.Build(), nil
}
