// Package build orchestrates one generation pass: it loads the manifest,
// runs the generation worker pool over every entry chunk and writes the
// resulting artifacts under the build directory.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/chunklist"
	"github.com/chunk-team/chunkforge/internal/config"
	"github.com/chunk-team/chunkforge/internal/manifest"
	"github.com/chunk-team/chunkforge/internal/runtime"
	"github.com/chunk-team/chunkforge/internal/runtime/dev"
	"github.com/chunk-team/chunkforge/internal/utils/files"
	"github.com/chunk-team/chunkforge/internal/utils/logger"
	"github.com/chunk-team/chunkforge/internal/workers/generate"
)

// RuntimeFileName is the shared runtime artifact written once per build.
// Every chunk using the same strategy embeds byte-identical runtime code,
// so a single file serves all of them.
const RuntimeFileName = "chunkforge-runtime.js"

// Summary describes one completed generation pass.
type Summary struct {
	Chunks    int
	Artifacts []string
	Duration  time.Duration
}

// Run executes one generation pass. Fails on the first chunk whose glue
// cannot be generated; artifacts written before the failure are left in
// place for inspection.
func Run(cfg *config.Config) (*Summary, error) {
	startTime := time.Now()

	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	ctx := chunk.NewDevContext(cfg.OutputRoot, cfg.Loading(), cfg.ChunkListDir)
	entries := m.EntryChunks()
	if len(entries) == 0 {
		return nil, fmt.Errorf("manifest %s declares no entry chunks", cfg.Manifest)
	}

	results, err := generateAll(cfg, ctx, entries)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Chunks: len(entries)}
	if err := writeArtifacts(cfg, results, summary); err != nil {
		return nil, err
	}

	summary.Duration = time.Since(startTime)
	logger.Info("Generated runtime glue for %d chunks in %v", summary.Chunks, summary.Duration)
	return summary, nil
}

// generateAll fans the entry chunks out over the worker pool and collects
// every result.
func generateAll(cfg *config.Config, ctx chunk.Context, entries []*manifest.Chunk) ([]generate.Result, error) {
	pool := generate.NewWorkerPool(cfg.Workers, cfg.QueueSize)
	if err := pool.Start(); err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(entries),
		progressbar.OptionSetDescription("Generating runtime glue"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)

	var results []generate.Result
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range pool.Results() {
			results = append(results, result)
			bar.Add(1)
		}
	}()

	for _, entry := range entries {
		rt := dev.New(ctx, entry.MainEntries()[0])
		if err := pool.SubmitJob(generate.Job{Chunk: entry, Runtime: rt}); err != nil {
			pool.Stop()
			<-done
			return nil, err
		}
	}

	if err := pool.Stop(); err != nil {
		return nil, err
	}
	<-done

	for _, result := range results {
		if result.Err != nil {
			return nil, result.Err
		}
	}
	return results, nil
}

// writeArtifacts materializes params, chunk lists and the shared runtime
// under the build directory.
func writeArtifacts(cfg *config.Config, results []generate.Result, summary *Summary) error {
	wroteRuntime := false

	for _, result := range results {
		rel, ok := chunk.PathInsideRoot(cfg.OutputRoot, result.Chunk.Path())
		if !ok {
			// Params generation already failed the pass for this case.
			return fmt.Errorf("origin chunk %s: %w", result.Chunk.Path(), chunk.ErrOutsideOutputRoot)
		}

		paramsPath := filepath.Join(cfg.BuildDir, filepath.FromSlash(rel)+".runtime-params.json")
		if err := files.WriteAtomic(paramsPath, result.Params.Source()); err != nil {
			return err
		}
		summary.Artifacts = append(summary.Artifacts, paramsPath)

		if !wroteRuntime {
			runtimePath := filepath.Join(cfg.BuildDir, RuntimeFileName)
			if err := files.WriteAtomic(runtimePath, result.Code.Source()); err != nil {
				return err
			}
			summary.Artifacts = append(summary.Artifacts, runtimePath)
			wroteRuntime = true
		}

		for _, ref := range result.References {
			listRef, ok := ref.(*runtime.ChunkListReference)
			if !ok {
				continue
			}
			artifact, err := chunklist.Materialize(listRef)
			if err != nil {
				return err
			}
			listPath := filepath.Join(cfg.BuildDir, filepath.FromSlash(artifact.Path))
			if err := files.WriteAtomic(listPath, artifact.Data); err != nil {
				return err
			}
			summary.Artifacts = append(summary.Artifacts, listPath)
		}
	}

	return nil
}
