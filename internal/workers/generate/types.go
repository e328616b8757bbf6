package generate

import (
	"context"
	"sync"

	"github.com/chunk-team/chunkforge/internal/chunk"
	"github.com/chunk-team/chunkforge/internal/code"
	"github.com/chunk-team/chunkforge/internal/runtime"
)

// Job asks for the runtime glue of one origin chunk.
type Job struct {
	Chunk   chunk.Chunk
	Runtime runtime.ChunkRuntime
}

// Result carries the generated glue for one chunk. Err is set when any part
// of the generation failed; the other fields are then nil.
type Result struct {
	Chunk      chunk.Chunk
	Params     *code.Code
	Code       *code.Code
	References []runtime.Reference
	Err        error
}

// WorkerPool manages a pool of workers generating runtime glue. Generation
// is pure per chunk, so jobs run concurrently without coordination.
type WorkerPool struct {
	workers   int
	jobQueue  chan Job
	results   chan Result
	workerWg  sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	isRunning bool
	mu        sync.RWMutex
}
