package generate

import (
	"fmt"
	"time"

	"github.com/chunk-team/chunkforge/internal/utils/logger"
)

// processJob generates params, runtime code and references for one chunk.
func (p *WorkerPool) processJob(workerID int, job Job) {
	startTime := time.Now()

	result := Result{Chunk: job.Chunk}

	params, err := job.Runtime.Params(job.Chunk)
	if err != nil {
		result.Err = fmt.Errorf("failed to generate params for %s: %w", job.Chunk.Path(), err)
		p.deliver(result)
		return
	}

	runtimeCode, err := job.Runtime.Code()
	if err != nil {
		result.Err = fmt.Errorf("failed to generate runtime code for %s: %w", job.Chunk.Path(), err)
		p.deliver(result)
		return
	}

	refs, err := job.Runtime.References(job.Chunk)
	if err != nil {
		result.Err = fmt.Errorf("failed to collect references for %s: %w", job.Chunk.Path(), err)
		p.deliver(result)
		return
	}

	result.Params = params
	result.Code = runtimeCode
	result.References = refs
	p.deliver(result)

	logger.Debug("Worker %d generated runtime glue for %s in %v", workerID, job.Chunk.Path(), time.Since(startTime))
}

func (p *WorkerPool) deliver(result Result) {
	select {
	case p.results <- result:
	case <-p.ctx.Done():
	}
}
