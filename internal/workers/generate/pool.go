package generate

import (
	"context"
	"fmt"
)

// NewWorkerPool creates a generation worker pool.
func NewWorkerPool(maxWorkers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:   maxWorkers,
		jobQueue:  make(chan Job, queueSize),
		results:   make(chan Result, queueSize),
		ctx:       ctx,
		cancel:    cancel,
		isRunning: false,
	}
}

// Start initializes and starts the worker pool.
func (p *WorkerPool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return fmt.Errorf("generation worker pool is already running")
	}

	for i := 0; i < p.workers; i++ {
		p.workerWg.Add(1)
		go p.worker(i)
	}

	p.isRunning = true
	return nil
}

// Stop shuts the pool down after in-flight jobs finish and closes the
// results channel.
func (p *WorkerPool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		return nil
	}

	close(p.jobQueue)
	p.workerWg.Wait()
	p.cancel()
	close(p.results)

	p.isRunning = false
	return nil
}

// SubmitJob submits a generation job to the pool.
func (p *WorkerPool) SubmitJob(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.isRunning {
		return fmt.Errorf("generation worker pool is not running")
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-p.ctx.Done():
		return fmt.Errorf("generation worker pool is shutting down")
	}
}

// Results returns the channel generation results arrive on. Closed by Stop
// once all workers have drained.
func (p *WorkerPool) Results() <-chan Result {
	return p.results
}

// IsRunning returns whether the worker pool is currently running.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isRunning
}

// worker is the main worker loop processing generation jobs.
func (p *WorkerPool) worker(workerID int) {
	defer p.workerWg.Done()

	for job := range p.jobQueue {
		p.processJob(workerID, job)
	}
}
