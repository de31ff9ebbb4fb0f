package core

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted jobs on a fixed set of goroutines. The pool is
// created once and reused every frame so column batches do not pay for
// goroutine start-up.
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a pool with numWorkers workers; zero or less means
// one per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the workers.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit queues a job.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has finished.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts the workers down. Jobs still queued are dropped.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// ParallelChunks splits [start, end) into contiguous chunks of at most
// chunkSize and calls fn once per chunk. Callers that need per-worker
// scratch state allocate it inside fn. It returns when every chunk is done.
func (wp *WorkerPool) ParallelChunks(start, end, chunkSize int, fn func(lo, hi int)) {
	if start >= end {
		return
	}
	chunkSize = max(1, chunkSize)

	for i := start; i < end; i += chunkSize {
		lo := i
		hi := min(i+chunkSize, end)
		wp.Submit(func() { fn(lo, hi) })
	}
	wp.Wait()
}
