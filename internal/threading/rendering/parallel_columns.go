package rendering

import (
	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading/core"
)

// Column batch limits. Small batches balance better across workers, large
// ones keep per-batch scratch set-up cheap.
const (
	minColumnBatch = 4
	maxColumnBatch = 32
	inlineColumns  = 8
)

// ParallelColumns spreads the columns of a view over a worker pool. Columns
// never depend on each other, so the only shared state is the output each
// column writes to its own slot.
type ParallelColumns struct {
	workerPool *core.WorkerPool
}

// NewParallelColumns creates a scheduler with its own started pool of
// workers goroutines (zero means one per CPU).
func NewParallelColumns(workers int) *ParallelColumns {
	pool := core.NewWorkerPool(workers)
	pool.Start()
	return &ParallelColumns{workerPool: pool}
}

// Workers returns the pool size.
func (pc *ParallelColumns) Workers() int {
	return pc.workerPool.GetNumWorkers()
}

// Run calls fn on contiguous batches covering [0, numColumns) and returns
// once all of them are done. Very narrow views run inline.
func (pc *ParallelColumns) Run(numColumns int, fn func(start, end int)) {
	if numColumns <= 0 {
		return
	}
	if numColumns <= inlineColumns {
		fn(0, numColumns)
		return
	}

	batchSize := numColumns / pc.workerPool.GetNumWorkers()
	batchSize = max(minColumnBatch, min(batchSize, maxColumnBatch))
	pc.workerPool.ParallelChunks(0, numColumns, batchSize, fn)
}

// Stop shuts the worker pool down.
func (pc *ParallelColumns) Stop() {
	pc.workerPool.Stop()
}
