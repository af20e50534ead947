package processor

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// WorkerPool bounds how many CPU heavy jobs run at once.
type WorkerPool struct {
	size int64
	sem  *semaphore.Weighted
}

// NewWorkerPool creates a pool with size slots, or one slot per CPU when size
// is not positive.
func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &WorkerPool{
		size: int64(size),
		sem:  semaphore.NewWeighted(int64(size)),
	}
}

func (p *WorkerPool) Size() int {
	return int(p.size)
}

// Run waits for a free slot and runs job in the calling goroutine. Only the
// wait observes ctx, a started job always runs to completion.
func (p *WorkerPool) Run(ctx context.Context, job func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)

	job()
	return nil
}
