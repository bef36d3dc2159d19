// Package worker provides a bounded pool for CPU-bound conversion work.
// Requests stay synchronous — the submitter blocks until its job is done —
// but the pool caps how many conversions run at once so a large transcode
// cannot oversubscribe the host.
package worker

import (
	"context"
	"sync"
)

type job struct {
	ctx    context.Context
	run    func(context.Context) error
	result chan error
}

// Pool runs submitted jobs on a fixed number of worker goroutines.
type Pool struct {
	queue   chan job
	workers int
	wg      sync.WaitGroup
}

// NewPool creates a Pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		queue:   make(chan job, 100),
		workers: workers,
	}
}

// Start launches the worker goroutines. They exit when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.queue:
					if !ok {
						return
					}
					if err := j.ctx.Err(); err != nil {
						j.result <- err
						continue
					}
					j.result <- j.run(j.ctx)
				}
			}
		}()
	}
}

// Wait blocks until all workers have exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Submit enqueues run and blocks until it completes or ctx is cancelled.
// The job receives the submitter's context, so a cancelled request also
// cancels its in-flight conversion.
func (p *Pool) Submit(ctx context.Context, run func(context.Context) error) error {
	j := job{ctx: ctx, run: run, result: make(chan error, 1)}
	select {
	case p.queue <- j:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-j.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
