// Package worker provides a bounded worker pool for fanning independent
// jobs, such as exercise audits, out over goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
)

// Item is a unit of work. Index records the submission position so that
// callers can restore input order.
type Item[T any] struct {
	Index int
	Value T
}

// Result is the outcome of processing one Item.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// ProcessFunc processes a single item.
type ProcessFunc[T, R any] func(item Item[T]) Result[R]

type options struct {
	numWorkers int
	bufferSize int
}

// PoolOption configures a Pool.
type PoolOption func(*options)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(o *options) {
		if n >= 1 {
			o.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(o *options) {
		if size >= 1 {
			o.bufferSize = size
		}
	}
}

// Pool runs a ProcessFunc over submitted items on a fixed set of workers.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan Item[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	o := options{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool[T, R]{
		numWorkers:  o.numWorkers,
		bufferSize:  o.bufferSize,
		workChan:    make(chan Item[T], o.bufferSize),
		resultChan:  make(chan Result[R], o.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item Item[T]) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker has returned.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}

// Run processes values on a fresh pool and returns the results in input
// order. If ctx is cancelled the pool is stopped, unprocessed items are
// dropped, and ctx.Err() is returned alongside the partial results.
func Run[T, R any](ctx context.Context, values []T, fn ProcessFunc[T, R], opts ...PoolOption) ([]Result[R], error) {
	p := NewPool(fn, opts...)
	p.Start()

	go func() {
		defer p.Close()
		for i, v := range values {
			if ctx.Err() != nil {
				p.Stop()
			}
			if p.IsStopped() {
				return
			}
			p.Submit(Item[T]{Index: i, Value: v})
		}
	}()

	results := make([]Result[R], 0, len(values))
	for r := range p.Results() {
		if ctx.Err() != nil {
			p.Stop()
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, ctx.Err()
}
