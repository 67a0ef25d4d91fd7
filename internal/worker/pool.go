// Package worker provides a worker pool for scoring candidate moves in parallel.
package worker

import (
	"sync"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// WorkItem represents a candidate move to be scored.
type WorkItem struct {
	State *engine.GameState // Position after Move was played; owned by the worker
	Move  chess.Move
	Index int // Enumeration index of the move at the root
}

// ProcessResult represents the score of a candidate move.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Score float64
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// newPool creates a pool with 1 worker and a buffer of 10 unless opts
// say otherwise.
func newPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

func (p *Pool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// close stops accepting work and closes the result channel once every
// worker has finished.
func (p *Pool) close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Run scores every item with the pool and returns the results in item order,
// so the outcome does not depend on scheduling.
func Run(items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	opts = append([]PoolOption{WithBufferSize(max(len(items), 1))}, opts...)
	pool := newPool(processFunc, opts...)
	pool.start()

	go func() {
		for i, item := range items {
			item.Index = i
			pool.workChan <- item
		}
		pool.close()
	}()

	results := make([]ProcessResult, len(items))
	for result := range pool.resultChan {
		results[result.Index] = result
	}
	return results
}
