// Copyright 2025 The go-swar Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting bulk
// word operations across cores. A Pool is created once and reused, so
// repeated reductions over large bitmaps do not pay for goroutine spawning.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	total := pool.ParallelReduce(len(words), func(start, end int) uint64 {
//	    return countRange(words[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every call.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool

	// sendMu is held for reading while work is queued and for writing
	// while workC is closed.
	sendMu sync.RWMutex
}

// workItem is one chunk of a parallel operation.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once is safe, and so is calling it while other goroutines are using the
// pool: calls that already queued work finish on the workers, later calls run
// sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.sendMu.Lock()
		defer p.sendMu.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}

// chunks returns how many contiguous chunks [0, n) is split into, and their
// size.
func (p *Pool) chunks(n int) (workers, size int) {
	workers = min(p.numWorkers, n)
	return workers, (n + workers - 1) / workers
}

// ParallelFor calls fn on contiguous, disjoint ranges covering [0, n) and
// blocks until all of them return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.numWorkers == 1 || n == 1 {
		fn(0, n)
		return
	}

	p.sendMu.RLock()
	if p.closed.Load() {
		p.sendMu.RUnlock()
		fn(0, n)
		return
	}
	workers, size := p.chunks(n)
	var wg sync.WaitGroup
	for i := range workers {
		start := i * size
		if start >= n {
			break
		}
		end := min(start+size, n)
		wg.Add(1)
		p.workC <- workItem{fn: func() { fn(start, end) }, barrier: &wg}
	}
	p.sendMu.RUnlock()
	wg.Wait()
}

// ParallelReduce calls fn on contiguous, disjoint ranges covering [0, n) and
// returns the sum of the results.
func (p *Pool) ParallelReduce(n int, fn func(start, end int) uint64) uint64 {
	if n <= 0 {
		return 0
	}
	if p.closed.Load() || p.numWorkers == 1 || n == 1 {
		return fn(0, n)
	}

	workers, size := p.chunks(n)
	partials := make([]uint64, workers)
	p.ParallelFor(workers, func(first, last int) {
		for w := first; w < last; w++ {
			start := w * size
			if start >= n {
				return
			}
			partials[w] = fn(start, min(start+size, n))
		}
	})

	var total uint64
	for _, v := range partials {
		total += v
	}
	return total
}
