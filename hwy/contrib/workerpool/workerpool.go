// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent tasks on a fixed set of goroutines.
//
// Workers start once in New and are reused by every call to Each until
// Close. Each hands out task indices through an atomic counter, so tasks of
// uneven cost still keep every worker busy.
//
//	pool := workerpool.New(len(engines))
//	defer pool.Close()
//	pool.Each(len(engines), func(i int) {
//	    engines[i].Apply(src, w, h, c, g, outs[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent worker goroutines.
type Pool struct {
	size      int
	jobs      chan job
	closeOnce sync.Once
	closed    atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of size workers. A size <= 0 uses GOMAXPROCS.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		size: size,
		jobs: make(chan job, size),
	}
	for range size {
		go func() {
			for j := range p.jobs {
				j.run()
				j.done.Done()
			}
		}()
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Close stops the workers after pending work finishes. It is safe to call
// more than once; Each on a closed pool runs inline.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// Each calls fn(i) for every i in [0, n) and returns when all calls have
// finished. Calls run concurrently in no particular order.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.size, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
