// Package parallel provides the row-sliced worker pool used by the
// software backend.
//
// Work is always split by framebuffer row, so two tasks of one batch
// never touch the same pixel and the result is bit-identical to a
// sequential execution. Objects are still processed strictly in list
// order; only the rows of a single object run concurrently.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerTask bounds scheduling overhead: batches smaller than this
// run inline on the calling goroutine.
const minRowsPerTask = 16

// Pool is a fixed set of worker goroutines executing row-range tasks.
//
// Thread safety: ForRows may only be called from one goroutine at a
// time; the workers themselves are internal.
type Pool struct {
	workers int
	tasks   chan task
	done    chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

type task struct {
	y0, y1 int
	fn     func(y0, y1 int)
	wg     *sync.WaitGroup
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*4),
		done:    make(chan struct{}),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case t := <-p.tasks:
			t.fn(t.y0, t.y1)
			t.wg.Done()
		}
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// ForRows runs fn over the half-open row range [y0, y1), split into
// one contiguous slice per worker. ForRows blocks until every slice
// has completed. Small ranges run inline to avoid scheduling overhead.
func (p *Pool) ForRows(y0, y1 int, fn func(y0, y1 int)) {
	rows := y1 - y0
	if rows <= 0 {
		return
	}
	if p == nil || p.closed || rows < minRowsPerTask*2 || p.workers < 2 {
		fn(y0, y1)
		return
	}

	chunk := (rows + p.workers - 1) / p.workers
	if chunk < minRowsPerTask {
		chunk = minRowsPerTask
	}

	var wg sync.WaitGroup
	for start := y0; start < y1; start += chunk {
		end := start + chunk
		if end > y1 {
			end = y1
		}
		wg.Add(1)
		p.tasks <- task{y0: start, y1: end, fn: fn, wg: &wg}
	}
	wg.Wait()
}

// Close stops the workers. Pending batches must have completed; Close
// is not safe to call concurrently with ForRows. Close is idempotent.
func (p *Pool) Close() {
	if p == nil || p.closed {
		return
	}
	p.closed = true
	close(p.done)
	p.wg.Wait()
}
