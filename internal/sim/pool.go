package sim

import "sync"

// stepPool is a fixed set of worker goroutines that fan a per-iteration
// body range out in chunks. iter is the barrier between iterations:
// every body finishes step i before any body starts step i+1.
type stepPool struct {
	workers int
	tasks   chan span
	wg      sync.WaitGroup
	iter    sync.WaitGroup
}

type span struct {
	start, end int
	fn         func(i int)
}

func newStepPool(workers int) *stepPool {
	p := &stepPool{
		workers: workers,
		tasks:   make(chan span, workers),
	}
	p.wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer p.wg.Done()
			for s := range p.tasks {
				for i := s.start; i < s.end; i++ {
					s.fn(i)
				}
				p.iter.Done()
			}
		}()
	}
	return p
}

// run applies fn to every index in [0, n) across the pool and blocks
// until all chunks have completed.
func (p *stepPool) run(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	chunk := (n + p.workers - 1) / p.workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		p.iter.Add(1)
		p.tasks <- span{start: start, end: end, fn: fn}
	}
	p.iter.Wait()
}

func (p *stepPool) close() {
	close(p.tasks)
	p.wg.Wait()
}
