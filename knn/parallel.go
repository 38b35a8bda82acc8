package knn

import "golang.org/x/sync/errgroup"

// forEachRange splits [0, n) into at most workers contiguous chunks and runs
// fn on each chunk in its own goroutine, fork-join. The first error cancels
// nothing mid-chunk (kernels run to completion per chunk) but is the one
// returned.
func forEachRange(n, workers int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return fn(0, n)
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
