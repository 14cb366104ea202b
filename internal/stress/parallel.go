package stress

import (
	"runtime"
	"sync"
)

// Body sets below this size are not worth the goroutine overhead.
const serialCutoff = 16

// parallelFor runs fn over disjoint chunks of [0, n). Chunks never overlap,
// so workers may write to distinct indices of a shared slice without
// synchronization.
func parallelFor(n, workers int, fn func(start, end int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if n < serialCutoff || workers == 1 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
