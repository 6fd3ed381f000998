// Package concur implements SPEC_FULL.md §5's one use of true
// parallelism: running the independent per-entry-point parse+gather
// passes concurrently ahead of the single-threaded assemble+emit phase.
// Grounded directly on pkg/tfgen/par.go's parTransformMap, generalized
// from a tfgen-specific helper into a reusable generic primitive.
package concur

import (
	"fmt"
	"runtime"
	"sync"
)

// ParMap transforms a map in batches of up to batch elements using
// workers goroutines. If workers is -1, one worker per CPU is used (with
// a floor of 2, matching the teacher). The first error from any worker
// is returned; remaining translations are discarded.
func ParMap[K comparable, T any, U any](
	inputs map[K]T,
	transform func(map[K]T) (map[K]U, error),
	workers int,
	batch int,
) (map[K]U, error) {
	if batch < 1 {
		return nil, fmt.Errorf("batch cannot be less than 1")
	}
	n := workers
	if workers < 1 {
		n = runtime.NumCPU()
		if n < 2 {
			n = 2
		}
	}

	keys := make([]K, 0, len(inputs))
	keyIndex := map[K]int{}
	for k := range inputs {
		keys = append(keys, k)
		keyIndex[k] = len(keys) - 1
	}

	translations := make([]U, len(keys))
	errs := make([]error, n)

	ch := make(chan []K)

	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(worker int) {
			defer wg.Done()
			for keyBatch := range ch {
				ex := map[K]T{}
				for _, k := range keyBatch {
					ex[k] = inputs[k]
				}
				out, err := transform(ex)
				if err != nil {
					errs[worker] = err
					return
				}
				for _, k := range keyBatch {
					translations[keyIndex[k]] = out[k]
				}
			}
		}(i)
	}

	remaining := keys
	for len(remaining) > 0 {
		var keyBatch []K
		if len(remaining) <= batch {
			keyBatch, remaining = remaining, nil
		} else {
			keyBatch, remaining = remaining[:batch], remaining[batch:]
		}
		ch <- keyBatch
	}
	close(ch)
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	out := map[K]U{}
	for _, k := range keys {
		out[k] = translations[keyIndex[k]]
	}
	return out, nil
}
