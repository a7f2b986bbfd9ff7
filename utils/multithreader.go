// Package utils holds small helpers shared by the other packages
package utils

import (
	"runtime"
	"sync"
)

// MultiThread runs 'f' for every integer in [start, end), spread over several goroutines, and
// returns once all calls have finished.
//
// Each goroutine takes 'opsPerThread' consecutive values at a time. There are 'threadsPerCPU'
// goroutines per CPU, but never more than there are chunks of work. Values below 1 are treated
// as 1. Nothing is run if end <= start.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	if end <= start {
		return
	}

	if opsPerThread < 1 {
		opsPerThread = 1
	}
	if threadsPerCPU < 1 {
		threadsPerCPU = 1
	}

	numThreads := runtime.NumCPU() * threadsPerCPU
	if chunks := (end - start + opsPerThread - 1) / opsPerThread; chunks < numThreads {
		numThreads = chunks
	}

	index := start
	var indexMux sync.Mutex

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for thread := 0; thread < numThreads; thread++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end {
					indexMux.Unlock()
					return
				}

				i := index
				index += opsPerThread
				indexMux.Unlock()

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}
