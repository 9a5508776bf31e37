package analyzer

import (
	"sync"
)

type Pass[T any] interface {
	Process(T)
}

// Process runs each group of passes over entry.  Passes within a group run
// concurrently and groups run in order.  A group of one runs on the
// caller's goroutine.
func Process[T any](
	entry T,
	groups [][]Pass[T],
	shouldEarlyExit func() bool, // optional, checked after each group
) {
	for _, group := range groups {
		if len(group) == 1 {
			group[0].Process(entry)
		} else {
			wg := sync.WaitGroup{}
			wg.Add(len(group))
			for _, pass := range group {
				go func() {
					defer wg.Done()
					pass.Process(entry)
				}()
			}
			wg.Wait()
		}

		if shouldEarlyExit != nil && shouldEarlyExit() {
			return
		}
	}
}

// ParallelProcess calls process on every item from at most workers
// goroutines.  workers <= 0 means one goroutine per item.
func ParallelProcess[T any](
	list []T,
	workers int,
	process func(T),
) {
	if workers <= 0 || workers > len(list) {
		workers = len(list)
	}

	items := make(chan T)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				process(item)
			}
		}()
	}

	for _, item := range list {
		items <- item
	}
	close(items)
	wg.Wait()
}
