package coroutine

import (
	"context"
	"runtime"
	"sync"
)

// Result 保存单个任务的结果，Index 与输入切片位置一致
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// DefaultMaxWorkers 默认并发数
func DefaultMaxWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// Map 并行执行map操作，结果按输入顺序返回
func Map[T, R any](ctx context.Context, maxWorkers int, items []T, mapFunc func(T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers()
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		results[i].Index = i
		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i].Value, results[i].Err = mapFunc(item)
		}(i, item)
	}

	wg.Wait()
	return results
}
