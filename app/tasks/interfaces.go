package tasks

import "context"

// PoolInterface runs a batch of tasks to completion.
// Example usage:
//
//	pool := NewPool(4)
//	results := pool.Run(ctx, []TaskInterface{NewDownloadImageTask(...)})
type PoolInterface interface {
	Run(ctx context.Context, tasks []TaskInterface) []Result
}
