package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

var _ PoolInterface = (*Pool)(nil)

// Result is the outcome of one task. Results keep the order of the tasks
// handed to Run.
type Result struct {
	Task     TaskInterface
	Err      error
	Duration time.Duration
}

type Pool struct {
	workerCount int
}

func NewPool(workerCount int) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Pool{workerCount: workerCount}
}

// Run executes every task and waits for all of them. A failing task never
// stops the others. Tasks still queued when ctx is cancelled fail with the
// context error.
func (p *Pool) Run(ctx context.Context, tasks []TaskInterface) []Result {
	results := make([]Result, len(tasks))
	queue := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < min(p.workerCount, len(tasks)); i++ {
		wg.Add(1)
		go p.worker(ctx, i, &wg, queue, tasks, results)
	}

	for i := range tasks {
		queue <- i
	}
	close(queue)
	wg.Wait()

	return results
}

func (p *Pool) worker(ctx context.Context, id int, wg *sync.WaitGroup, queue <-chan int, tasks []TaskInterface, results []Result) {
	defer wg.Done()

	for i := range queue {
		results[i] = p.executeTask(ctx, id, tasks[i])
	}
}

func (p *Pool) executeTask(ctx context.Context, workerID int, task TaskInterface) Result {
	if err := ctx.Err(); err != nil {
		return Result{Task: task, Err: err}
	}

	task.Start()
	err := task.Execute(ctx)
	duration := task.GetDuration()

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "duration", duration, "error", err)
	}

	return Result{Task: task, Err: err, Duration: duration}
}
