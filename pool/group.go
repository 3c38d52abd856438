package pool

import (
	"context"
	"sync"

	"github.com/secutil/secutil/internal/future"
)

// TaskResult is the outcome of a single task in a group.
type TaskResult[R any] struct {
	Output R
	Err    error
}

// TaskGroup accumulates tasks and submits them to its pool as one batch.
// Groups add no scheduling of their own; every task still goes through the
// pool's queue and worker set.
type TaskGroup struct {
	pool  *pool
	mutex sync.Mutex
	tasks []any
}

// Submit adds tasks to the group. Tasks are not dispatched until Wait or
// WaitAll is called.
func (g *TaskGroup) Submit(tasks ...func()) *TaskGroup {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for _, task := range tasks {
		g.tasks = append(g.tasks, task)
	}
	return g
}

// SubmitErr adds fallible tasks to the group.
func (g *TaskGroup) SubmitErr(tasks ...func() error) *TaskGroup {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for _, task := range tasks {
		g.tasks = append(g.tasks, task)
	}
	return g
}

// Wait dispatches all accumulated tasks and blocks until they complete,
// returning the first error that occurred, if any.
func (g *TaskGroup) Wait() error {
	_, err := dispatchGroup[struct{}](g.pool, g.take()).Wait()
	return err
}

// WaitAll dispatches all accumulated tasks, waits for every one of them to
// complete regardless of failures, and returns the per-task errors in
// submission order along with the first error encountered.
func (g *TaskGroup) WaitAll() ([]error, error) {
	results, err := dispatchGroupAll[struct{}](g.pool, g.take()).Wait()

	errs := make([]error, len(results))
	for i, result := range results {
		if err == nil && result.Err != nil {
			err = result.Err
		}
		errs[i] = result.Err
	}
	return errs, err
}

func (g *TaskGroup) take() []any {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	tasks := g.tasks
	g.tasks = nil
	return tasks
}

// ResultTaskGroup accumulates tasks returning values of type R and collects
// their outputs in submission order.
type ResultTaskGroup[R any] struct {
	pool  *pool
	mutex sync.Mutex
	tasks []any
}

// Submit adds tasks to the group. Tasks are not dispatched until Wait or
// WaitAll is called.
func (g *ResultTaskGroup[R]) Submit(tasks ...func() R) *ResultTaskGroup[R] {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for _, task := range tasks {
		g.tasks = append(g.tasks, task)
	}
	return g
}

// SubmitErr adds fallible tasks to the group.
func (g *ResultTaskGroup[R]) SubmitErr(tasks ...func() (R, error)) *ResultTaskGroup[R] {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for _, task := range tasks {
		g.tasks = append(g.tasks, task)
	}
	return g
}

// Wait dispatches all accumulated tasks and blocks until they complete,
// returning their outputs in submission order. If any task fails, Wait
// returns as soon as the first failure is observed.
func (g *ResultTaskGroup[R]) Wait() ([]R, error) {
	return dispatchGroup[R](g.pool, g.take()).Wait()
}

// WaitAll dispatches all accumulated tasks, waits for every one of them to
// complete regardless of failures, and returns the per-task outcomes in
// submission order along with the first error encountered.
func (g *ResultTaskGroup[R]) WaitAll() ([]TaskResult[R], error) {
	results, err := dispatchGroupAll[R](g.pool, g.take()).Wait()

	if err == nil {
		for _, result := range results {
			if result.Err != nil {
				err = result.Err
				break
			}
		}
	}
	return results, err
}

func (g *ResultTaskGroup[R]) take() []any {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	tasks := g.tasks
	g.tasks = nil
	return tasks
}

// dispatchGroup submits every task and returns a future that resolves with
// the outputs in index order, or with the first error.
func dispatchGroup[R any](p *pool, tasks []any) *future.Composite[R] {
	composite, resolve := future.NewComposite[R](context.Background(), len(tasks))

	for i, task := range tasks {
		index := i
		task := task
		err := p.submit(func() {
			output, err := invokeTask[R](task)
			p.record(err)
			resolve(index, output, err)
		})
		if err != nil {
			var zero R
			resolve(index, zero, err)
		}
	}

	return composite
}

// dispatchGroupAll submits every task and returns a future that resolves with
// the per-task outcomes in index order once all tasks have finished. Task
// failures are recorded in the outcomes rather than failing the future.
func dispatchGroupAll[R any](p *pool, tasks []any) *future.Composite[TaskResult[R]] {
	composite, resolve := future.NewComposite[TaskResult[R]](context.Background(), len(tasks))

	for i, task := range tasks {
		index := i
		task := task
		err := p.submit(func() {
			output, err := invokeTask[R](task)
			p.record(err)
			resolve(index, TaskResult[R]{Output: output, Err: err}, nil)
		})
		if err != nil {
			resolve(index, TaskResult[R]{Err: err}, nil)
		}
	}

	return composite
}
