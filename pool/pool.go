// Package pool implements a fixed-size worker pool. A pool owns a fixed set
// of worker goroutines created at construction time and a shared FIFO queue
// of pending tasks. Submitted tasks are dispatched to the first available
// worker and deliver their outcome through a one-shot handle.
package pool

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/secutil/secutil/internal/future"
)

// basePool contains the methods shared by all pool views.
type basePool interface {
	// ThreadCount returns the number of worker goroutines, fixed for the
	// lifetime of the pool.
	ThreadCount() int

	// RunningWorkers returns the number of workers currently executing a task.
	RunningWorkers() int64

	// SubmittedTasks returns the total number of tasks accepted by the pool
	// since its creation.
	SubmittedTasks() uint64

	// WaitingTasks returns the number of tasks waiting to be executed.
	WaitingTasks() uint64

	// SuccessfulTasks returns the number of tasks that completed without error.
	SuccessfulTasks() uint64

	// FailedTasks returns the number of tasks that completed with an error or
	// a panic.
	FailedTasks() uint64

	// CompletedTasks returns the total number of tasks that finished executing.
	CompletedTasks() uint64

	// Stopped returns true once the pool has begun shutting down.
	Stopped() bool

	// Stop begins shutting down the pool and returns a handle that resolves
	// once every accepted task has run and every worker has exited. Tasks
	// accepted before shutdown are never discarded.
	Stop() Task

	// StopAndWait stops the pool and blocks until the shutdown completes.
	StopAndWait()
}

// Pool is a fixed-size worker pool for tasks that do not return a value.
// Use NewResultPool for tasks that produce a result.
type Pool interface {
	basePool

	// Go submits a task for execution without returning a handle. It panics
	// with ErrPoolStopped if the pool has been stopped.
	Go(task func())

	// TryGo attempts to submit a task, returning false instead of panicking
	// if the pool has been stopped.
	TryGo(task func()) bool

	// Submit submits a task and returns a handle that resolves when the task
	// completes. It panics with ErrPoolStopped if the pool has been stopped.
	Submit(task func()) Task

	// SubmitErr is like Submit for tasks that can fail.
	SubmitErr(task func() error) Task

	// TrySubmit attempts to submit a task, returning false instead of
	// panicking if the pool has been stopped.
	TrySubmit(task func()) (Task, bool)

	// Group creates a new task group bound to this pool.
	Group() *TaskGroup
}

// Option customizes a pool at construction time.
type Option func(*pool)

// WithQueueSize sets the capacity of the channel used to hand tasks over to
// workers. It only affects batching between the dispatcher and the workers;
// submission never blocks regardless of this value.
func WithQueueSize(size int) Option {
	return func(p *pool) {
		p.queueSize = size
	}
}

type pool struct {
	threads    int
	queueSize  int
	tasks      chan func()
	dispatcher *dispatcher[func()]

	workerWaitGroup sync.WaitGroup
	running         atomic.Int64
	successful      atomic.Uint64
	failed          atomic.Uint64
	stopped         atomic.Bool

	stopOnce sync.Once
	stopTask Task
}

// New creates a pool with the given number of worker goroutines. All workers
// are started immediately and wait for tasks. A thread count lower than 1 is
// coerced to 1.
func New(threads int, options ...Option) Pool {
	return newPool(threads, options...)
}

func newPool(threads int, options ...Option) *pool {
	p := &pool{
		threads: threads,
	}

	for _, option := range options {
		option(p)
	}

	if p.threads < 1 {
		p.threads = 1
	}
	if p.queueSize < 1 {
		p.queueSize = p.threads
	}

	p.tasks = make(chan func(), p.queueSize)
	p.dispatcher = newDispatcher(p.dispatch, p.queueSize)

	p.workerWaitGroup.Add(p.threads)
	for i := 0; i < p.threads; i++ {
		go p.worker()
	}

	return p
}

func (p *pool) ThreadCount() int {
	return p.threads
}

func (p *pool) RunningWorkers() int64 {
	return p.running.Load()
}

func (p *pool) SubmittedTasks() uint64 {
	return p.dispatcher.WriteCount()
}

func (p *pool) WaitingTasks() uint64 {
	return p.dispatcher.Len() + uint64(len(p.tasks))
}

func (p *pool) SuccessfulTasks() uint64 {
	return p.successful.Load()
}

func (p *pool) FailedTasks() uint64 {
	return p.failed.Load()
}

func (p *pool) CompletedTasks() uint64 {
	return p.successful.Load() + p.failed.Load()
}

func (p *pool) Stopped() bool {
	return p.stopped.Load()
}

func (p *pool) Go(task func()) {
	if task == nil {
		panic("task cannot be nil")
	}
	p.mustSubmit(func() {
		_, err := invokeTask[struct{}](task)
		p.record(err)
	})
}

func (p *pool) TryGo(task func()) bool {
	if task == nil {
		panic("task cannot be nil")
	}
	return p.submit(func() {
		_, err := invokeTask[struct{}](task)
		p.record(err)
	}) == nil
}

func (p *pool) Submit(task func()) Task {
	handle, _ := p.submitVoid(task, true)
	return handle
}

func (p *pool) SubmitErr(task func() error) Task {
	handle, _ := p.submitVoid(task, true)
	return handle
}

func (p *pool) TrySubmit(task func()) (Task, bool) {
	return p.submitVoid(task, false)
}

func (p *pool) Group() *TaskGroup {
	return &TaskGroup{
		pool: p,
	}
}

// submitVoid wraps a task of type func() or func() error, submits it and
// returns its completion handle. If must is set, a stopped pool is a usage
// error and the call panics with ErrPoolStopped.
func (p *pool) submitVoid(task any, must bool) (Task, bool) {
	if task == nil {
		panic("task cannot be nil")
	}

	fut, resolve := future.New[struct{}](context.Background())

	wrapped := func() {
		_, err := invokeTask[struct{}](task)
		p.record(err)
		resolve(struct{}{}, err)
	}

	if err := p.submit(wrapped); err != nil {
		if must {
			panic(err)
		}
		return nil, false
	}

	return taskHandle{fut}, true
}

// submit enqueues an already-wrapped task. It returns ErrPoolStopped if the
// pool has begun shutting down.
func (p *pool) submit(wrapped func()) error {
	if p.stopped.Load() {
		return ErrPoolStopped
	}
	if err := p.dispatcher.Write(wrapped); err != nil {
		return ErrPoolStopped
	}
	return nil
}

func (p *pool) mustSubmit(wrapped func()) {
	if err := p.submit(wrapped); err != nil {
		panic(err)
	}
}

func (p *pool) record(err error) {
	if err != nil {
		p.failed.Add(1)
	} else {
		p.successful.Add(1)
	}
}

// dispatch moves a batch of tasks from the dispatcher into the worker channel,
// preserving FIFO order. It runs on the dispatcher goroutine only.
func (p *pool) dispatch(batch []func()) {
	for _, task := range batch {
		p.tasks <- task
	}
}

// worker runs submitted tasks until the task channel is closed and drained.
// Task bodies execute outside any pool lock; panics are captured by the task
// wrapper and never reach this loop.
func (p *pool) worker() {
	defer p.workerWaitGroup.Done()

	for task := range p.tasks {
		p.running.Add(1)
		task()
		p.running.Add(-1)
	}
}

func (p *pool) Stop() Task {
	p.stopOnce.Do(func() {
		fut, resolve := future.New[struct{}](context.Background())
		p.stopTask = taskHandle{fut}

		p.stopped.Store(true)

		go func() {
			// Drain every task accepted before shutdown, then release the
			// workers and wait for them to exit.
			p.dispatcher.CloseAndWait()
			close(p.tasks)
			p.workerWaitGroup.Wait()
			resolve(struct{}{}, nil)
		}()
	})

	return p.stopTask
}

func (p *pool) StopAndWait() {
	p.Stop().Wait()
}
