package pool

import (
	"runtime"
	"sync"
)

// defaultPool is created lazily on first use and is deliberately never
// stopped: tearing it down at process exit would race package finalizers for
// no benefit, so its workers are reclaimed by the OS instead. Leak detectors
// should be told to ignore it.
var defaultPool = sync.OnceValue(func() Pool {
	return New(runtime.NumCPU())
})

// Default returns the process-wide shared pool, creating it on first use with
// one worker per CPU. Callers must not stop it.
func Default() Pool {
	return defaultPool()
}

// Go submits a task to the default pool without returning a handle.
func Go(task func()) {
	Default().Go(task)
}

// Submit submits a task to the default pool and returns its handle.
func Submit(task func()) Task {
	return Default().Submit(task)
}

// SubmitErr submits a fallible task to the default pool and returns its
// handle.
func SubmitErr(task func() error) Task {
	return Default().SubmitErr(task)
}

// Group creates a task group bound to the default pool.
func Group() *TaskGroup {
	return Default().Group()
}
