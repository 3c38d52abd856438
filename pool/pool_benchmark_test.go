package pool_test

import (
	"sync"
	"testing"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/panjf2000/ants/v2"

	"github.com/secutil/secutil/pool"
)

const (
	benchTaskCount    = 10000
	benchTaskDuration = 1 * time.Millisecond
	benchWorkerCount  = 100
)

func BenchmarkPool(b *testing.B) {
	var wg sync.WaitGroup
	p := pool.New(benchWorkerCount)
	defer p.StopAndWait()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(benchTaskCount)
		for i := 0; i < benchTaskCount; i++ {
			p.Go(func() {
				time.Sleep(benchTaskDuration)
				wg.Done()
			})
		}
		wg.Wait()
	}
	b.StopTimer()
}

func BenchmarkGoroutines(b *testing.B) {
	var wg sync.WaitGroup

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(benchTaskCount)
		for i := 0; i < benchTaskCount; i++ {
			go func() {
				time.Sleep(benchTaskDuration)
				wg.Done()
			}()
		}
		wg.Wait()
	}
	b.StopTimer()
}

func BenchmarkGammazeroWorkerpool(b *testing.B) {
	var wg sync.WaitGroup
	wp := workerpool.New(benchWorkerCount)
	defer wp.StopWait()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(benchTaskCount)
		for i := 0; i < benchTaskCount; i++ {
			wp.Submit(func() {
				time.Sleep(benchTaskDuration)
				wg.Done()
			})
		}
		wg.Wait()
	}
	b.StopTimer()
}

func BenchmarkAnts(b *testing.B) {
	var wg sync.WaitGroup
	p, _ := ants.NewPool(benchWorkerCount, ants.WithExpiryDuration(10*time.Second))
	defer p.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(benchTaskCount)
		for i := 0; i < benchTaskCount; i++ {
			_ = p.Submit(func() {
				time.Sleep(benchTaskDuration)
				wg.Done()
			})
		}
		wg.Wait()
	}
	b.StopTimer()
}
