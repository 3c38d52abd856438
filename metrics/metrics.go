// Package metrics exposes worker pool statistics as Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStats is the subset of pool statistics exported as metrics. Both
// pool.Pool and pool.ResultPool satisfy it.
type PoolStats interface {
	ThreadCount() int
	RunningWorkers() int64
	SubmittedTasks() uint64
	WaitingTasks() uint64
	SuccessfulTasks() uint64
	FailedTasks() uint64
}

// Collectors returns Prometheus collectors for the given pool's statistics,
// named <namespace>_worker_pool_*. Register them with any
// prometheus.Registerer:
//
//	prometheus.MustRegister(metrics.Collectors("myapp", p)...)
func Collectors(namespace string, stats PoolStats) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "worker_pool_threads",
				Help:      "Number of worker goroutines owned by the pool",
			},
			func() float64 {
				return float64(stats.ThreadCount())
			}),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "worker_pool_running_workers",
				Help:      "Number of workers currently executing a task",
			},
			func() float64 {
				return float64(stats.RunningWorkers())
			}),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "worker_pool_waiting_tasks",
				Help:      "Number of tasks waiting to be executed",
			},
			func() float64 {
				return float64(stats.WaitingTasks())
			}),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "worker_pool_submitted_tasks_total",
				Help:      "Total number of tasks accepted by the pool",
			},
			func() float64 {
				return float64(stats.SubmittedTasks())
			}),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "worker_pool_successful_tasks_total",
				Help:      "Total number of tasks that completed without error",
			},
			func() float64 {
				return float64(stats.SuccessfulTasks())
			}),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "worker_pool_failed_tasks_total",
				Help:      "Total number of tasks that completed with an error or panic",
			},
			func() float64 {
				return float64(stats.FailedTasks())
			}),
	}
}
