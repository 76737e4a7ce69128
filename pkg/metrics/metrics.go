package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Task metrics
	TasksSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algod_tasks_submitted_total",
			Help: "Total number of tasks accepted by the dispatcher",
		},
	)

	TasksFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "algod_tasks_finished_total",
			Help: "Total number of tasks by terminal status",
		},
		[]string{"status"},
	)

	// Process manager metrics
	RunningWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "algod_running_workers",
			Help: "Number of live CPU worker subprocesses",
		},
	)

	WorkersKilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algod_workers_killed_total",
			Help: "Total number of worker subprocesses force-killed",
		},
	)

	// DB writer metrics
	DBWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "algod_db_writes_total",
			Help: "Task store writes applied by the DB writer, by result",
		},
		[]string{"result"},
	)

	// Progress metrics
	ProgressEvents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algod_progress_events_total",
			Help: "Total number of progress events recorded",
		},
	)
)

func init() {
	prometheus.MustRegister(
		TasksSubmitted,
		TasksFinished,
		RunningWorkers,
		WorkersKilled,
		DBWrites,
		ProgressEvents,
	)
}
