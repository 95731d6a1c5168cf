package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/miretskiy/osviz/scenario"
)

var (
	// Prometheus metrics
	promMetrics = struct {
		runs           *prometheus.CounterVec
		runErrors      prometheus.Counter
		hitRatio       *prometheus.GaugeVec
		avgWaitingTime *prometheus.GaugeVec
		totalSeekTime  *prometheus.GaugeVec
		activeSessions prometheus.Gauge
		framesSent     prometheus.Counter
		stepsPlayed    prometheus.Counter
	}{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "osviz_algorithm_runs_total",
			Help: "Algorithm runs by family and algorithm",
		}, []string{"family", "algorithm"}),
		runErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "osviz_scenario_errors_total",
			Help: "Scenario runs or loads that returned an error",
		}),
		hitRatio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "osviz_page_hit_ratio",
			Help: "Hit ratio of the most recent page replacement run",
		}, []string{"algorithm"}),
		avgWaitingTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "osviz_cpu_average_waiting_time",
			Help: "Average waiting time of the most recent CPU scheduling run",
		}, []string{"algorithm"}),
		totalSeekTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "osviz_disk_total_seek_time",
			Help: "Total seek distance of the most recent disk scheduling run",
		}, []string{"algorithm"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "osviz_playback_sessions",
			Help: "Connected WebSocket playback sessions",
		}),
		framesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "osviz_frames_sent_total",
			Help: "Step frames pushed to clients",
		}),
		stepsPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "osviz_playback_step_changes_total",
			Help: "Playback step changes across all sessions",
		}),
	}
)

func initPrometheusMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		promMetrics.runs,
		promMetrics.runErrors,
		promMetrics.hitRatio,
		promMetrics.avgWaitingTime,
		promMetrics.totalSeekTime,
		promMetrics.activeSessions,
		promMetrics.framesSent,
		promMetrics.stepsPlayed,
	)
}

func updatePrometheusMetrics(out *scenario.Outcome) {
	family := out.Family.String()
	switch {
	case out.Paging != nil:
		for _, run := range out.Paging.Runs {
			promMetrics.runs.WithLabelValues(family, run.Name).Inc()
			promMetrics.hitRatio.WithLabelValues(run.Name).Set(run.Result.HitRatio)
		}
	case out.CPU != nil:
		for _, run := range out.CPU.Runs {
			promMetrics.runs.WithLabelValues(family, run.Name).Inc()
			promMetrics.avgWaitingTime.WithLabelValues(run.Name).Set(run.Result.AverageWaitingTime)
		}
	case out.Disk != nil:
		for _, run := range out.Disk.Runs {
			promMetrics.runs.WithLabelValues(family, run.Name).Inc()
			promMetrics.totalSeekTime.WithLabelValues(run.Name).Set(float64(run.Result.TotalSeekTime))
		}
	}
}
