package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

// SimulationMetrics exports per-algorithm counters about served simulations.
type SimulationMetrics struct {
	simulations *prometheus.CounterVec
	makespan    *prometheus.HistogramVec
	processes   *prometheus.HistogramVec
}

func NewSimulationMetrics(registerer prometheus.Registerer) *SimulationMetrics {
	m := &SimulationMetrics{
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulations_total",
			Help: "Simulations served, by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		makespan: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_simulation_makespan",
			Help:    "Makespan of successful simulations in simulated time units",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		processes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_simulation_processes",
			Help:    "Number of processes per simulation request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"algorithm"}),
	}
	registerer.MustRegister(m.simulations, m.makespan, m.processes)
	return m
}

// Observe records one simulation. Unknown algorithm tags are folded into a
// single label value to keep cardinality bounded.
func (m *SimulationMetrics) Observe(algorithm requests.Algorithm, processCount int, response responses.SimulationResponse, err error) {
	label := algorithmLabel(algorithm)
	switch {
	case err == nil:
		m.simulations.WithLabelValues(label, "ok").Inc()
		m.makespan.WithLabelValues(label).Observe(float64(response.Metrics.Makespan))
		m.processes.WithLabelValues(label).Observe(float64(processCount))
	case schedulers.IsClientError(err):
		m.simulations.WithLabelValues(label, "rejected").Inc()
	default:
		m.simulations.WithLabelValues(label, "failed").Inc()
	}
}

func algorithmLabel(algorithm requests.Algorithm) string {
	normalized := algorithm.Normalize()
	for _, known := range requests.Algorithms() {
		if normalized == known {
			return string(known)
		}
	}
	return "unknown"
}
