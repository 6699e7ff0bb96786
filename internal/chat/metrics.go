package chat

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters and latency for the chat pipeline.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
	llmLatency    *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zootown",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Chat requests by outcome",
		}, []string{"status"}), // ok, bad_request, upstream_error
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "zootown",
			Subsystem: "chat",
			Name:      "llm_latency_seconds",
			Help:      "Latency of completion-endpoint calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 3, 4, 5, 6, 8, 10, 15, 20, 30},
		}, []string{"model", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.llmLatency)
	return m
}

func (m *Metrics) ObserveRequest(status string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveCompletion(model, status string, seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.WithLabelValues(model, status).Observe(seconds)
}
