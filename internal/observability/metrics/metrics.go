package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters for the lead-intake pipeline.
type IntakeMetrics struct {
	leadsCreatedTotal    *prometheus.CounterVec
	webhookDeliveryTotal *prometheus.CounterVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		leadsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zootown",
			Subsystem: "leads",
			Name:      "created_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"status", "source"}),
		webhookDeliveryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zootown",
			Subsystem: "notify",
			Name:      "webhook_delivery_total",
			Help:      "Total automation webhook deliveries by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsCreatedTotal, m.webhookDeliveryTotal)
	return m
}

func (m *IntakeMetrics) ObserveLeadCreated(status, source string) {
	if m == nil {
		return
	}
	m.leadsCreatedTotal.WithLabelValues(status, source).Inc()
}

func (m *IntakeMetrics) ObserveWebhookDelivery(status string) {
	if m == nil {
		return
	}
	m.webhookDeliveryTotal.WithLabelValues(status).Inc()
}
