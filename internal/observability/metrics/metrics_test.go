package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestIntakeMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)
	m.ObserveLeadCreated("created", "contact_form")
	m.ObserveLeadCreated("invalid", "chatbot")
	m.ObserveWebhookDelivery("delivered")
	m.ObserveWebhookDelivery("failed")
}

func TestIntakeMetricsNilSafe(t *testing.T) {
	var m *IntakeMetrics
	m.ObserveLeadCreated("created", "contact_form")
	m.ObserveWebhookDelivery("delivered")
}
