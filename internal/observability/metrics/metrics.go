package metrics

import "github.com/prometheus/client_golang/prometheus"

// NotificationMetrics exposes counters/histograms for notification dispatch.
type NotificationMetrics struct {
	dispatchTotal   *prometheus.CounterVec
	emailTotal      *prometheus.CounterVec
	pdfTotal        *prometheus.CounterVec
	dispatchLatency *prometheus.HistogramVec
}

func NewNotificationMetrics(reg prometheus.Registerer) *NotificationMetrics {
	m := &NotificationMetrics{
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sehatplus",
			Subsystem: "notify",
			Name:      "dispatch_total",
			Help:      "Total notification dispatch requests",
		}, []string{"type", "status", "outcome"}),
		emailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sehatplus",
			Subsystem: "notify",
			Name:      "email_total",
			Help:      "Total email send attempts",
		}, []string{"audience", "result", "fallback"}),
		pdfTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sehatplus",
			Subsystem: "notify",
			Name:      "pdf_generated_total",
			Help:      "Total PDF documents generated",
		}, []string{"kind"}),
		dispatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sehatplus",
			Subsystem: "notify",
			Name:      "dispatch_latency_seconds",
			Help:      "Latency of notification dispatch including all sends",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.dispatchTotal, m.emailTotal, m.pdfTotal, m.dispatchLatency)
	return m
}

func (m *NotificationMetrics) ObserveDispatch(eventType, status, outcome string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(eventType, status, outcome).Inc()
}

func (m *NotificationMetrics) ObserveEmail(audience, result string, fallback bool) {
	if m == nil {
		return
	}
	label := "false"
	if fallback {
		label = "true"
	}
	m.emailTotal.WithLabelValues(audience, result, label).Inc()
}

func (m *NotificationMetrics) ObservePDF(kind string) {
	if m == nil {
		return
	}
	m.pdfTotal.WithLabelValues(kind).Inc()
}

func (m *NotificationMetrics) ObserveDispatchLatency(eventType string, seconds float64) {
	if m == nil {
		return
	}
	m.dispatchLatency.WithLabelValues(eventType).Observe(seconds)
}
