package fusion

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes the engine's operational counters on /metrics.
type Metrics struct {
	MessagesTotal      *prometheus.CounterVec
	ConfirmationsTotal *prometheus.CounterVec
	ActuationFailures  prometheus.Counter
	AlertActive        prometheus.Gauge
	EnvCycles          prometheus.Counter
	EnvReadFailures    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eldersafe_bus_messages_total",
			Help: "Inbound bus messages by topic class.",
		}, []string{"topic"}),
		ConfirmationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eldersafe_confirmations_total",
			Help: "Confirmed emergencies by decision path.",
		}, []string{"path"}),
		ActuationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldersafe_actuation_failures_total",
			Help: "Actuation calls that returned an error.",
		}),
		AlertActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eldersafe_alert_active",
			Help: "1 while the emergency state machine is Active.",
		}),
		EnvCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldersafe_env_cycles_total",
			Help: "Environment telemetry cycles completed.",
		}),
		EnvReadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eldersafe_env_read_failures_total",
			Help: "Environment sensor reads that failed.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.MessagesTotal,
			m.ConfirmationsTotal,
			m.ActuationFailures,
			m.AlertActive,
			m.EnvCycles,
			m.EnvReadFailures,
		)
	}
	return m
}
