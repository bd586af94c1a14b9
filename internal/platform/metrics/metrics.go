package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	SessionsIssued      *prometheus.CounterVec
	SessionsRefused     *prometheus.CounterVec
	CustomersCreated    prometheus.Counter
	AccountsProvisioned prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SessionsIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_gateway_sessions_issued_total",
			Help: "Sessions issued, labeled by session kind",
		}, []string{"kind"}),
		SessionsRefused: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_gateway_sessions_refused_total",
			Help: "Identification attempts refused, labeled by HTTP status",
		}, []string{"status"}),
		CustomersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auth_gateway_customers_created_total",
			Help: "Customer records provisioned in the directory",
		}),
		AccountsProvisioned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "auth_gateway_provider_accounts_total",
			Help: "Accounts provisioned in the identity provider",
		}),
	}
}

// IncrementIssued records an issued session of the given kind.
// All helpers are nil-safe so callers can run without metrics in tests.
func (m *Metrics) IncrementIssued(kind string) {
	if m != nil {
		m.SessionsIssued.WithLabelValues(kind).Inc()
	}
}

// IncrementRefused records a refused attempt by status.
func (m *Metrics) IncrementRefused(status string) {
	if m != nil {
		m.SessionsRefused.WithLabelValues(status).Inc()
	}
}

// IncrementCustomersCreated records a directory provisioning.
func (m *Metrics) IncrementCustomersCreated() {
	if m != nil {
		m.CustomersCreated.Inc()
	}
}

// IncrementAccountsProvisioned records a provider account creation.
func (m *Metrics) IncrementAccountsProvisioned() {
	if m != nil {
		m.AccountsProvisioned.Inc()
	}
}
