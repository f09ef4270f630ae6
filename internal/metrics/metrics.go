package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeTransient = "transient"
	OutcomeError     = "error"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funcoin_ledger_operations_total",
			Help: "Ledger engine operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "funcoin_ledger_operation_duration_seconds",
			Help:    "Ledger engine operation latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	auditViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funcoin_audit_violations_total",
			Help: "Accounts whose ledger replay disagreed with the stored balance",
		},
	)

	auditedAccounts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funcoin_audit_accounts_total",
			Help: "Accounts replayed by the auditor",
		},
	)
)

func Observe(operation, outcome string, started time.Time) {
	operationsTotal.With(prometheus.Labels{"operation": operation, "outcome": outcome}).Inc()
	operationDuration.With(prometheus.Labels{"operation": operation}).Observe(time.Since(started).Seconds())
}

func AuditViolation() {
	auditViolations.Inc()
}

func AccountAudited() {
	auditedAccounts.Inc()
}
