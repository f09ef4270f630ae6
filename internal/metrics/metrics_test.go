package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	before := testutil.ToFloat64(operationsTotal.WithLabelValues("bet", OutcomeRejected))

	Observe("bet", OutcomeRejected, time.Now())

	assert.Equal(t, before+1, testutil.ToFloat64(operationsTotal.WithLabelValues("bet", OutcomeRejected)))
}

func TestAuditCounters(t *testing.T) {
	violations := testutil.ToFloat64(auditViolations)
	audited := testutil.ToFloat64(auditedAccounts)

	AuditViolation()
	AccountAudited()
	AccountAudited()

	assert.Equal(t, violations+1, testutil.ToFloat64(auditViolations))
	assert.Equal(t, audited+2, testutil.ToFloat64(auditedAccounts))
}
