package metrics

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusiness(t *testing.T) {
	reg := prometheus.NewRegistry()
	b, err := NewBusiness(reg)
	require.NoError(t, err)

	b.Submission(FormContact, OutcomeAccepted)
	b.Submission(FormContact, OutcomeAccepted)
	b.Submission(FormJob, OutcomeRejected)
	b.Notification(FormJob, "document", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(b.submissions.WithLabelValues(FormContact, OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.submissions.WithLabelValues(FormJob, OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.notifications.WithLabelValues(FormJob, "document", "failed")))

	_, err = NewBusiness(reg)
	assert.Error(t, err, "registering twice on one registry fails")
}

func TestBusiness_NilIsNoop(t *testing.T) {
	var b *Business
	assert.NotPanics(t, func() {
		b.Submission(FormContact, OutcomeFailed)
		b.Notification(FormContact, "text", true)
	})
}

func TestRegisterDBStats(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterDBStats(reg, db, "forms"))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}
