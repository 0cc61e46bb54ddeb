package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Form names used as label values.
const (
	FormContact = "contact"
	FormJob     = "job_application"
)

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Business holds counters about form intake.
type Business struct {
	submissions   *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewBusiness creates the counters and registers them with reg.
func NewBusiness(reg prometheus.Registerer) (*Business, error) {
	b := &Business{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_submissions_total",
				Help: "Form submissions by form and outcome.",
			},
			[]string{"form", "outcome"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_notifications_total",
				Help: "Notification attempts by form, kind and delivery result.",
			},
			[]string{"form", "kind", "result"},
		),
	}
	for _, c := range []prometheus.Collector{b.submissions, b.notifications} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Submission counts one submission outcome. A nil receiver is a no-op.
func (b *Business) Submission(form, outcome string) {
	if b == nil {
		return
	}
	b.submissions.WithLabelValues(form, outcome).Inc()
}

// Notification counts one notification attempt. A nil receiver is a no-op.
func (b *Business) Notification(form, kind string, delivered bool) {
	if b == nil {
		return
	}
	result := "failed"
	if delivered {
		result = "delivered"
	}
	b.notifications.WithLabelValues(form, kind, result).Inc()
}

// RegisterDBStats exports connection pool statistics of db.
func RegisterDBStats(reg prometheus.Registerer, db *sql.DB, name string) error {
	return reg.Register(collectors.NewDBStatsCollector(db, name))
}
