package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clubhouse_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CreditGrantsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_credit_grants_total",
			Help: "Credit grants processed by issuance, by outcome",
		},
		[]string{"outcome"},
	)

	IssuanceRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_issuance_runs_total",
			Help: "Daily credit issuance runs",
		},
		[]string{"status"},
	)

	FreezeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_freeze_requests_total",
			Help: "Freeze request lifecycle transitions",
		},
		[]string{"transition"},
	)

	WaitlistPromotionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_waitlist_promotions_total",
			Help: "Waitlist promotion attempts, by result",
		},
		[]string{"result"},
	)

	WaitlistClaimsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubhouse_waitlist_claims_expired_total",
			Help: "Notified waitlist entries whose claim window lapsed",
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_notifications_total",
			Help: "Member notifications, by type and status",
		},
		[]string{"type", "status"},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_webhook_events_total",
			Help: "Billing webhook events, by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhouse_job_runs_total",
			Help: "Scheduled job executions",
		},
		[]string{"job", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordIssuance(created, skipped, failed int) {
	CreditGrantsTotal.WithLabelValues("created").Add(float64(created))
	CreditGrantsTotal.WithLabelValues("skipped").Add(float64(skipped))
	CreditGrantsTotal.WithLabelValues("failed").Add(float64(failed))
	status := "success"
	if failed > 0 {
		status = "partial"
	}
	IssuanceRunsTotal.WithLabelValues(status).Inc()
}

func RecordFreezeTransition(transition string) {
	FreezeRequestsTotal.WithLabelValues(transition).Inc()
}

func RecordPromotion(result string) {
	WaitlistPromotionsTotal.WithLabelValues(result).Inc()
}

func RecordClaimsExpired(n int) {
	WaitlistClaimsExpiredTotal.Add(float64(n))
}

func RecordNotification(notificationType, status string) {
	NotificationsTotal.WithLabelValues(notificationType, status).Inc()
}

func RecordWebhookEvent(eventType, outcome string) {
	WebhookEventsTotal.WithLabelValues(eventType, outcome).Inc()
}

func RecordJobRun(job, status string) {
	JobRunsTotal.WithLabelValues(job, status).Inc()
}
