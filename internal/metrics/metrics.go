package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContactSubmissions tracks contact form submissions by outcome
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inferencegate_contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"}, // accepted, rejected, failed
	)

	// LeadCaptures tracks PDF lead captures by outcome
	LeadCaptures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inferencegate_lead_captures_total",
			Help: "Total number of PDF lead captures",
		},
		[]string{"status"}, // accepted, rejected, failed
	)

	// EmailsSent tracks successful outbound notification sends
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inferencegate_emails_sent_total",
			Help: "Total number of notification emails sent",
		},
		[]string{"kind"}, // contact, lead
	)

	// EmailsFailed tracks failed outbound notification sends
	EmailsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inferencegate_emails_failed_total",
			Help: "Total number of notification emails that failed to send",
		},
		[]string{"kind"},
	)

	// SendDuration tracks outbound send latency
	SendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inferencegate_email_send_duration_seconds",
			Help:    "Notification send duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// PDFDownloads tracks delivered asset downloads
	PDFDownloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inferencegate_pdf_downloads_total",
			Help: "Total number of PDF downloads delivered",
		},
	)

	// HoneypotTrips tracks submissions rejected by the hidden form field
	HoneypotTrips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inferencegate_honeypot_trips_total",
			Help: "Total number of submissions caught by the honeypot field",
		},
		[]string{"endpoint"},
	)

	// RateLimitExceeded tracks throttled requests
	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inferencegate_rate_limit_exceeded_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// SMTPUp reports the last transport reachability probe result
	SMTPUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inferencegate_smtp_up",
			Help: "Whether the configured SMTP host answered the last probe (1) or not (0)",
		},
	)
)
