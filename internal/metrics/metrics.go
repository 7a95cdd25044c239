package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wts_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wts_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wts_messages_sent_total",
			Help: "Total outbound WhatsApp messages relayed",
		},
	)

	MessagesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wts_messages_deleted_total",
			Help: "Total messages removed by room deletion",
		},
	)

	RoomsListed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wts_rooms_listed_total",
			Help: "Total room list requests served",
		},
	)

	UsersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wts_users_created_total",
			Help: "Total user profiles created",
		},
	)

	UsersUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wts_users_updated_total",
			Help: "Total user profiles updated",
		},
	)

	// Rate limit metrics
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wts_rate_limit_hits_total",
			Help: "Total rate limit hits",
		},
		[]string{"endpoint"},
	)

	BlockedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wts_blocked_requests_total",
			Help: "Total blocked requests",
		},
		[]string{"reason"},
	)

	// Infrastructure metrics
	WhatsAppLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wts_whatsapp_latency_seconds",
			Help:    "WhatsApp Cloud API call latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	MongoLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wts_mongo_latency_seconds",
			Help:    "MongoDB operation latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1},
		},
	)
)
