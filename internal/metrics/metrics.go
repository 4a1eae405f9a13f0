package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Signal Metrics
var (
	SignalsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSignalsPublished,
			Help: HelpTextSignalsPublished,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	PredictionsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsSubmitted,
			Help: HelpTextPredictionsSubmitted,
		},
	)

	PredictionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsRejected,
			Help: HelpTextPredictionsRejected,
		},
		[]string{LabelReason},
	)

	EventsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventsResolved,
			Help: HelpTextEventsResolved,
		},
	)

	EventsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsGenerated,
			Help: HelpTextEventsGenerated,
		},
		[]string{LabelSport},
	)

	PointsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsCredited,
			Help: HelpTextPointsCredited,
		},
	)

	PointsDebited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsDebited,
			Help: HelpTextPointsDebited,
		},
	)

	TournamentJoins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTournamentJoins,
			Help: HelpTextTournamentJoins,
		},
		[]string{LabelResult},
	)

	TournamentSettlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTournamentSettlements,
			Help: HelpTextTournamentSettlements,
		},
		[]string{LabelResult},
	)

	RemindersSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRemindersSent,
			Help: HelpTextRemindersSent,
		},
		[]string{LabelSink},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickDurationBuckets,
		},
	)
)
