package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Signal metric names
const (
	MetricNameSignalsPublished = "change_signals_published_total"
)

// Game metric names
const (
	MetricNamePredictionsSubmitted  = "predictions_submitted_total"
	MetricNamePredictionsRejected   = "predictions_rejected_total"
	MetricNameEventsResolved        = "events_resolved_total"
	MetricNameEventsGenerated       = "events_generated_total"
	MetricNamePointsCredited        = "points_credited_total"
	MetricNamePointsDebited         = "points_debited_total"
	MetricNameTournamentJoins       = "tournament_joins_total"
	MetricNameTournamentSettlements = "tournament_settlements_total"
	MetricNameRemindersSent         = "reminders_sent_total"
	MetricNameTickDuration          = "engine_tick_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Signal metric help text
const (
	HelpTextSignalsPublished = "Total number of change signals published by type"
)

// Game metric help text
const (
	HelpTextPredictionsSubmitted  = "Total number of accepted predictions"
	HelpTextPredictionsRejected   = "Total number of rejected predictions by reason"
	HelpTextEventsResolved        = "Total number of events that received an outcome"
	HelpTextEventsGenerated       = "Total number of mock events generated by sport"
	HelpTextPointsCredited        = "Total points credited to the ledger"
	HelpTextPointsDebited         = "Total points debited from the ledger"
	HelpTextTournamentJoins       = "Total number of tournament join attempts by result"
	HelpTextTournamentSettlements = "Total number of settled tournament participations by result"
	HelpTextRemindersSent         = "Total number of event reminders delivered by sink"
	HelpTextTickDuration          = "Duration of one engine tick in seconds"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelReason = "reason"
	LabelResult = "result"
	LabelSport  = "sport"
	LabelSink   = "sink"
)

// Label values
const (
	ReasonLocked         = "locked"
	ReasonInvalidOutcome = "invalid_outcome"
	ReasonUnknownEvent   = "unknown_event"

	ResultJoined       = "joined"
	ResultInsufficient = "insufficient_points"
	ResultWon          = "won"
	ResultLost         = "lost"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are histogram buckets for HTTP latency in seconds
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// TickDurationBuckets are histogram buckets for engine ticks in seconds
var TickDurationBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1}

// Log messages
const (
	LogMsgSignalRecorded = "Change signal recorded"
)
